package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookmarks/internal/bindings"
	"github.com/mrlokans/bookmarks/internal/config"
	bhttp "github.com/mrlokans/bookmarks/internal/http"
)

// BindingsCommand writes the TypeScript procedure contract.
type BindingsCommand struct {
	OutputPath string

	Out io.Writer
}

func NewBindingsCommand(cfg config.Bindings) *BindingsCommand {
	return &BindingsCommand{
		OutputPath: cfg.Path,
		Out:        os.Stdout,
	}
}

func (cmd *BindingsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("bindings", flag.ContinueOnError)

	fs.StringVar(&cmd.OutputPath, "out", cmd.OutputPath, "File to write; prints to stdout when empty (defaults to BINDINGS_PATH)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s bindings [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate TypeScript types for every procedure.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s bindings -out ../src/types/binding.ts\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *BindingsCommand) Run() error {
	procedures := bhttp.NewProcedures()

	if cmd.OutputPath == "" {
		src, err := bindings.Generate(procedures)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.Out, src)
		return err
	}

	if err := bindings.Export(procedures, cmd.OutputPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "TypeScript bindings written to %s\n", cmd.OutputPath)
	return nil
}
