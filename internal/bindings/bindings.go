// Package bindings renders the procedure registry as a TypeScript contract.
//
// The output declares one type per named Go struct reachable from a
// procedure's input or output, plus a Procedures type listing every query
// and mutation with its key, input and result. The desktop frontend imports
// Procedures to type its client.
package bindings

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/mrlokans/bookmarks/internal/rpc"
)

const header = "/* eslint-disable */\n// This file was generated by `bookmarks bindings`. Do not edit this file manually.\n"

var (
	timeType  = reflect.TypeOf(time.Time{})
	emptyType = reflect.TypeOf(rpc.Empty{})
)

type generator struct {
	named map[string]reflect.Type
	decls map[string]string
}

// Generate returns the TypeScript source for every procedure in r.
func Generate(r *rpc.Router) (string, error) {
	g := &generator{
		named: make(map[string]reflect.Type),
		decls: make(map[string]string),
	}

	var queries, mutations []string
	for _, p := range r.Procedures() {
		input, err := g.input(p.Input)
		if err != nil {
			return "", fmt.Errorf("procedure %s input: %w", p.Name, err)
		}
		result, err := g.result(p.Output)
		if err != nil {
			return "", fmt.Errorf("procedure %s result: %w", p.Name, err)
		}

		entry := fmt.Sprintf("{ key: %q, input: %s, result: %s }", p.Name, input, result)
		if p.Kind == rpc.KindMutation {
			mutations = append(mutations, entry)
		} else {
			queries = append(queries, entry)
		}
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\nexport type Procedures = {\n")
	b.WriteString("    queries: " + union(queries) + ",\n")
	b.WriteString("    mutations: " + union(mutations) + ",\n")
	b.WriteString("    subscriptions: never\n")
	b.WriteString("};\n")

	names := make([]string, 0, len(g.decls))
	for name := range g.decls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("\n")
		b.WriteString(g.decls[name])
	}

	return b.String(), nil
}

// Export writes the bindings for r to path, creating parent directories.
func Export(r *rpc.Router, path string) error {
	src, err := Generate(r)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create bindings directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write bindings: %w", err)
	}
	return nil
}

func union(entries []string) string {
	if len(entries) == 0 {
		return "never"
	}
	return "\n        " + strings.Join(entries, " |\n        ")
}

func (g *generator) input(t reflect.Type) (string, error) {
	if t == emptyType {
		return "never", nil
	}
	return g.typeOf(t)
}

func (g *generator) result(t reflect.Type) (string, error) {
	if t == emptyType {
		return "null", nil
	}
	return g.typeOf(t)
}

func (g *generator) typeOf(t reflect.Type) (string, error) {
	switch {
	case t == timeType:
		return "string", nil
	case t == emptyType:
		return "null", nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number", nil
	case reflect.String:
		return "string", nil
	case reflect.Pointer:
		inner, err := g.typeOf(t.Elem())
		if err != nil {
			return "", err
		}
		return inner + " | null", nil
	case reflect.Slice, reflect.Array:
		inner, err := g.typeOf(t.Elem())
		if err != nil {
			return "", err
		}
		if strings.Contains(inner, " ") {
			inner = "(" + inner + ")"
		}
		return inner + "[]", nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return "", fmt.Errorf("unsupported map key type %s", t.Key())
		}
		inner, err := g.typeOf(t.Elem())
		if err != nil {
			return "", err
		}
		return "{ [key: string]: " + inner + " }", nil
	case reflect.Interface:
		return "unknown", nil
	case reflect.Struct:
		return g.declare(t)
	}
	return "", fmt.Errorf("unsupported type %s", t)
}

// declare registers a named struct and returns its TypeScript name.
func (g *generator) declare(t reflect.Type) (string, error) {
	name := t.Name()
	if name == "" {
		return g.object(t)
	}
	if prev, ok := g.named[name]; ok {
		if prev != t {
			return "", fmt.Errorf("type name %s used by both %s and %s", name, prev, t)
		}
		return name, nil
	}
	g.named[name] = t

	body, err := g.object(t)
	if err != nil {
		return "", err
	}
	g.decls[name] = fmt.Sprintf("export type %s = %s\n", name, body)
	return name, nil
}

func (g *generator) object(t reflect.Type) (string, error) {
	var fields []string
	if err := g.fields(t, &fields); err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "Record<string, never>", nil
	}
	return "{ " + strings.Join(fields, "; ") + " }", nil
}

func (g *generator) fields(t reflect.Type, out *[]string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, omitempty, skip := jsonName(f)
		if skip {
			continue
		}
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			if err := g.fields(f.Type, out); err != nil {
				return err
			}
			continue
		}
		if name == "" {
			name = f.Name
		}

		ts, err := g.typeOf(f.Type)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name(), f.Name, err)
		}
		key := name
		if omitempty {
			key += "?"
		}
		*out = append(*out, key+": "+ts)
	}
	return nil
}

func jsonName(f reflect.StructField) (name string, omitempty, skip bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return parts[0], omitempty, false
}
