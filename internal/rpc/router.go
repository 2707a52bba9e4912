// Package rpc is a small typed procedure dispatcher.
//
// Procedures are registered as queries (reads) or mutations (writes) with a
// typed input and output. Each call decodes its JSON input, runs the handler
// with a per-call Context carrying the injected dependencies, and maps any
// returned error to a structured Error.
//
//	r := rpc.NewRouter()
//	rpc.Query(r, "getById", func(ctx context.Context, call *rpc.Context, id uint) (dto.Bookmark, error) {
//		return bookmarkService(call).Get(ctx, id)
//	})
//	root := rpc.NewRouter().Merge("bookmark.", r)
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Empty is the input of procedures that take no arguments and the output
// of procedures that return nothing. It encodes as JSON null.
type Empty struct{}

func (Empty) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// HandlerFunc is the typed shape of a procedure implementation.
type HandlerFunc[I, O any] func(ctx context.Context, call *Context, in I) (O, error)

// Procedure is one registered, independently invocable handler.
type Procedure struct {
	Name   string
	Kind   Kind
	Input  reflect.Type
	Output reflect.Type

	invoke func(ctx context.Context, call *Context, raw []byte) (any, error)
}

// TakesInput reports whether callers must supply an input value.
func (p *Procedure) TakesInput() bool {
	return p.Input != reflect.TypeOf(Empty{})
}

type Router struct {
	procedures map[string]*Procedure
}

func NewRouter() *Router {
	return &Router{procedures: make(map[string]*Procedure)}
}

// Query registers a side-effect free procedure.
func Query[I, O any](r *Router, name string, fn HandlerFunc[I, O]) {
	register(r, name, KindQuery, fn)
}

// Mutation registers a procedure that writes.
func Mutation[I, O any](r *Router, name string, fn HandlerFunc[I, O]) {
	register(r, name, KindMutation, fn)
}

func register[I, O any](r *Router, name string, kind Kind, fn HandlerFunc[I, O]) {
	r.add(&Procedure{
		Name:   name,
		Kind:   kind,
		Input:  reflect.TypeOf((*I)(nil)).Elem(),
		Output: reflect.TypeOf((*O)(nil)).Elem(),
		invoke: func(ctx context.Context, call *Context, raw []byte) (any, error) {
			var in I
			if err := decodeInput(raw, &in); err != nil {
				return nil, err
			}
			return fn(ctx, call, in)
		},
	})
}

func (r *Router) add(p *Procedure) {
	if _, exists := r.procedures[p.Name]; exists {
		panic(fmt.Sprintf("rpc: procedure %q registered twice", p.Name))
	}
	r.procedures[p.Name] = p
}

// Merge adds every procedure of other under prefix (e.g. "users.").
func (r *Router) Merge(prefix string, other *Router) *Router {
	for _, p := range other.procedures {
		merged := *p
		merged.Name = prefix + p.Name
		r.add(&merged)
	}
	return r
}

func (r *Router) Lookup(name string) (*Procedure, bool) {
	p, ok := r.procedures[name]
	return p, ok
}

// Procedures returns every registered procedure sorted by name.
func (r *Router) Procedures() []*Procedure {
	out := make([]*Procedure, 0, len(r.procedures))
	for _, p := range r.procedures {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call runs the named procedure. kind must match the registered kind so a
// mutation cannot be triggered through a read-only path.
func (r *Router) Call(ctx context.Context, call *Context, name string, kind Kind, input []byte) (any, *Error) {
	p, ok := r.procedures[name]
	if !ok {
		return nil, BadRequest(fmt.Sprintf("unknown procedure %q", name))
	}
	if p.Kind != kind {
		return nil, BadRequest(fmt.Sprintf("procedure %q is a %s, not a %s", name, p.Kind, kind))
	}
	if p.TakesInput() && isBlank(input) {
		return nil, BadRequest(fmt.Sprintf("procedure %q requires an input", name))
	}

	out, err := p.invoke(ctx, call, input)
	if err != nil {
		return nil, FromError(err)
	}
	return out, nil
}

func decodeInput(raw []byte, dst any) error {
	if isBlank(raw) {
		return nil
	}
	if _, empty := dst.(*Empty); empty {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return BadRequest("invalid input: " + err.Error())
	}
	return nil
}

func isBlank(raw []byte) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
