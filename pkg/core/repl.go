package core

import (
	"fmt"
)

// REPL bundles a top environment with the read-eval-print operations
// the CLI and the interactive shell (pkg/repl) both need.
type REPL struct {
	Env *Environment
}

// NewREPL builds a REPL with a bootstrapped environment: built-ins
// installed, then the prelude evaluated on top.
func NewREPL() (*REPL, error) {
	env := NewTopEnvironment()
	if err := LoadPrelude(env); err != nil {
		return nil, fmt.Errorf("failed to load prelude: %w", err)
	}
	return &REPL{Env: env}, nil
}

// EvalString reads and evaluates a single form from input, returning
// ErrBlankInput (via IsBlankInput) for whitespace/comment-only input.
func (r *REPL) EvalString(input string) (Value, error) {
	ast, err := ReadString(input)
	if err != nil {
		return nil, err
	}
	return Eval(ast, r.Env)
}

// Interpret implements the pkg/repl.Interpreter interface.
func (r *REPL) Interpret(input string) (Value, error) {
	return r.EvalString(input)
}

// LoadFile evaluates `(load-file "path")` in the REPL's environment.
func (r *REPL) LoadFile(path string) error {
	ast, err := ReadString(fmt.Sprintf("(load-file %q)", path))
	if err != nil {
		return err
	}
	_, err = Eval(ast, r.Env)
	return err
}

// BindArgv binds *ARGV* to the list of command-line arguments
// following the script name.
func (r *REPL) BindArgv(args []string) {
	items := make([]Value, len(args))
	for i, a := range args {
		items[i] = String(a)
	}
	r.Env.Set("*ARGV*", NewList(items...))
}
