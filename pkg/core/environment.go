package core

import "sort"

// Environment is a mapping from identifier to Value plus an optional
// outer environment. Environments form a tree rooted at the REPL
// environment; a lookup walks the chain from inner to outer.
type Environment struct {
	bindings map[Symbol]Value
	outer    *Environment
}

// NewEnv creates an environment with the given outer (nil for the
// root REPL environment).
func NewEnv(outer *Environment) *Environment {
	return &Environment{bindings: make(map[Symbol]Value), outer: outer}
}

// NewEnvWithBinds creates a child of outer and binds params to args in
// order. The symbol "&" in params marks the following parameter as
// variadic: it is bound to a list of all remaining arguments (empty
// list if none). Parameters that run out of arguments before "&" is
// seen are simply left unbound rather than erroring — arity mismatches
// surface only when the resulting function actually uses the missing
// binding.
func NewEnvWithBinds(outer *Environment, params []Symbol, args []Value) *Environment {
	env := NewEnv(outer)
	i := 0
	for i < len(params) {
		if params[i] == "&" {
			if i+1 >= len(params) {
				return env
			}
			restName := params[i+1]
			var rest []Value
			if i < len(args) {
				rest = args[i:]
			}
			env.Set(restName, NewList(rest...))
			return env
		}
		if i < len(args) {
			env.Set(params[i], args[i])
		}
		i++
	}
	return env
}

// Set binds name to value in this (innermost) environment.
func (e *Environment) Set(name Symbol, value Value) {
	e.bindings[name] = value
}

// Find returns the environment in the outer chain that defines name,
// or nil if none does.
func (e *Environment) Find(name Symbol) *Environment {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.bindings[name]; ok {
			return env
		}
	}
	return nil
}

// Get looks up name, walking the outer chain from inner to outer.
func (e *Environment) Get(name Symbol) (Value, error) {
	if env := e.Find(name); env != nil {
		return env.bindings[name], nil
	}
	return nil, NewUndefinedSymbol(string(name))
}

// Names returns every symbol bound anywhere in the outer chain,
// sorted and de-duplicated. Used for REPL tab completion.
func (e *Environment) Names() []string {
	seen := make(map[string]bool)
	for env := e; env != nil; env = env.outer {
		for sym := range env.bindings {
			seen[string(sym)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
