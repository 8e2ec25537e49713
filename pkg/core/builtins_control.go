package core

// installControl installs reference-cell, control-flow and
// re-entrant evaluator primitives. topEnv is the REPL's top-level
// environment: eval is bound to it directly, so (eval form) always
// resolves against top-level bindings regardless of the caller's
// lexical environment.
func installControl(topEnv *Environment) {
	topEnv.Set("deref", builtin("deref", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("deref expects 1 argument, got %d", len(args))
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, NewWrongArguments("deref expects an atom, got %T", args[0])
		}
		return a.Deref(), nil
	}))

	topEnv.Set("reset!", builtin("reset!", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("reset! expects 2 arguments, got %d", len(args))
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, NewWrongArguments("reset! expects an atom, got %T", args[0])
		}
		return a.Reset(args[1]), nil
	}))

	topEnv.Set("swap!", builtin("swap!", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 2 {
			return nil, NewWrongArguments("swap! expects at least 2 arguments, got %d", len(args))
		}
		a, ok := args[0].(*Atom)
		if !ok {
			return nil, NewWrongArguments("swap! expects an atom, got %T", args[0])
		}
		fn := args[1]
		callArgs := append([]Value{a.Deref()}, args[2:]...)
		newVal, err := Apply(fn, callArgs)
		if err != nil {
			return nil, err
		}
		return a.Reset(newVal), nil
	}))

	topEnv.Set("throw", builtin("throw", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("throw expects 1 argument, got %d", len(args))
		}
		return nil, NewUserThrown(args[0])
	}))

	topEnv.Set("apply", builtin("apply", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, NewWrongArguments("apply expects at least 1 argument")
		}
		fn := args[0]
		last, ok := AsSequence(args[len(args)-1])
		if !ok {
			return nil, NewWrongArguments("apply expects its last argument to be a sequence, got %T", args[len(args)-1])
		}
		callArgs := append(append([]Value{}, args[1:len(args)-1]...), last...)
		return Apply(fn, callArgs)
	}))

	topEnv.Set("map", builtin("map", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("map expects 2 arguments, got %d", len(args))
		}
		fn := args[0]
		seq, ok := AsSequence(args[1])
		if !ok {
			return nil, NewWrongArguments("map expects a sequence as its second argument, got %T", args[1])
		}
		out := make([]Value, len(seq))
		for i, item := range seq {
			result, err := Apply(fn, []Value{item})
			if err != nil {
				return nil, err
			}
			out[i] = result
		}
		return NewList(out...), nil
	}))

	topEnv.Set("eval", builtin("eval", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("eval expects 1 argument, got %d", len(args))
		}
		return Eval(args[0], topEnv)
	}))
}
