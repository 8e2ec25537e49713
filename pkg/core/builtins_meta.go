package core

import (
	"fmt"
	"time"
)

func installMeta(env *Environment) {
	env.Set("meta", builtin("meta", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("meta expects 1 argument, got %d", len(args))
		}
		m, ok := args[0].(Metadatable)
		if !ok {
			return nil, NewWrongArguments("meta expects a list, vector, hash-map or function, got %T", args[0])
		}
		return m.Meta(), nil
	}))

	env.Set("with-meta", builtin("with-meta", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("with-meta expects 2 arguments, got %d", len(args))
		}
		m, ok := args[0].(Metadatable)
		if !ok {
			return nil, NewWrongArguments("with-meta expects a list, vector, hash-map or function, got %T", args[0])
		}
		return m.WithMeta(args[1]), nil
	}))

	env.Set("time-ms", builtin("time-ms", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 0 {
			return nil, NewWrongArguments("time-ms expects 0 arguments, got %d", len(args))
		}
		return Number(time.Now().UnixMilli()), nil
	}))

	gensymCounter := 0
	env.Set("gensym", builtin("gensym", func(args []Value, _ *Environment) (Value, error) {
		if len(args) > 1 {
			return nil, NewWrongArguments("gensym expects 0 or 1 arguments, got %d", len(args))
		}
		prefix := "G__"
		if len(args) == 1 {
			if s, ok := args[0].(String); ok {
				prefix = string(s)
			}
		}
		gensymCounter++
		return Symbol(fmt.Sprintf("%s%d", prefix, gensymCounter)), nil
	}))
}
