package core

func installCollections(env *Environment) {
	env.Set("list", builtin("list", func(args []Value, _ *Environment) (Value, error) {
		return NewList(args...), nil
	}))

	env.Set("vector", builtin("vector", func(args []Value, _ *Environment) (Value, error) {
		return NewVector(args...), nil
	}))

	env.Set("hash-map", builtin("hash-map", func(args []Value, _ *Environment) (Value, error) {
		return NewHashMapFromPairs(args)
	}))

	env.Set("symbol", builtin("symbol", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("symbol expects 1 argument, got %d", len(args))
		}
		s, ok := args[0].(String)
		if !ok {
			return nil, NewWrongArguments("symbol expects a string, got %T", args[0])
		}
		return Symbol(string(s)), nil
	}))

	env.Set("keyword", builtin("keyword", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("keyword expects 1 argument, got %d", len(args))
		}
		switch v := args[0].(type) {
		case Keyword:
			return v, nil
		case String:
			return Keyword(string(v)), nil
		default:
			return nil, NewWrongArguments("keyword expects a string or keyword, got %T", args[0])
		}
	}))

	env.Set("atom", builtin("atom", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("atom expects 1 argument, got %d", len(args))
		}
		return NewAtom(args[0]), nil
	}))

	env.Set("cons", builtin("cons", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("cons expects 2 arguments, got %d", len(args))
		}
		rest, ok := AsSequence(args[1])
		if !ok {
			return nil, NewWrongArguments("cons expects a sequence as its second argument, got %T", args[1])
		}
		items := make([]Value, 0, len(rest)+1)
		items = append(items, args[0])
		items = append(items, rest...)
		return NewList(items...), nil
	}))

	env.Set("concat", builtin("concat", func(args []Value, _ *Environment) (Value, error) {
		var items []Value
		for _, a := range args {
			seq, ok := AsSequence(a)
			if !ok {
				return nil, NewWrongArguments("concat expects sequences, got %T", a)
			}
			items = append(items, seq...)
		}
		return NewList(items...), nil
	}))

	env.Set("first", builtin("first", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("first expects 1 argument, got %d", len(args))
		}
		seq, ok := AsSequence(args[0])
		if !ok {
			return nil, NewWrongArguments("first expects a sequence, got %T", args[0])
		}
		if len(seq) == 0 {
			return Nil{}, nil
		}
		return seq[0], nil
	}))

	env.Set("rest", builtin("rest", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("rest expects 1 argument, got %d", len(args))
		}
		seq, ok := AsSequence(args[0])
		if !ok {
			return nil, NewWrongArguments("rest expects a sequence, got %T", args[0])
		}
		if len(seq) == 0 {
			return NewList(), nil
		}
		return NewList(seq[1:]...), nil
	}))

	env.Set("nth", builtin("nth", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("nth expects 2 arguments, got %d", len(args))
		}
		seq, ok := AsSequence(args[0])
		if !ok {
			return nil, NewWrongArguments("nth expects a sequence, got %T", args[0])
		}
		idx, ok := args[1].(Number)
		if !ok {
			return nil, NewNotANumber(args[1])
		}
		if int(idx) < 0 || int(idx) >= len(seq) {
			return nil, NewIndexOutOfBounds(len(seq), int(idx))
		}
		return seq[int(idx)], nil
	}))

	env.Set("count", builtin("count", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("count expects 1 argument, got %d", len(args))
		}
		switch v := args[0].(type) {
		case *List:
			return Number(v.Count()), nil
		case *Vector:
			return Number(v.Count()), nil
		case *HashMap:
			return Number(v.Count()), nil
		case Nil:
			return Number(0), nil
		default:
			return nil, NewWrongArguments("count expects a sequence, got %T", args[0])
		}
	}))

	env.Set("empty?", builtin("empty?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("empty? expects 1 argument, got %d", len(args))
		}
		seq, ok := AsSequence(args[0])
		if !ok {
			return nil, NewWrongArguments("empty? expects a sequence, got %T", args[0])
		}
		return Bool(len(seq) == 0), nil
	}))

	env.Set("conj", builtin("conj", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, NewWrongArguments("conj expects at least 1 argument")
		}
		switch coll := args[0].(type) {
		case *List:
			items := make([]Value, 0, coll.Count()+len(args)-1)
			for i := len(args) - 1; i >= 1; i-- {
				items = append(items, args[i])
			}
			items = append(items, coll.Items()...)
			return NewList(items...), nil
		case *Vector:
			items := make([]Value, 0, coll.Count()+len(args)-1)
			items = append(items, coll.Items()...)
			items = append(items, args[1:]...)
			return NewVector(items...), nil
		default:
			return nil, NewWrongArguments("conj expects a list or vector, got %T", args[0])
		}
	}))

	env.Set("seq", builtin("seq", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("seq expects 1 argument, got %d", len(args))
		}
		switch v := args[0].(type) {
		case *List:
			if v.IsEmpty() {
				return Nil{}, nil
			}
			return v, nil
		case *Vector:
			if v.Count() == 0 {
				return Nil{}, nil
			}
			return NewList(v.Items()...), nil
		case String:
			if len(v) == 0 {
				return Nil{}, nil
			}
			runes := []rune(string(v))
			items := make([]Value, len(runes))
			for i, r := range runes {
				items[i] = String(string(r))
			}
			return NewList(items...), nil
		case Nil:
			return Nil{}, nil
		default:
			return nil, NewWrongArguments("seq expects a sequence or string, got %T", args[0])
		}
	}))

	env.Set("assoc", builtin("assoc", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, NewWrongArguments("assoc expects at least 1 argument")
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, NewWrongArguments("assoc expects a hash-map, got %T", args[0])
		}
		pairs := args[1:]
		if len(pairs)%2 != 0 {
			return nil, NewWrongArguments("assoc requires an even number of key/value arguments")
		}
		result := hm.Copy()
		for i := 0; i+1 < len(pairs); i += 2 {
			if err := result.Set(pairs[i], pairs[i+1]); err != nil {
				return nil, err
			}
		}
		return result, nil
	}))

	env.Set("dissoc", builtin("dissoc", func(args []Value, _ *Environment) (Value, error) {
		if len(args) < 1 {
			return nil, NewWrongArguments("dissoc expects at least 1 argument")
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, NewWrongArguments("dissoc expects a hash-map, got %T", args[0])
		}
		result := hm.Copy()
		for _, k := range args[1:] {
			if err := result.Delete(k); err != nil {
				return nil, err
			}
		}
		return result, nil
	}))

	env.Set("get", builtin("get", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("get expects 2 arguments, got %d", len(args))
		}
		if _, ok := args[0].(Nil); ok {
			return Nil{}, nil
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, NewWrongArguments("get expects a hash-map or nil, got %T", args[0])
		}
		return hm.Get(args[1]), nil
	}))

	env.Set("contains?", builtin("contains?", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("contains? expects 2 arguments, got %d", len(args))
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, NewWrongArguments("contains? expects a hash-map, got %T", args[0])
		}
		return Bool(hm.Has(args[1])), nil
	}))

	env.Set("keys", builtin("keys", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("keys expects 1 argument, got %d", len(args))
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, NewWrongArguments("keys expects a hash-map, got %T", args[0])
		}
		return NewList(hm.Keys()...), nil
	}))

	env.Set("vals", builtin("vals", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("vals expects 1 argument, got %d", len(args))
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, NewWrongArguments("vals expects a hash-map, got %T", args[0])
		}
		return NewList(hm.Vals()...), nil
	}))
}
