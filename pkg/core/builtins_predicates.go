package core

func predicate(name string, test func(v Value) bool) *Builtin {
	return builtin(name, func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("%s expects 1 argument, got %d", name, len(args))
		}
		return Bool(test(args[0])), nil
	})
}

func installPredicates(env *Environment) {
	env.Set("nil?", predicate("nil?", func(v Value) bool { _, ok := v.(Nil); return ok }))
	env.Set("true?", predicate("true?", func(v Value) bool { b, ok := v.(Bool); return ok && bool(b) }))
	env.Set("false?", predicate("false?", func(v Value) bool { b, ok := v.(Bool); return ok && !bool(b) }))
	env.Set("symbol?", predicate("symbol?", func(v Value) bool { _, ok := v.(Symbol); return ok }))
	env.Set("keyword?", predicate("keyword?", func(v Value) bool { _, ok := v.(Keyword); return ok }))
	env.Set("string?", predicate("string?", func(v Value) bool { _, ok := v.(String); return ok }))
	env.Set("number?", predicate("number?", func(v Value) bool { _, ok := v.(Number); return ok }))
	env.Set("list?", predicate("list?", func(v Value) bool { _, ok := v.(*List); return ok }))
	env.Set("vector?", predicate("vector?", func(v Value) bool { _, ok := v.(*Vector); return ok }))
	env.Set("map?", predicate("map?", func(v Value) bool { _, ok := v.(*HashMap); return ok }))
	env.Set("sequential?", predicate("sequential?", IsSequential))
	env.Set("atom?", predicate("atom?", func(v Value) bool { _, ok := v.(*Atom); return ok }))
	env.Set("fn?", predicate("fn?", func(v Value) bool {
		switch f := v.(type) {
		case *Builtin:
			return true
		case *Lambda:
			return !f.IsMacro
		default:
			return false
		}
	}))
	env.Set("macro?", predicate("macro?", func(v Value) bool {
		l, ok := v.(*Lambda)
		return ok && l.IsMacro
	}))
}
