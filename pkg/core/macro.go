package core

// isMacroCall reports whether ast is a non-empty sequence whose head
// is a symbol bound in env to a lambda marked as a macro.
func isMacroCall(ast Value, env *Environment) (*Lambda, []Value, bool) {
	list, ok := ast.(*List)
	if !ok || list.IsEmpty() {
		return nil, nil, false
	}
	items := list.Items()
	sym, ok := items[0].(Symbol)
	if !ok {
		return nil, nil, false
	}
	val, err := env.Get(sym)
	if err != nil {
		return nil, nil, false
	}
	lambda, ok := val.(*Lambda)
	if !ok || !lambda.IsMacro {
		return nil, nil, false
	}
	return lambda, items[1:], true
}

// macroExpand repeatedly replaces ast with the result of applying its
// macro head to the unevaluated argument forms, until ast is no longer
// a macro call.
func macroExpand(ast Value, env *Environment) (Value, error) {
	for {
		lambda, args, ok := isMacroCall(ast, env)
		if !ok {
			return ast, nil
		}
		callEnv := NewEnvWithBinds(lambda.Env, lambda.Params, args)
		expanded, err := Eval(lambda.Body, callEnv)
		if err != nil {
			return nil, err
		}
		ast = expanded
	}
}
