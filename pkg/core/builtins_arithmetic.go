package core

func asNumber(v Value) (Number, error) {
	n, ok := v.(Number)
	if !ok {
		return 0, NewNotANumber(v)
	}
	return n, nil
}

func numArgs(args []Value) ([]Number, error) {
	out := make([]Number, len(args))
	for i, a := range args {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func builtin(name string, fn func(args []Value, env *Environment) (Value, error)) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

func installArithmetic(env *Environment) {
	env.Set("+", builtin("+", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs(args)
		if err != nil {
			return nil, err
		}
		var sum Number
		for _, n := range nums {
			sum += n
		}
		return sum, nil
	}))

	env.Set("-", builtin("-", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs(args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, NewWrongArguments("- expects at least 1 argument")
		}
		if len(nums) == 1 {
			return -nums[0], nil
		}
		result := nums[0]
		for _, n := range nums[1:] {
			result -= n
		}
		return result, nil
	}))

	env.Set("*", builtin("*", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs(args)
		if err != nil {
			return nil, err
		}
		product := Number(1)
		for _, n := range nums {
			product *= n
		}
		return product, nil
	}))

	env.Set("/", builtin("/", func(args []Value, _ *Environment) (Value, error) {
		nums, err := numArgs(args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, NewWrongArguments("/ expects at least 1 argument")
		}
		if len(nums) == 1 {
			if nums[0] == 0 {
				return nil, NewDivideByZero()
			}
			return 1 / nums[0], nil
		}
		result := nums[0]
		for _, n := range nums[1:] {
			if n == 0 {
				return nil, NewDivideByZero()
			}
			result /= n
		}
		return result, nil
	}))

	env.Set("=", builtin("=", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 2 {
			return nil, NewWrongArguments("= expects 2 arguments, got %d", len(args))
		}
		return Bool(ValuesEqual(args[0], args[1])), nil
	}))

	cmp := func(name string, ok func(a, b Number) bool) *Builtin {
		return builtin(name, func(args []Value, _ *Environment) (Value, error) {
			if len(args) != 2 {
				return nil, NewWrongArguments("%s expects 2 arguments, got %d", name, len(args))
			}
			a, err := asNumber(args[0])
			if err != nil {
				return nil, err
			}
			b, err := asNumber(args[1])
			if err != nil {
				return nil, err
			}
			return Bool(ok(a, b)), nil
		})
	}
	env.Set("<", cmp("<", func(a, b Number) bool { return a < b }))
	env.Set("<=", cmp("<=", func(a, b Number) bool { return a <= b }))
	env.Set(">", cmp(">", func(a, b Number) bool { return a > b }))
	env.Set(">=", cmp(">=", func(a, b Number) bool { return a >= b }))
}
