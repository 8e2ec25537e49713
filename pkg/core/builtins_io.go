package core

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func installIO(env *Environment) {
	env.Set("pr-str", builtin("pr-str", func(args []Value, _ *Environment) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = PrStr(a, true)
		}
		return String(strings.Join(parts, " ")), nil
	}))

	env.Set("str", builtin("str", func(args []Value, _ *Environment) (Value, error) {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(PrStr(a, false))
		}
		return String(sb.String()), nil
	}))

	env.Set("prn", builtin("prn", func(args []Value, _ *Environment) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = PrStr(a, true)
		}
		fmt.Println(strings.Join(parts, " "))
		return Nil{}, nil
	}))

	env.Set("println", builtin("println", func(args []Value, _ *Environment) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = PrStr(a, false)
		}
		fmt.Println(strings.Join(parts, " "))
		return Nil{}, nil
	}))

	env.Set("read-string", builtin("read-string", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("read-string expects 1 argument, got %d", len(args))
		}
		s, ok := args[0].(String)
		if !ok {
			return nil, NewWrongArguments("read-string expects a string, got %T", args[0])
		}
		v, err := ReadString(string(s))
		if err != nil {
			if IsBlankInput(err) {
				return Nil{}, nil
			}
			return nil, err
		}
		return v, nil
	}))

	env.Set("slurp", builtin("slurp", func(args []Value, _ *Environment) (Value, error) {
		if len(args) != 1 {
			return nil, NewWrongArguments("slurp expects 1 argument, got %d", len(args))
		}
		path, ok := args[0].(String)
		if !ok {
			return nil, NewWrongArguments("slurp expects a string, got %T", args[0])
		}
		content, err := os.ReadFile(string(path))
		if err != nil {
			return nil, NewIOError("slurp: %v", err)
		}
		return String(content), nil
	}))

	var stdin *bufio.Scanner
	env.Set("readline", builtin("readline", func(args []Value, _ *Environment) (Value, error) {
		if len(args) > 1 {
			return nil, NewWrongArguments("readline expects 0 or 1 arguments, got %d", len(args))
		}
		if len(args) == 1 {
			if prompt, ok := args[0].(String); ok {
				fmt.Print(string(prompt))
			}
		}
		if stdin == nil {
			stdin = bufio.NewScanner(os.Stdin)
		}
		if !stdin.Scan() {
			if err := stdin.Err(); err != nil {
				return nil, NewIOError("readline: %v", err)
			}
			return Nil{}, nil
		}
		return String(stdin.Text()), nil
	}))
}
