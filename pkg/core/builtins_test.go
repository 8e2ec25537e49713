package core

import "testing"

func TestBuiltinsCollections(t *testing.T) {
	env := newTestREPLEnv(t)
	tests := []struct{ input, expected string }{
		{"(list 1 2 3)", "(1 2 3)"},
		{"(list? (list 1 2))", "true"},
		{"(vector 1 2 3)", "[1 2 3]"},
		{"(vector? (vector 1 2))", "true"},
		{"(vector? (list 1 2))", "false"},
		{"(symbol \"foo\")", "foo"},
		{"(keyword \"foo\")", ":foo"},
		{"(keyword :foo)", ":foo"},
		{"(cons 1 (list 2 3))", "(1 2 3)"},
		{"(concat (list 1 2) (list 3 4))", "(1 2 3 4)"},
		{"(concat)", "()"},
		{"(first (list 1 2 3))", "1"},
		{"(first nil)", "nil"},
		{"(rest (list 1 2 3))", "(2 3)"},
		{"(rest nil)", "()"},
		{"(nth (list 1 2 3) 1)", "2"},
		{"(count (list 1 2 3))", "3"},
		{"(count nil)", "0"},
		{"(empty? (list))", "true"},
		{"(empty? (list 1))", "false"},
		{"(conj (list 1 2) 3 4)", "(4 3 1 2)"},
		{"(conj (vector 1 2) 3 4)", "[1 2 3 4]"},
		{"(seq (list 1 2))", "(1 2)"},
		{"(seq [1 2])", "(1 2)"},
		{"(seq \"ab\")", `("a" "b")`},
		{"(seq nil)", "nil"},
		{"(seq [])", "nil"},
	}
	for _, tt := range tests {
		if got := evalToString(t, env, tt.input); got != tt.expected {
			t.Errorf("eval(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuiltinsNthOutOfBounds(t *testing.T) {
	env := newTestREPLEnv(t)
	expr, _ := ReadString("(nth (list 1 2) 5)")
	_, err := Eval(expr, env)
	malErr, ok := err.(*MalError)
	if !ok || malErr.Kind != KindIndexOutOfBounds {
		t.Fatalf("expected KindIndexOutOfBounds, got %v", err)
	}
}

func TestBuiltinsHashMapOps(t *testing.T) {
	env := newTestREPLEnv(t)
	tests := []struct{ input, expected string }{
		{`(get {"a" 1} "a")`, "1"},
		{`(get {"a" 1} "b")`, "nil"},
		{"(get nil \"a\")", "nil"},
		{`(contains? {"a" 1} "a")`, "true"},
		{`(contains? {"a" 1} "b")`, "false"},
		{`(assoc {"a" 1} "b" 2)`, `{"a" 1 "b" 2}`},
		{`(assoc {} "a" 1)`, `{"a" 1}`},
		{`(dissoc {"a" 1 "b" 2} "a")`, `{"b" 2}`},
		{`(keys {"a" 1 "b" 2})`, `("a" "b")`},
		{`(vals {"a" 1 "b" 2})`, "(1 2)"},
		{`(map? {"a" 1})`, "true"},
		{`(map? (list 1))`, "false"},
	}
	for _, tt := range tests {
		if got := evalToString(t, env, tt.input); got != tt.expected {
			t.Errorf("eval(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuiltinsAssocDoesNotMutateOriginal(t *testing.T) {
	env := newTestREPLEnv(t)
	evalToString(t, env, `(def! m {"a" 1})`)
	evalToString(t, env, `(def! m2 (assoc m "b" 2))`)
	if got := evalToString(t, env, "m"); got != `{"a" 1}` {
		t.Errorf("assoc must not mutate its argument, original m = %s", got)
	}
	if got := evalToString(t, env, "m2"); got != `{"a" 1 "b" 2}` {
		t.Errorf("m2 = %s, want updated copy", got)
	}
}

func TestBuiltinsStrAndPrStr(t *testing.T) {
	env := newTestREPLEnv(t)
	tests := []struct{ input, expected string }{
		{`(str "a" "b" 1)`, `"ab1"`},
		{`(str)`, `""`},
		{`(pr-str "a" "b")`, `"\"a\" \"b\""`},
		{`(pr-str)`, `""`},
	}
	for _, tt := range tests {
		if got := evalToString(t, env, tt.input); got != tt.expected {
			t.Errorf("eval(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
