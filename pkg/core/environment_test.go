package core

import "testing"

func TestEnvironmentSetGetFind(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("a", Number(1))
	inner := NewEnv(outer)
	inner.Set("b", Number(2))

	if v, err := inner.Get("a"); err != nil || v != Number(1) {
		t.Errorf("expected inner to find outer's a=1, got %v, %v", v, err)
	}
	if v, err := inner.Get("b"); err != nil || v != Number(2) {
		t.Errorf("expected inner's own b=2, got %v, %v", v, err)
	}
	if inner.Find("a") != outer {
		t.Errorf("Find(a) should return outer environment")
	}
	if inner.Find("missing") != nil {
		t.Errorf("Find(missing) should return nil")
	}
	if _, err := outer.Get("b"); err == nil {
		t.Errorf("outer should not see inner's bindings")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("x", Number(1))
	inner := NewEnv(outer)
	inner.Set("x", Number(2))

	if v, _ := inner.Get("x"); v != Number(2) {
		t.Errorf("inner binding should shadow outer, got %v", v)
	}
	if v, _ := outer.Get("x"); v != Number(1) {
		t.Errorf("outer binding should be unaffected by shadow, got %v", v)
	}
}

func TestEnvironmentUndefinedSymbolError(t *testing.T) {
	env := NewEnv(nil)
	_, err := env.Get("nope")
	malErr, ok := err.(*MalError)
	if !ok || malErr.Kind != KindUndefinedSymbol {
		t.Fatalf("expected KindUndefinedSymbol, got %v", err)
	}
}

func TestNewEnvWithBindsFixedArity(t *testing.T) {
	outer := NewEnv(nil)
	env := NewEnvWithBinds(outer, []Symbol{"a", "b"}, []Value{Number(1), Number(2)})
	if v, _ := env.Get("a"); v != Number(1) {
		t.Errorf("a = %v, want 1", v)
	}
	if v, _ := env.Get("b"); v != Number(2) {
		t.Errorf("b = %v, want 2", v)
	}
}

func TestNewEnvWithBindsVariadic(t *testing.T) {
	outer := NewEnv(nil)
	env := NewEnvWithBinds(outer, []Symbol{"a", "&", "rest"}, []Value{Number(1), Number(2), Number(3)})
	if v, _ := env.Get("a"); v != Number(1) {
		t.Errorf("a = %v, want 1", v)
	}
	rest, _ := env.Get("rest")
	if PrStr(rest, true) != "(2 3)" {
		t.Errorf("rest = %v, want (2 3)", rest)
	}
}

func TestNewEnvWithBindsVariadicNoRemaining(t *testing.T) {
	outer := NewEnv(nil)
	env := NewEnvWithBinds(outer, []Symbol{"&", "rest"}, []Value{})
	rest, _ := env.Get("rest")
	if PrStr(rest, true) != "()" {
		t.Errorf("rest = %v, want ()", rest)
	}
}

func TestNewEnvWithBindsTrailingAmpersandNoName(t *testing.T) {
	outer := NewEnv(nil)
	env := NewEnvWithBinds(outer, []Symbol{"a", "&"}, []Value{Number(1), Number(2), Number(3)})
	if v, _ := env.Get("a"); v != Number(1) {
		t.Errorf("a = %v, want 1", v)
	}
	if _, err := env.Get("&"); err == nil {
		t.Errorf("a trailing & with no following name should bind nothing, not panic")
	}
}

func TestNewEnvWithBindsLenientUnderflow(t *testing.T) {
	outer := NewEnv(nil)
	env := NewEnvWithBinds(outer, []Symbol{"a", "b"}, []Value{Number(1)})
	if v, _ := env.Get("a"); v != Number(1) {
		t.Errorf("a = %v, want 1", v)
	}
	if _, err := env.Get("b"); err == nil {
		t.Errorf("expected b to be unbound when args run out before params")
	}
}

func TestEnvironmentNames(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("a", Number(1))
	outer.Set("b", Number(2))
	inner := NewEnv(outer)
	inner.Set("b", Number(3))
	inner.Set("c", Number(4))

	names := inner.Names()
	expected := []string{"a", "b", "c"}
	if len(names) != len(expected) {
		t.Fatalf("Names() = %v, want %v", names, expected)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}
