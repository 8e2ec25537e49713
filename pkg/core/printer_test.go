package core

import "testing"

func TestPrStrReadable(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Number(42), "42"},
		{String("hi\nthere"), `"hi\nthere"`},
		{Nil{}, "nil"},
		{Bool(true), "true"},
		{Symbol("foo"), "foo"},
		{Keyword("bar"), ":bar"},
		{NewList(Number(1), Number(2)), "(1 2)"},
		{NewVector(Number(1), Number(2)), "[1 2]"},
		{NewHashMap(), "{}"},
	}
	for _, tt := range tests {
		if got := PrStr(tt.value, true); got != tt.expected {
			t.Errorf("PrStr(%#v, true) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestPrStrNonReadableStringsUnescaped(t *testing.T) {
	if got := PrStr(String("a\nb"), false); got != "a\nb" {
		t.Errorf("PrStr non-readable = %q, want raw string", got)
	}
}

func TestPrStrNestedCollections(t *testing.T) {
	inner := NewList(Number(1), Number(2))
	outer := NewVector(inner, String("x"))
	if got := PrStr(outer, true); got != `[(1 2) "x"]` {
		t.Errorf("PrStr nested = %q", got)
	}
}

func TestPrStrHashMapAscendingKeyOrder(t *testing.T) {
	hm, err := NewHashMapFromPairs([]Value{String("z"), Number(1), String("a"), Number(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := PrStr(hm, true); got != `{"a" 2 "z" 1}` {
		t.Errorf("PrStr hash-map = %q, want ascending key order", got)
	}
}

func TestPrStrAtom(t *testing.T) {
	a := NewAtom(Number(5))
	if got := PrStr(a, true); got != "(atom 5)" {
		t.Errorf("PrStr(atom) = %q", got)
	}
}
