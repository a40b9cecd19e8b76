package binder

import "testing"

type fakeValuer map[string]any

func (f fakeValuer) Value(name string) (any, bool) { v, ok := f[name]; return v, ok }

func TestLookupFirstMatchWins(t *testing.T) {
	r := New()
	r.Register("parent", Discriminator{"type": uint64(1)}, "first")
	r.Register("parent", Discriminator{"type": uint64(1)}, "second")

	child, ok := r.Lookup("parent", fakeValuer{"type": uint64(1)})
	if !ok || child != "first" {
		t.Fatalf("Lookup = %v, %v; want \"first\", true", child, ok)
	}
}

func TestLookupRequiresEveryDiscriminatorKey(t *testing.T) {
	r := New()
	r.Register("parent", Discriminator{"a": uint64(1), "b": uint64(2)}, "child")

	if _, ok := r.Lookup("parent", fakeValuer{"a": uint64(1)}); ok {
		t.Fatal("Lookup matched with only one of two discriminator keys present")
	}
	if _, ok := r.Lookup("parent", fakeValuer{"a": uint64(1), "b": uint64(99)}); ok {
		t.Fatal("Lookup matched with a mismatched discriminator value")
	}
	if _, ok := r.Lookup("parent", fakeValuer{"a": uint64(1), "b": uint64(2)}); !ok {
		t.Fatal("Lookup failed to match with every discriminator key present and equal")
	}
}

func TestLookupUnknownParentClass(t *testing.T) {
	r := New()
	if _, ok := r.Lookup("nobody", fakeValuer{}); ok {
		t.Fatal("Lookup matched against a parent class with no registered rules")
	}
}

func TestEmptyDiscriminatorAlwaysMatches(t *testing.T) {
	r := New()
	r.Register("parent", Discriminator{}, "child")
	if _, ok := r.Lookup("parent", fakeValuer{"anything": uint64(7)}); !ok {
		t.Fatal("Lookup with an empty discriminator should match any valuer")
	}
}
