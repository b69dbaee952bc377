package jsonpp

import (
	"sort"
	"testing"
)

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", Int(1))
	obj.Set("a", Int(2))
	obj.Set("m", Int(3))

	got := obj.Keys()
	want := []string{"b", "a", "m"}
	if len(got) != len(want) {
		t.Fatalf("unexpected key count: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected key order: got %v, want %v", got, want)
		}
	}
}

func TestObjectSetReplacesInPlace(t *testing.T) {
	obj := NewObject()
	obj.Set("b", Int(1))
	obj.Set("a", Int(2))
	obj.Set("b", Int(99))

	if obj.Len() != 2 {
		t.Fatalf("expected 2 entries after replace, got %d", obj.Len())
	}
	if got := obj.Keys(); got[0] != "b" || got[1] != "a" {
		t.Fatalf("replace moved key position: %v", got)
	}
	v, ok := obj.Get("b")
	if !ok || v != Int(99) {
		t.Fatalf("expected replaced value 99, got %v (ok=%v)", v, ok)
	}
}

func TestObjectKeysReturnsCopy(t *testing.T) {
	obj := NewObject()
	obj.Set("b", Int(1))
	obj.Set("a", Int(2))

	keys := obj.Keys()
	sort.Strings(keys)

	if got := obj.Keys(); got[0] != "b" {
		t.Fatalf("sorting the returned slice mutated the object: %v", got)
	}
}

func TestObjectGetMissing(t *testing.T) {
	obj := NewObject()
	if v, ok := obj.Get("nope"); ok || v != nil {
		t.Fatalf("expected miss, got %v (ok=%v)", v, ok)
	}
}

func TestValueKinds(t *testing.T) {
	cases := []struct {
		v    Value
		want Kind
	}{
		{Null{}, KindNull},
		{Bool(true), KindBool},
		{Int(7), KindInt},
		{Float(7.5), KindFloat},
		{String("s"), KindString},
		{Array{}, KindArray},
		{NewObject(), KindObject},
	}
	for _, tc := range cases {
		if got := tc.v.Kind(); got != tc.want {
			t.Fatalf("Kind of %T: got %v, want %v", tc.v, got, tc.want)
		}
	}
}
