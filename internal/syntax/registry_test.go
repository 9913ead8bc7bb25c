package syntax

import (
	"reflect"
	"testing"
)

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	n, ok := r.Arity("factorial")
	if !ok || n != 1 {
		t.Errorf("factorial arity = %d, %v; want 1, true", n, ok)
	}
	if _, ok := r.Arity("fib"); ok {
		t.Error("fib should not be defined")
	}
}

func TestRegistryDefine(t *testing.T) {
	r := NewRegistry()
	if err := r.Define("max", 2); err != nil {
		t.Fatal(err)
	}
	if err := r.Define("factorial", 2); err != nil {
		t.Fatal(err)
	}
	if n, _ := r.Arity("factorial"); n != 2 {
		t.Errorf("redefined factorial arity = %d, want 2", n)
	}
	if got, want := r.Names(), []string{"factorial", "max"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryDefineErrors(t *testing.T) {
	r := NewRegistry()
	if err := r.Define("f", -1); err == nil {
		t.Error("negative arity accepted")
	}
	if err := r.Define("while", 1); err == nil {
		t.Error("keyword name accepted")
	}
	if _, ok := r.Arity("while"); ok {
		t.Error("rejected name was stored")
	}
}
