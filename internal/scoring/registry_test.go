package scoring

import (
	"sync"
	"testing"
)

func TestRegistryResolvesStaticCatalog(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if r.Resolve("strategy-use-network") == nil {
		t.Fatalf("expected the static catalog to resolve")
	}
	if r.Resolve("") == nil {
		t.Fatalf("expected a default model under the empty name")
	}
}

func TestRegistryMemoizesDynamicModels(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	first := r.Resolve("constant(2)")
	if first == nil {
		t.Fatalf("expected constant(2) to resolve")
	}
	if second := r.Resolve("constant(2)"); second != first {
		t.Fatalf("expected the same instance on every resolution")
	}
}

func TestRegistryUnknownAndMalformedNames(t *testing.T) {
	t.Parallel()

	tests := []string{
		"some-made-up-model",
		"constant(abc)",
		"for-departement()",
		"not-",
		"not-some-made-up-model",
	}
	r := NewRegistry()
	for _, name := range tests {
		// Twice, so that memoized failures answer the same way.
		if r.Resolve(name) != nil || r.Resolve(name) != nil {
			t.Fatalf("expected %q to stay unresolved", name)
		}
	}
}

func TestRegistryConcurrentFirstResolution(t *testing.T) {
	t.Parallel()

	const goroutines = 16

	r := NewRegistry()
	resolved := make([]Model, goroutines)
	failed := make([]Model, goroutines)

	// All goroutines race on the very first resolution of a dynamic name.
	// Every one of them must observe the single winning instance, and a name
	// that cannot be constructed must stay unresolved for all of them.
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolved[i] = r.Resolve("not-for-departement(31, 75)")
			failed[i] = r.Resolve("not-some-made-up-model")
		}()
	}
	wg.Wait()

	if resolved[0] == nil {
		t.Fatalf("expected the negation to resolve")
	}
	for i := range goroutines {
		if resolved[i] != resolved[0] {
			t.Fatalf("goroutine %d observed a different instance", i)
		}
		if failed[i] != nil {
			t.Fatalf("goroutine %d resolved a name that cannot be constructed", i)
		}
	}
}

func TestRegistryNegation(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("always-two", &constantModel{value: 2})

	p := newTestContext(t, nil, nil)
	model := r.Resolve("not-always-two")
	if model == nil {
		t.Fatalf("expected the negation to resolve")
	}
	if got := model.Score(p).Value; got != 1 {
		t.Fatalf("expected 3 - 2 = 1, got %v", got)
	}
}

func TestRegistryNestedNegation(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("always-two", &constantModel{value: 2})

	p := newTestContext(t, nil, nil)
	model := r.Resolve("not-not-always-two")
	if model == nil {
		t.Fatalf("expected the double negation to resolve")
	}
	if got := model.Score(p).Value; got != 2 {
		t.Fatalf("expected the double negation to cancel out, got %v", got)
	}
}
