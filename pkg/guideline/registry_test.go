package guideline

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewRegistry_SeedsDefaultWhenEmpty(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	if len(names) != 1 || names[0] != DefaultName {
		t.Fatalf("Names() = %q, want [%q]", names, DefaultName)
	}
	g, ok := r.Get(DefaultName)
	if !ok {
		t.Fatal("default guideline not found after seeding")
	}
	if len(g.Rules) != 9 {
		t.Errorf("seeded guideline has %d rules, want 9", len(g.Rules))
	}
	if !r.HasAny() {
		t.Error("HasAny() = false after seeding")
	}
}

func TestNewRegistry_NoSeedWhenLoaded(t *testing.T) {
	r := NewRegistry(Guideline{Name: "custom", Rules: []string{"r"}})

	if _, ok := r.Get(DefaultName); ok {
		t.Error("default guideline seeded despite loaded data")
	}
	names := r.Names()
	if len(names) != 1 || names[0] != "custom" {
		t.Errorf("Names() = %q, want [\"custom\"]", names)
	}
}

func TestRegistry_UpsertGetDelete(t *testing.T) {
	r := NewRegistry()

	r.Upsert(Guideline{Name: "x", Description: "d", Rules: []string{"r1", "r2"}})

	g, ok := r.Get("x")
	if !ok {
		t.Fatal("Get(x) not found after Upsert")
	}
	if g.Description != "d" {
		t.Errorf("Description = %q, want %q", g.Description, "d")
	}
	if len(g.Rules) != 2 || g.Rules[0] != "r1" || g.Rules[1] != "r2" {
		t.Errorf("Rules = %q, want [r1 r2]", g.Rules)
	}

	if !r.Delete("x") {
		t.Error("Delete(x) = false, want true")
	}
	if _, ok := r.Get("x"); ok {
		t.Error("Get(x) found after Delete")
	}
	for _, name := range r.Names() {
		if name == "x" {
			t.Error("Names() still contains deleted guideline")
		}
	}
}

func TestRegistry_DeleteAbsent(t *testing.T) {
	r := NewRegistry()
	if r.Delete("missing") {
		t.Error("Delete(missing) = true, want false")
	}
}

func TestRegistry_UpsertReplacesInPlace(t *testing.T) {
	r := NewRegistry(
		Guideline{Name: "a", Rules: []string{"1"}},
		Guideline{Name: "b", Rules: []string{"1"}},
		Guideline{Name: "c", Rules: []string{"1"}},
	)

	r.Upsert(Guideline{Name: "b", Description: "updated", Rules: []string{"2"}})

	names := r.Names()
	want := []string{"a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %q, want %q", names, want)
		}
	}
	g, _ := r.Get("b")
	if g.Description != "updated" || g.Rules[0] != "2" {
		t.Errorf("Get(b) = %+v, not replaced", g)
	}
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := NewRegistry(Guideline{Name: "first", Rules: []string{"r"}})
	r.Upsert(Guideline{Name: "second", Rules: []string{"r"}})
	r.Upsert(Guideline{Name: "third", Rules: []string{"r"}})

	names := r.Names()
	want := []string{"first", "second", "third"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %q, want %q", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	snapshot := r.Snapshot()
	for i := range want {
		if snapshot[i].Name != want[i] {
			t.Errorf("Snapshot()[%d].Name = %q, want %q", i, snapshot[i].Name, want[i])
		}
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("g%d", i)
			r.Upsert(Guideline{Name: name, Rules: []string{"r"}})
			r.Get(name)
			r.Names()
			r.Snapshot()
		}(i)
	}
	wg.Wait()

	if got := len(r.Names()); got != 9 { // 8 + seeded default
		t.Errorf("len(Names()) = %d, want 9", got)
	}
}
