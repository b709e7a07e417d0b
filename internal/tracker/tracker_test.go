package tracker

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"agelookup/internal/validation"
)

func TestIncrement_NormalizesCase(t *testing.T) {
	tr := New()

	for _, name := range []string{"alice", "ALICE", "aLiCe"} {
		key, err := tr.Increment(name)
		if err != nil {
			t.Fatalf("Increment(%q) error = %v", name, err)
		}
		if key != "Alice" {
			t.Errorf("Increment(%q) key = %q, want %q", name, key, "Alice")
		}
	}

	want := map[string]int{"Alice": 3}
	if got := tr.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

func TestIncrement_EmptyName(t *testing.T) {
	tr := New()

	if _, err := tr.Increment(""); !errors.Is(err, validation.ErrEmptyName) {
		t.Errorf("Increment(\"\") error = %v, want ErrEmptyName", err)
	}
	if got := tr.Snapshot(); len(got) != 0 {
		t.Errorf("Snapshot() = %v, want empty", got)
	}
}

func TestSnapshot_EmptyIsNotNil(t *testing.T) {
	got := New().Snapshot()
	if got == nil {
		t.Fatal("Snapshot() = nil, want empty map")
	}
	if len(got) != 0 {
		t.Errorf("Snapshot() = %v, want empty", got)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	tr := New()
	if _, err := tr.Increment("bob"); err != nil {
		t.Fatal(err)
	}

	snap := tr.Snapshot()
	snap["Bob"] = 100
	snap["Mallory"] = 1

	want := map[string]int{"Bob": 1}
	if got := tr.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() after mutating copy = %v, want %v", got, want)
	}
}

func TestNames_Sorted(t *testing.T) {
	tr := New()
	for _, name := range []string{"eve", "bob", "carol", "BOB"} {
		if _, err := tr.Increment(name); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"Bob", "Carol", "Eve"}
	if got := tr.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestIncrement_Concurrent(t *testing.T) {
	tr := New()
	const workers, perWorker = 16, 250

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "alice"
			if i%2 == 0 {
				name = "ALICE"
			}
			for j := 0; j < perWorker; j++ {
				if _, err := tr.Increment(name); err != nil {
					t.Error(err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if got := tr.Snapshot()["Alice"]; got != workers*perWorker {
		t.Errorf("Alice count = %d, want %d", got, workers*perWorker)
	}
}
