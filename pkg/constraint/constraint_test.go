package constraint

import (
	"sync"
	"testing"
)

func TestRules_CanonicalOrderAndBounds(t *testing.T) {
	rules, err := Rules()
	if err != nil {
		t.Fatalf("Rules() failed: %v", err)
	}

	want := []Rule{
		{Field: "plate_length", Min: 50, Max: 500, Unit: "mm"},
		{Field: "plate_width", Min: 30, Max: 300, Unit: "mm"},
		{Field: "plate_thickness", Min: 3, Max: 20, Unit: "mm"},
		{Field: "letter_depth", Min: 2, Max: 20, Unit: "mm"},
		{Field: "text_size", Min: 10, Max: 100, Unit: "mm"},
		{Field: "line_spacing", Min: 10, Max: 100, Unit: "mm"},
	}

	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}

	for i, r := range rules {
		if r != want[i] {
			t.Errorf("rule %d = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("plate_thickness")
	if !ok {
		t.Fatal("expected plate_thickness rule")
	}
	if r.Min != 3 || r.Max != 20 || r.Unit != "mm" {
		t.Fatalf("unexpected rule: %+v", r)
	}

	if _, ok := Lookup("no_such_field"); ok {
		t.Fatal("expected miss for unknown field")
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plate_lenght", "plate_length"},
		{"platewidth", "plate_width"},
		{"letter_dept", "letter_depth"},
		{"completely_unrelated_name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Suggest(tt.input); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadStore_ConcurrentCallsReturnSamePointer(t *testing.T) {
	const n = 50
	stores := make([]*Store, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			stores[i], errs[i] = loadStore()
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("unexpected error from goroutine %d: %v", i, errs[i])
		}
		if stores[i] == nil {
			t.Fatalf("unexpected nil store from goroutine %d", i)
		}
	}

	first := stores[0]
	for i := 1; i < n; i++ {
		if stores[i] != first {
			t.Fatal("expected all goroutines to receive same store pointer")
		}
	}
}
