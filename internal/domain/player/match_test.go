package player

import "testing"

func TestMatch(t *testing.T) {
	t.Parallel()

	index := []Player{
		{ID: 1, FullName: "LeBron James Jr."},
		{ID: 2544, FullName: "LeBron James"},
		{ID: 3, FullName: "Bronny James"},
		{ID: 4, FullName: "Mike James"},
	}

	cases := []struct {
		name   string
		wantID int64
		found  bool
	}{
		{"lebron james", 2544, true},
		{"LeBron", 1, true},
		{"bronny", 3, true},
		{"James$", 2544, true},
		{"(James", 0, false},
		{"Kobe Bryant", 0, false},
		{"   ", 0, false},
	}
	for _, tc := range cases {
		got, ok := Match(index, tc.name)
		if ok != tc.found {
			t.Fatalf("Match(%q) found=%v, want %v", tc.name, ok, tc.found)
		}
		if got.ID != tc.wantID {
			t.Fatalf("Match(%q) id=%d, want %d", tc.name, got.ID, tc.wantID)
		}
	}
}
