package player

import "testing"

func TestSplitName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, first, last string
	}{
		{"LeBron James", "LeBron", "James"},
		{"Karl-Anthony Towns", "Karl-Anthony", "Towns"},
		{"Nene", "", "Nene"},
		{" Shai Gilgeous-Alexander ", "Shai", "Gilgeous-Alexander"},
	}
	for _, tc := range cases {
		first, last := SplitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Fatalf("SplitName(%q)=(%q,%q), want (%q,%q)", tc.in, first, last, tc.first, tc.last)
		}
	}
}
