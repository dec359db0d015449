package textmatch

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Hello   World  ", "hello world"},
		{"ALREADY", "already"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name     string
		user     string
		expected string
		want     bool
	}{
		{"exact", "receive", "receive", true},
		{"case and spacing", "  ReCeive ", "receive", true},
		{"adjacent swap", "recieve", "receive", true},
		{"doubled letter via ratio", "wining", "winning", true},
		{"dropped letter", "hapen", "happen", true},
		{"single substitution", "aboud", "about", true},
		{"different word", "wrong", "right", false},
		{"short words stay strict", "walk", "talk", false},
		{"short swap stays strict", "hte", "the", false},
		{"two edits", "recieves", "receive", false},
		{"empty user", "", "receive", false},
		{"empty expected", "receive", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Match(tc.user, tc.expected); got != tc.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tc.user, tc.expected, got, tc.want)
			}
		})
	}
}

func TestContainsWord(t *testing.T) {
	cases := []struct {
		s, word string
		want    bool
	}{
		{"in spite of the rain", "spite", true},
		{"In SPITE of", "spite", true},
		{"despite the rain", "spite", false},
		{"", "spite", false},
		{"spite", "", false},
	}
	for _, tc := range cases {
		if got := ContainsWord(tc.s, tc.word); got != tc.want {
			t.Errorf("ContainsWord(%q, %q) = %v, want %v", tc.s, tc.word, got, tc.want)
		}
	}
}
