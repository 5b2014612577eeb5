package gatekeeper

import "testing"

func TestParseCapitalStrings(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int64
		valid bool
	}{
		{"plain", "100000", 100_000, true},
		{"thousands separator", "100 000", 100_000, true},
		{"latin k", "100k", 100_000, true},
		{"cyrillic k", "100к", 100_000, true},
		{"fractional k", "1.5k", 1_500, true},
		{"comma fractional k", "1,5k", 1_500, true},
		{"qualifier word", "до 200000", 200_000, true},
		{"approx sign", "≈ 200000", 200_000, true},
		{"currency ruble", "150000 руб", 150_000, true},
		{"currency symbol", "100k ₽", 100_000, true},
		{"k inside word", "100кг", 100, true},
		{"letters only", "abc", 0, false},
		{"empty", "", 0, false},
		{"symbols only", "---", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseCapital(tc.raw)
			if ok != tc.valid {
				t.Fatalf("expected valid=%v got %v", tc.valid, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestParseCapitalNumbers(t *testing.T) {
	if got, ok := ParseCapital(150000); !ok || got != 150_000 {
		t.Fatalf("int: expected 150000 got %d (ok=%v)", got, ok)
	}
	if got, ok := ParseCapital(float64(99999.6)); !ok || got != 100_000 {
		t.Fatalf("float rounds: expected 100000 got %d (ok=%v)", got, ok)
	}
	if _, ok := ParseCapital(nil); ok {
		t.Fatalf("nil must be unparsable")
	}
	if _, ok := ParseCapital(true); ok {
		t.Fatalf("bool must be unparsable")
	}
}
