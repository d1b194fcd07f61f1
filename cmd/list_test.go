package cmd

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string untouched", "GitHub", 10, "GitHub"},
		{"exact fit untouched", "GitHub", 6, "GitHub"},
		{"long string gets ellipsis", "GitHub Enterprise Server", 10, "GitHub En…"},
		{"multibyte safe", "Kōnto łogin één", 8, "Kōnto ł…"},
		{"tiny budget", "anything", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
