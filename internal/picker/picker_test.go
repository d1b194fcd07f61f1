package picker

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwx-cli/bwx/internal/bw"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		input     string
		candidate string
		want      bool
	}{
		{"", "anything", true},
		{"gh", "GitHub", true},
		{"github", "GitHub", true},
		{"GITHUB", "github", true},
		{"gh oct", "GitHub octocat", true}, // spaces in input are ignored
		{"ghoct", "GitHub octocat", true},
		{"octgh", "GitHub octocat", false}, // order matters
		{"gitlab", "GitHub", false},
		{"xyz", "GitHub", false},
		{"wrk", "Work VPN", true},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.candidate, func(t *testing.T) {
			if got := FuzzyMatch(tt.input, tt.candidate); got != tt.want {
				t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.input, tt.candidate, got, tt.want)
			}
		})
	}
}

func testItems() []bw.Item {
	return []bw.Item{
		{ID: "1", Name: "GitHub", Login: &bw.Login{Username: "work@example.com"}},
		{ID: "2", Name: "GitHub", Login: &bw.Login{Username: "personal@example.com"}},
		{ID: "3", Name: "GitLab", Login: &bw.Login{Username: "work@example.com"}},
	}
}

func TestResolve_NoMatches(t *testing.T) {
	_, err := Resolve(nil, "nope", false)
	if !errors.Is(err, kerrors.ErrItemNotFound) {
		t.Errorf("Resolve() error = %v, want ErrItemNotFound", err)
	}
}

func TestResolve_SingleMatch(t *testing.T) {
	items := testItems()[:1]

	item, err := Resolve(items, "github", false)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if item.ID != "1" {
		t.Errorf("resolved item id = %q, want 1", item.ID)
	}
}

func TestResolve_UniqueExactNameWins(t *testing.T) {
	items := []bw.Item{
		{ID: "1", Name: "GitHub Enterprise"},
		{ID: "2", Name: "GitHub"},
	}

	// "github" matches both by search, but exactly (case-insensitively)
	// names only the second; no picker needed even non-interactively.
	item, err := Resolve(items, "github", false)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if item.ID != "2" {
		t.Errorf("resolved item id = %q, want 2", item.ID)
	}
}

func TestResolve_AmbiguousNonInteractive(t *testing.T) {
	// Two items named exactly "GitHub": the exact-match rule cannot break
	// the tie, and without a terminal the picker cannot run.
	_, err := Resolve(testItems(), "github", false)
	if !errors.Is(err, kerrors.ErrAmbiguousItem) {
		t.Fatalf("Resolve() error = %v, want ErrAmbiguousItem", err)
	}

	// The error names the candidates so a script author can disambiguate.
	msg := err.Error()
	for _, want := range []string{"work@example.com", "personal@example.com"} {
		if !strings.Contains(msg, want) {
			t.Errorf("ambiguity error should list %q, got: %s", want, msg)
		}
	}
}
