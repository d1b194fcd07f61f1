package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	// Code formatter should not have backticks when color is enabled.
	result := Code.Sprint("bwx unlock")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "bwx unlock", "`bwx unlock`"},
		{"Path has no decoration", Path, "~/.config/bwx/config.toml", "~/.config/bwx/config.toml"},
		{"Flag has no decoration", Flag, "--field", "--field"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "github.com", "'github.com'"},
		{"Muted adds parentheses", Muted, "expired", "(expired)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "\n"},
		{"done", "done\n"},
		{"done\n", "done\n"},
	}
	for _, tt := range tests {
		if got := EnsureNewline(tt.in); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
