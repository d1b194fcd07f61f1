package cmd

import (
	"strings"
	"testing"
)

func TestRenderShellenv(t *testing.T) {
	tests := []struct {
		shell string
		wants []string
	}{
		{"bash", []string{"alias pw='bwx get'", "alias pwc='bwx copy'", "alias pwt='bwx totp'", "source <(bwx completion bash)"}},
		{"zsh", []string{"alias pw='bwx get'", "source <(bwx completion zsh)"}},
		{"fish", []string{"alias pw 'bwx get'", "bwx completion fish | source"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			script, err := renderShellenv(tt.shell)
			if err != nil {
				t.Fatalf("renderShellenv(%q) failed: %v", tt.shell, err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(script, want) {
					t.Errorf("script for %s missing %q:\n%s", tt.shell, want, script)
				}
			}
		})
	}
}

func TestRenderShellenv_UnsupportedShell(t *testing.T) {
	if _, err := renderShellenv("powershell"); err == nil {
		t.Error("renderShellenv should reject unsupported shells")
	}
}

func TestDetectShell(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"/usr/bin/zsh", "zsh"},
		{"/bin/bash", "bash"},
		{"/usr/local/bin/fish", "fish"},
		{"/bin/tcsh", "bash"}, // unknown shells fall back to bash
		{"", "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			if got := detectShell(); got != tt.want {
				t.Errorf("detectShell() with SHELL=%q = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}
