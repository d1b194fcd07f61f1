// Package notify sends best-effort desktop notifications. Delivery failures
// are swallowed: a missing notifier must never fail a vault operation.
package notify

import (
	"os/exec"
	"runtime"
)

// Notify shows a desktop notification with the given title and body.
// It returns silently if no notifier is available on this platform.
func Notify(title, body string) {
	name, args := command(runtime.GOOS, title, body)
	if name == "" {
		return
	}
	// Fire and forget. The notifier's exit status does not matter.
	_ = exec.Command(name, args...).Run()
}

// command maps a platform to its notifier invocation. Split out so the
// argument construction is testable without a desktop session.
func command(goos, title, body string) (string, []string) {
	switch goos {
	case "linux":
		return "notify-send", []string{"--expire-time=4000", title, body}
	case "darwin":
		script := "display notification " + appleQuote(body) + " with title " + appleQuote(title)
		return "osascript", []string{"-e", script}
	default:
		return "", nil
	}
}

// appleQuote wraps s in AppleScript double quotes, escaping embedded ones.
func appleQuote(s string) string {
	quoted := make([]rune, 0, len(s)+2)
	quoted = append(quoted, '"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			quoted = append(quoted, '\\')
		}
		quoted = append(quoted, r)
	}
	return string(append(quoted, '"'))
}
