package cmd

import "testing"

func TestCommandRegistration(t *testing.T) {
	root := GetRootCmd()

	want := []string{
		"unlock", "lock", "status", "sync", "get", "copy", "totp",
		"list", "generate", "session", "shellenv", "clipboard-clear",
	}

	registered := make(map[string]bool)
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered on the root command", name)
		}
	}
}

func TestClipboardClearIsHidden(t *testing.T) {
	for _, cmd := range GetRootCmd().Commands() {
		if cmd.Name() == "clipboard-clear" && !cmd.Hidden {
			t.Error("clipboard-clear must be hidden: it is an implementation detail of copy")
		}
	}
}

func TestResetGlobalState(t *testing.T) {
	verbose = true
	debug = true
	getField = "username"
	copyNoClear = true
	listSearch = "github"

	ResetGlobalState()

	if verbose || debug {
		t.Error("ResetGlobalState should clear verbosity flags")
	}
	if getField != "" {
		t.Error("ResetGlobalState should clear the get command's field flag")
	}
	if copyNoClear {
		t.Error("ResetGlobalState should clear the copy command's no-clear flag")
	}
	if listSearch != "" {
		t.Error("ResetGlobalState should clear the list command's search flag")
	}
}
