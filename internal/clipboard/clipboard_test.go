package clipboard

import (
	"strings"
	"testing"
	"time"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint("correct horse")
	b := Fingerprint("correct horse")
	c := Fingerprint("battery staple")

	if a != b {
		t.Error("Fingerprint should be deterministic")
	}
	if a == c {
		t.Error("different values should have different fingerprints")
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}
}

func TestFingerprintNeverContainsValue(t *testing.T) {
	secret := "hunter2-super-secret"
	fp := Fingerprint(secret)
	if strings.Contains(fp, secret) {
		t.Error("fingerprint must not contain the value")
	}
}

func TestBuildClearArgs(t *testing.T) {
	secret := "my-password"
	fp := Fingerprint(secret)
	args := BuildClearArgs(30*time.Second, fp)

	want := []string{"clipboard-clear", "--delay", "30s", "--fingerprint", fp}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}

	// Invariant: the secret itself never appears on the child's argv.
	for _, arg := range args {
		if strings.Contains(arg, secret) {
			t.Errorf("argv leaks the secret: %q", arg)
		}
	}
}

func TestScheduleClear_ZeroDelayIsNoop(t *testing.T) {
	if err := ScheduleClear(0, Fingerprint("x")); err != nil {
		t.Errorf("ScheduleClear(0) should be a no-op, got: %v", err)
	}
	if err := ScheduleClear(-time.Second, Fingerprint("x")); err != nil {
		t.Errorf("ScheduleClear(<0) should be a no-op, got: %v", err)
	}
}
