//go:build blackbox

package blackbox

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var finplanBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "finplan-blackbox-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	finplanBin = filepath.Join(tmp, "finplan")

	// Build the binary once for all tests.
	cmd := exec.Command("go", "build", "-o", finplanBin, "../../cmd/finplan")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// run executes the binary and fails the test on a non-zero exit.
func run(t *testing.T, args ...string) string {
	t.Helper()

	out, err := exec.Command(finplanBin, args...).Output()
	if err != nil {
		msg := ""
		if ee, ok := err.(*exec.ExitError); ok {
			msg = string(ee.Stderr)
		}
		t.Fatalf("command failed: %v\nargs: %v\nstderr:\n%s", err, args, msg)
	}
	return string(out)
}

// runFail executes the binary and expects a non-zero exit. It returns
// stderr.
func runFail(t *testing.T, args ...string) string {
	t.Helper()

	out, err := exec.Command(finplanBin, args...).Output()
	ee, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected failure, got err=%v\nargs: %v\nstdout:\n%s", err, args, string(out))
	}
	return string(ee.Stderr)
}
