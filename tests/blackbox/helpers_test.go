//go:build blackbox

package blackbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// session returns the global flags of a fresh database for user.
func session(t *testing.T, user string) []string {
	t.Helper()
	dir := t.TempDir()
	return []string{"--db", filepath.Join(dir, "finplan.sqlite"), "--user", user, "--log-level", "error"}
}

func with(base []string, args ...string) []string {
	return append(append([]string{}, base...), args...)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
