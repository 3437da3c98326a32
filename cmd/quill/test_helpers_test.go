package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"quill/internal/testsupport"
)

type cliTestEnv struct {
	baseDir     string
	configPath  string
	journalPath string
	vaultDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:     base,
		configPath:  filepath.Join(base, "config.toml"),
		journalPath: filepath.Join(base, "journal.db"),
		vaultDir:    filepath.Join(base, "vault"),
	}

	configText := fmt.Sprintf(`[paths]
log_dir = %q
journal_path = %q

[log]
level = "info"
format = "console"

[engine]
framework = "Theophysics"
recursive = true

[wikipedia]
enabled = false
`, filepath.Join(base, "logs"), env.journalPath)

	testsupport.WriteVaultFile(t, base, "config.toml", configText)
	testsupport.WriteVaultFile(t, env.vaultDir, "logos_field.md",
		testsupport.TermDoc{Term: "Logos Field"}.Render())
	return env
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--config", env.configPath))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}
