package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds per-test file locations for commands that touch the store.
type testEnv struct {
	dir        string
	configPath string
	dataPath   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "orbitr.yaml"),
		dataPath:   filepath.Join(dir, "instance", "rso_store.json"),
	}
}

// writeConfig writes a config file the commands will load.
func (e *testEnv) writeConfig(t *testing.T, body string) {
	t.Helper()
	if err := os.WriteFile(e.configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// run executes the root command with the env's config and data flags.
// It returns stdout; stderr only carries log output.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return e.runWithInput(t, nil, args...)
}

func (e *testEnv) runWithInput(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	if stdin != nil {
		cmd.SetIn(bytes.NewReader(stdin))
	}
	cmd.SetArgs(append([]string{"--config", e.configPath, "--data", e.dataPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}
