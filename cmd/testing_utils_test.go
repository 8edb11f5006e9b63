package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// setupTestStore creates a gcloud configuration directory, points
// CLOUDSDK_CONFIG at it and returns its path.
func setupTestStore(t *testing.T, active string, configs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	configurations := filepath.Join(dir, "configurations")
	if err := os.Mkdir(configurations, 0755); err != nil {
		t.Fatalf("Failed to create configurations dir: %v", err)
	}
	for name, content := range configs {
		path := filepath.Join(configurations, "config_"+name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "active_config"), []byte(active), 0644); err != nil {
		t.Fatalf("Failed to write active pointer: %v", err)
	}

	t.Setenv("CLOUDSDK_CONFIG", dir)
	t.Setenv("NO_COLOR", "1")
	return dir
}

// executeGctx runs the root command with args and returns what it wrote to
// stdout and stderr.
func executeGctx(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	ResetGctxState()
	t.Cleanup(ResetGctxState)

	var stdout, stderr bytes.Buffer
	GctxCmd.SetOut(&stdout)
	GctxCmd.SetErr(&stderr)
	GctxCmd.SetArgs(args)
	t.Cleanup(func() {
		GctxCmd.SetOut(nil)
		GctxCmd.SetErr(nil)
		GctxCmd.SetArgs(nil)
	})

	err := GctxCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readActivePointer(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "active_config"))
	if err != nil {
		t.Fatalf("Failed to read active pointer: %v", err)
	}
	return string(data)
}

func readConfigFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "configurations", "config_"+name))
	if err != nil {
		t.Fatalf("Failed to read configuration %s: %v", name, err)
	}
	return string(data)
}

func configFileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, "configurations", "config_"+name))
	return err == nil
}
