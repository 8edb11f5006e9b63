package workflows

import (
	"os"
	"path/filepath"
	"testing"
)

// setupStore creates a store with the given configurations and active pointer.
func setupStore(t *testing.T, active string, configs map[string]string) string {
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
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func configPath(dir, name string) string {
	return filepath.Join(dir, "configurations", "config_"+name)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func strPtr(s string) *string {
	return &s
}
