package configs

import (
	"os"
	"path/filepath"
	"testing"
)

// tempStore builds a store directory under t.TempDir().
type tempStore struct {
	t   *testing.T
	dir string
}

func newTempStore(t *testing.T) *tempStore {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, configurationsDir), 0755); err != nil {
		t.Fatalf("Failed to create configurations dir: %v", err)
	}
	return &tempStore{t: t, dir: dir}
}

// withConfig adds configurations/config_<name> holding content.
func (ts *tempStore) withConfig(name, content string) *tempStore {
	ts.t.Helper()
	return ts.withFile(configFilePrefix+name, content)
}

// withFile adds an arbitrary entry to the configurations directory.
func (ts *tempStore) withFile(filename, content string) *tempStore {
	ts.t.Helper()
	path := filepath.Join(ts.dir, configurationsDir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		ts.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return ts
}

// withActive writes the active pointer exactly as given.
func (ts *tempStore) withActive(name string) *tempStore {
	ts.t.Helper()
	path := filepath.Join(ts.dir, activeConfigFile)
	if err := os.WriteFile(path, []byte(name), 0644); err != nil {
		ts.t.Fatalf("Failed to write active pointer: %v", err)
	}
	return ts
}

// withActiveConfig adds an empty configuration and makes it active.
func (ts *tempStore) withActiveConfig(name string) *tempStore {
	ts.t.Helper()
	return ts.withConfig(name, "").withActive(name)
}

func (ts *tempStore) open() *Store {
	ts.t.Helper()
	store, err := Open(ts.dir)
	if err != nil {
		ts.t.Fatalf("Open failed: %v", err)
	}
	return store
}

func (ts *tempStore) configPath(name string) string {
	return filepath.Join(ts.dir, configurationsDir, configFilePrefix+name)
}

func (ts *tempStore) readConfig(name string) string {
	ts.t.Helper()
	data, err := os.ReadFile(ts.configPath(name))
	if err != nil {
		ts.t.Fatalf("Failed to read config %s: %v", name, err)
	}
	return string(data)
}

func (ts *tempStore) configExists(name string) bool {
	_, err := os.Stat(ts.configPath(name))
	return err == nil
}

func (ts *tempStore) readActive() string {
	ts.t.Helper()
	data, err := os.ReadFile(filepath.Join(ts.dir, activeConfigFile))
	if err != nil {
		ts.t.Fatalf("Failed to read active pointer: %v", err)
	}
	return string(data)
}

func names(configurations []Configuration) []string {
	out := make([]string, len(configurations))
	for i, c := range configurations {
		out[i] = c.Name()
	}
	return out
}
