package configs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/gctx/internal/errors"
	"github.com/PolarWolf314/gctx/internal/properties"
)

const (
	configurationsDir = "configurations"
	activeConfigFile  = "active_config"
	configFilePrefix  = "config_"
)

// Store is the in-memory view of a gcloud configuration directory.
type Store struct {
	location           string
	configurationsPath string
	configurations     map[string]Configuration
	active             string
}

// Open scans the store rooted at location.
//
// Returns ErrConfigurationStoreNotFound if location or its configurations
// directory is missing, and ErrNoConfigurationsFound if no valid
// configuration is found.
func Open(location string) (*Store, error) {
	if !isDir(location) {
		return nil, kerrors.StoreNotFound(location)
	}

	configurationsPath := filepath.Join(location, configurationsDir)
	if !isDir(configurationsPath) {
		return nil, kerrors.StoreNotFound(configurationsPath)
	}

	configurations, err := scanConfigurations(configurationsPath)
	if err != nil {
		return nil, err
	}
	if len(configurations) == 0 {
		return nil, kerrors.NoConfigurations(configurationsPath)
	}

	// The pointer is used byte for byte; gcloud never writes a newline.
	active, err := os.ReadFile(filepath.Join(location, activeConfigFile))
	if err != nil {
		return nil, fmt.Errorf("reading active configuration: %w", err)
	}

	return &Store{
		location:           location,
		configurationsPath: configurationsPath,
		configurations:     configurations,
		active:             string(active),
	}, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// scanConfigurations collects the valid configurations in dir, skipping
// anything it cannot use.
func scanConfigurations(dir string) (map[string]Configuration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	configurations := make(map[string]Configuration)
	for _, entry := range entries {
		filename := entry.Name()
		if !utf8.ValidString(filename) {
			continue
		}

		// Permission errors or entries removed mid-scan.
		info, err := entry.Info()
		if err != nil || info.IsDir() {
			continue
		}

		name := strings.TrimPrefix(filename, configFilePrefix)
		if !IsValidName(name) {
			continue
		}

		// config_<name> wins over a bare <name> file.
		if _, exists := configurations[name]; exists && !strings.HasPrefix(filename, configFilePrefix) {
			continue
		}

		configurations[name] = Configuration{
			name: name,
			path: filepath.Join(dir, filename),
		}
	}

	return configurations, nil
}

// Location returns the root directory of the store.
func (s *Store) Location() string {
	return s.location
}

// ConfigurationsPath returns the directory holding the configuration files.
func (s *Store) ConfigurationsPath() string {
	return s.configurationsPath
}

// Active returns the name of the active configuration. It may name a
// configuration that no longer exists.
func (s *Store) Active() string {
	return s.active
}

// Configurations returns every configuration sorted by name.
func (s *Store) Configurations() []Configuration {
	list := make([]Configuration, 0, len(s.configurations))
	for _, c := range s.configurations {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Compare(list[j]) < 0
	})
	return list
}

// Find looks up a configuration by name.
func (s *Store) Find(name string) (Configuration, bool) {
	c, ok := s.configurations[name]
	return c, ok
}

// IsActive reports whether c is the active configuration.
func (s *Store) IsActive(c Configuration) bool {
	return c.name == s.active
}

// Activate makes name the active configuration.
func (s *Store) Activate(name string) error {
	c, ok := s.configurations[name]
	if !ok {
		return kerrors.Unknown(name)
	}

	path := filepath.Join(s.location, activeConfigFile)
	if err := os.WriteFile(path, []byte(c.name), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	s.active = c.name
	return nil
}

// Create writes a new configuration holding props.
func (s *Store) Create(name string, props properties.Properties, conflict ConflictAction) error {
	if err := s.checkDestination(name, conflict); err != nil {
		return err
	}

	// Encode before touching the file so a failure cannot truncate an
	// existing configuration.
	var buf bytes.Buffer
	if err := properties.Encode(&buf, props); err != nil {
		return err
	}

	path := s.filePath(name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	s.configurations[name] = Configuration{name: name, path: path}
	return nil
}

// Copy duplicates the file behind srcName as destName. The bytes are copied
// as-is so unrecognized settings are kept.
func (s *Store) Copy(srcName, destName string, conflict ConflictAction) error {
	src, ok := s.configurations[srcName]
	if !ok {
		return kerrors.Unknown(srcName)
	}

	if err := s.checkDestination(destName, conflict); err != nil {
		return err
	}

	// Copying onto itself would truncate the source.
	if srcName == destName {
		return nil
	}

	path := s.filePath(destName)
	if err := copyFile(src.path, path); err != nil {
		return err
	}

	s.configurations[destName] = Configuration{name: destName, path: path}
	return nil
}

func copyFile(srcPath, destPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", srcPath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}

	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return fmt.Errorf("copying %s to %s: %w", srcPath, destPath, err)
	}

	if err := dest.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", destPath, err)
	}
	return nil
}

// Rename moves oldName to newName. If oldName was active, newName is
// activated afterwards; should that fail, the file has been renamed but the
// active pointer still names oldName.
func (s *Store) Rename(oldName, newName string, conflict ConflictAction) error {
	src, ok := s.configurations[oldName]
	if !ok {
		return kerrors.Unknown(oldName)
	}

	wasActive := s.IsActive(src)

	if err := s.checkDestination(newName, conflict); err != nil {
		return err
	}

	path := filepath.Join(filepath.Dir(src.path), configFilePrefix+newName)
	if err := os.Rename(src.path, path); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", src.path, path, err)
	}

	delete(s.configurations, oldName)
	s.configurations[newName] = Configuration{name: newName, path: path}

	if wasActive {
		return s.Activate(newName)
	}
	return nil
}

// Delete removes a configuration. The active configuration cannot be
// deleted.
func (s *Store) Delete(name string) error {
	c, ok := s.configurations[name]
	if !ok {
		return kerrors.Unknown(name)
	}

	if s.IsActive(c) {
		return kerrors.ErrDeleteActiveConfiguration
	}

	if err := os.Remove(c.path); err != nil {
		return fmt.Errorf("removing %s: %w", c.path, err)
	}

	delete(s.configurations, name)
	return nil
}

// Describe decodes the recognized settings of a configuration.
func (s *Store) Describe(name string) (properties.Properties, error) {
	c, ok := s.configurations[name]
	if !ok {
		return properties.Properties{}, kerrors.Unknown(name)
	}

	return properties.DecodeFile(c.path)
}

// checkDestination validates a name an operation is about to introduce.
func (s *Store) checkDestination(name string, conflict ConflictAction) error {
	if !IsValidName(name) {
		return kerrors.InvalidName(name)
	}

	if _, exists := s.configurations[name]; exists && conflict == Abort {
		return kerrors.Existing(name)
	}

	return nil
}

func (s *Store) filePath(name string) string {
	return filepath.Join(s.configurationsPath, configFilePrefix+name)
}
