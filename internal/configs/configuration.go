package configs

import (
	"regexp"
	"strings"
)

var nameRegex = regexp.MustCompile(`^[a-z][-a-z0-9]*$`)

// IsValidName reports whether name is a valid configuration name: a
// lowercase ASCII letter followed by lowercase letters, digits or hyphens.
func IsValidName(name string) bool {
	return nameRegex.MatchString(name)
}

// Configuration is a named configuration backed by a file.
type Configuration struct {
	name string
	path string
}

// Name returns the configuration name.
func (c Configuration) Name() string {
	return c.name
}

// Path returns the file backing the configuration.
func (c Configuration) Path() string {
	return c.path
}

// Compare orders configurations by name.
func (c Configuration) Compare(other Configuration) int {
	return strings.Compare(c.name, other.name)
}

// Equal reports whether both configurations have the same name.
func (c Configuration) Equal(other Configuration) bool {
	return c.name == other.name
}

// ConflictAction decides what happens when an operation would introduce a
// name that already exists.
type ConflictAction int

const (
	// Abort fails the operation with ErrExistingConfiguration.
	Abort ConflictAction = iota

	// Overwrite replaces the existing configuration.
	Overwrite
)

// ConflictActionFromForce maps a --force flag to a ConflictAction.
func ConflictActionFromForce(force bool) ConflictAction {
	if force {
		return Overwrite
	}
	return Abort
}

func (a ConflictAction) String() string {
	switch a {
	case Abort:
		return "abort"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}
