package errors

import (
	"errors"
	"fmt"
)

// Store errors indicate the configuration store could not be used at all.
var (
	// ErrConfigurationDirectoryNotFound indicates no default root directory could be resolved.
	ErrConfigurationDirectoryNotFound = errors.New("unable to locate user configuration directory")

	// ErrConfigurationStoreNotFound indicates the root or its configurations directory is missing.
	ErrConfigurationStoreNotFound = errors.New("unable to find the gcloud configuration directory")

	// ErrNoConfigurationsFound indicates the configurations directory holds no valid configurations.
	ErrNoConfigurationsFound = errors.New("unable to find any gcloud configurations")
)

// Configuration errors indicate a problem with a named configuration.
var (
	// ErrUnknownConfiguration indicates no configuration exists with the given name.
	ErrUnknownConfiguration = errors.New("unable to find configuration")

	// ErrExistingConfiguration indicates the operation would overwrite an existing configuration.
	ErrExistingConfiguration = errors.New("configuration already exists")

	// ErrInvalidName indicates the configuration name does not match ^[a-z][-a-z0-9]*$.
	ErrInvalidName = errors.New("invalid configuration name")

	// ErrDeleteActiveConfiguration indicates an attempt to delete the active configuration.
	ErrDeleteActiveConfiguration = errors.New("unable to delete the configuration because it is currently active")
)

// Property errors indicate a failure reading, writing or validating properties.
var (
	// ErrLoadingProperties indicates a properties file could not be decoded.
	ErrLoadingProperties = errors.New("unable to load properties")

	// ErrSavingProperties indicates properties could not be encoded.
	ErrSavingProperties = errors.New("unable to save properties")

	// ErrInvalidRegion indicates a value is not a region such as europe-west1.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidZone indicates a value is not a zone such as europe-west1-d.
	ErrInvalidZone = errors.New("invalid zone")
)

// Selection errors are raised by the CLI when it cannot decide which configuration to use.
var (
	// ErrNoConfigurationSpecified indicates no name was given and no interactive prompt is possible.
	ErrNoConfigurationSpecified = errors.New("no configuration specified and stdin is not a terminal")

	// ErrNoConfigurationSelected indicates the interactive prompt was dismissed.
	ErrNoConfigurationSelected = errors.New("no configuration selected")
)

// NameError attaches a configuration name, or a rejected value, to a sentinel error.
type NameError struct {
	Err  error
	Name string
}

func (e *NameError) Error() string {
	switch e.Err {
	case ErrUnknownConfiguration:
		return fmt.Sprintf("unable to find configuration '%s'", e.Name)
	case ErrExistingConfiguration:
		return fmt.Sprintf("a configuration named '%s' already exists, use --force to overwrite it", e.Name)
	case ErrInvalidName:
		return fmt.Sprintf("'%s' is invalid, configuration names must start with a lowercase letter and only contain lowercase letters, numbers and hyphens", e.Name)
	}
	return fmt.Sprintf("%v: '%s'", e.Err, e.Name)
}

func (e *NameError) Unwrap() error {
	return e.Err
}

// PathError attaches a filesystem location to a sentinel error.
type PathError struct {
	Err  error
	Path string
}

func (e *PathError) Error() string {
	switch e.Err {
	case ErrConfigurationStoreNotFound:
		return fmt.Sprintf("unable to find the gcloud configuration directory at %s\n\nIs gcloud installed?", e.Path)
	case ErrNoConfigurationsFound:
		return fmt.Sprintf("unable to find any gcloud configurations in %s", e.Path)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Unknown reports that no configuration called name exists.
func Unknown(name string) error {
	return &NameError{Err: ErrUnknownConfiguration, Name: name}
}

// Existing reports that a configuration called name already exists.
func Existing(name string) error {
	return &NameError{Err: ErrExistingConfiguration, Name: name}
}

// InvalidName reports that name is not a valid configuration name.
func InvalidName(name string) error {
	return &NameError{Err: ErrInvalidName, Name: name}
}

// StoreNotFound reports that path is not a usable store directory.
func StoreNotFound(path string) error {
	return &PathError{Err: ErrConfigurationStoreNotFound, Path: path}
}

// NoConfigurations reports that path holds no configurations.
func NoConfigurations(path string) error {
	return &PathError{Err: ErrNoConfigurationsFound, Path: path}
}
