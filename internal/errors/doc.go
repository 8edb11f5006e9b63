// Package errors provides typed error values for gctx.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Errors that
// carry a configuration name or a path wrap their sentinel in a NameError or
// PathError, so both the condition and its subject survive wrapping.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Store errors: the store could not be located or is empty
//     (ErrConfigurationStoreNotFound, ErrNoConfigurationsFound)
//   - Configuration errors: a named configuration is missing, clashes or is
//     protected (ErrUnknownConfiguration, ErrExistingConfiguration)
//   - Property errors: a properties file could not be read or written, or a
//     value failed validation (ErrLoadingProperties, ErrInvalidZone)
//
// # Usage
//
// Return errors from internal packages:
//
//	if _, ok := s.configurations[name]; !ok {
//	    return errors.Unknown(name)
//	}
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrDeleteActiveConfiguration) {
//	    // Suggest activating another configuration first
//	}
//
// Recover the subject of the error:
//
//	var nameErr *kerrors.NameError
//	if errors.As(err, &nameErr) {
//	    fmt.Println(nameErr.Name)
//	}
package errors
