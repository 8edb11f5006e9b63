// Package configs manages the gcloud named configurations stored on disk.
//
// A store is a directory laid out the way gcloud lays out its own
// configuration directory:
//
//	<root>/
//	  active_config            name of the active configuration, no newline
//	  configurations/
//	    config_<name>          one properties file per configuration
//
// # Locating the Store
//
// ResolveLocation returns CLOUDSDK_CONFIG when it is set, otherwise the
// OS-specific default:
//   - Windows: %APPDATA%\gcloud
//   - Linux: ~/.config/gcloud (or $XDG_CONFIG_HOME/gcloud)
//   - macOS: ~/.config/gcloud
//
// Open takes the resolved root explicitly; OpenDefault composes the two.
//
// # Store Semantics
//
// The set of configurations is read once, when the store is opened. Entries
// that are directories, unreadable, or whose name (after the config_ prefix
// is stripped) is not a valid configuration name are skipped. Every mutating
// operation changes the disk first and the in-memory view second, so a
// failed operation never leaves the view claiming something the disk does
// not hold.
//
// Operations that introduce a name take a ConflictAction: Abort refuses to
// replace an existing configuration, Overwrite replaces it.
//
// Copy, Rename and Delete work on whole files and never decode them, so
// settings this package does not understand survive. Create and Describe go
// through the properties package and only see the recognized settings.
//
// A store is not safe for concurrent use, and nothing guards against two
// processes changing the same directory at once.
package configs
