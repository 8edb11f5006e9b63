package workflows

import (
	"context"

	"github.com/PolarWolf314/gctx/internal/configs"
)

// RenameOptions configures the rename workflow.
type RenameOptions struct {
	Location string
	OldName  string
	NewName  string

	// Force overwrites an existing configuration called NewName.
	Force bool
}

// RenameResult contains the outcome of a rename operation.
type RenameResult struct {
	OldName string
	NewName string

	// Active is true when the renamed configuration is the active one.
	Active bool

	// StalePointer is true when the file was renamed but the active pointer
	// still names OldName.
	StalePointer bool
}

// Rename renames a configuration. When it was active the active pointer is
// moved to the new name.
func Rename(ctx context.Context, opts RenameOptions) (*RenameResult, error) {
	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	return rename(store, opts)
}

// rename runs the rename on an open store. When the file was renamed but
// the active pointer could not follow it, a result with StalePointer set is
// returned along with the error.
func rename(store *configs.Store, opts RenameOptions) (*RenameResult, error) {
	result := &RenameResult{OldName: opts.OldName, NewName: opts.NewName}

	if err := store.Rename(opts.OldName, opts.NewName, configs.ConflictActionFromForce(opts.Force)); err != nil {
		_, oldExists := store.Find(opts.OldName)
		_, newExists := store.Find(opts.NewName)
		if opts.OldName != opts.NewName && !oldExists && newExists {
			result.StalePointer = true
			return result, err
		}
		return nil, err
	}

	if c, ok := store.Find(opts.NewName); ok {
		result.Active = store.IsActive(c)
	}
	return result, nil
}
