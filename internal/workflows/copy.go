package workflows

import (
	"context"

	"github.com/PolarWolf314/gctx/internal/configs"
)

// CopyOptions configures the copy workflow.
type CopyOptions struct {
	Location    string
	Source      string
	Destination string

	// Force overwrites an existing destination.
	Force bool

	// Activate makes the copy active.
	Activate bool
}

// CopyResult contains the outcome of a copy operation.
type CopyResult struct {
	Source      string
	Destination string
	Activated   bool
}

// Copy duplicates a configuration, keeping every setting in the file.
func Copy(ctx context.Context, opts CopyOptions) (*CopyResult, error) {
	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	if err := store.Copy(opts.Source, opts.Destination, configs.ConflictActionFromForce(opts.Force)); err != nil {
		return nil, err
	}

	result := &CopyResult{Source: opts.Source, Destination: opts.Destination}

	if opts.Activate {
		if err := store.Activate(opts.Destination); err != nil {
			return result, err
		}
		result.Activated = true
	}

	return result, nil
}
