package workflows

import "context"

// ActivateOptions configures the activate workflow.
type ActivateOptions struct {
	Location string

	// Name is the configuration to activate.
	Name string
}

// ActivateResult contains the outcome of an activation.
type ActivateResult struct {
	Name string

	// Previous is the active pointer before the activation.
	Previous string
}

// Activate makes a configuration active.
//
// Returns ErrUnknownConfiguration if no configuration has the given name.
func Activate(ctx context.Context, opts ActivateOptions) (*ActivateResult, error) {
	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	previous := store.Active()
	if err := store.Activate(opts.Name); err != nil {
		return nil, err
	}

	return &ActivateResult{Name: opts.Name, Previous: previous}, nil
}
