package workflows

import "context"

// CurrentOptions configures the current workflow.
type CurrentOptions struct {
	Location string
}

// CurrentResult names the active configuration.
type CurrentResult struct {
	Name string
}

// Current returns the active configuration name exactly as stored.
func Current(ctx context.Context, opts CurrentOptions) (*CurrentResult, error) {
	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	return &CurrentResult{Name: store.Active()}, nil
}
