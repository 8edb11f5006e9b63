package workflows

import "context"

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	Location string
	Name     string
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	Name string
}

// Delete removes a configuration.
//
// Returns ErrDeleteActiveConfiguration if it is the active configuration.
func Delete(ctx context.Context, opts DeleteOptions) (*DeleteResult, error) {
	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	if err := store.Delete(opts.Name); err != nil {
		return nil, err
	}

	return &DeleteResult{Name: opts.Name}, nil
}
