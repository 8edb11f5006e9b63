package workflows

import (
	"context"

	"github.com/PolarWolf314/gctx/internal/properties"
)

// DescribeOptions configures the describe workflow.
type DescribeOptions struct {
	Location string

	// Name defaults to the active configuration when empty.
	Name string
}

// DescribeResult holds the recognized settings of a configuration.
type DescribeResult struct {
	Name       string
	Properties properties.Properties
}

// Describe decodes a configuration. Settings gctx does not recognize are
// not reported.
func Describe(ctx context.Context, opts DescribeOptions) (*DescribeResult, error) {
	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = store.Active()
	}

	props, err := store.Describe(name)
	if err != nil {
		return nil, err
	}

	return &DescribeResult{Name: name, Properties: props}, nil
}
