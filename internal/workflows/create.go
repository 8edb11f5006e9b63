package workflows

import (
	"context"

	"github.com/PolarWolf314/gctx/internal/configs"
	"github.com/PolarWolf314/gctx/internal/properties"
)

// CreateOptions configures the create workflow. Nil settings are left
// unset; an empty string is written as an empty value.
type CreateOptions struct {
	Location string
	Name     string

	Project *string
	Account *string
	Zone    *string
	Region  *string

	// Force overwrites an existing configuration with the same name.
	Force bool

	// Activate makes the new configuration active once written.
	Activate bool
}

// CreateResult contains the outcome of a create operation.
type CreateResult struct {
	Name       string
	Properties properties.Properties
	Activated  bool
}

// Create writes a new configuration.
//
// Zone and region are validated before the store is opened, so invalid
// input never touches disk. Returns ErrInvalidName, ErrExistingConfiguration,
// ErrInvalidZone or ErrInvalidRegion on bad input.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	props, err := buildProperties(opts)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	if err := store.Create(opts.Name, props, configs.ConflictActionFromForce(opts.Force)); err != nil {
		return nil, err
	}

	result := &CreateResult{Name: opts.Name, Properties: props}

	if opts.Activate {
		if err := store.Activate(opts.Name); err != nil {
			return result, err
		}
		result.Activated = true
	}

	return result, nil
}

func buildProperties(opts CreateOptions) (properties.Properties, error) {
	builder := properties.NewBuilder()

	if opts.Project != nil {
		builder.Project(*opts.Project)
	}
	if opts.Account != nil {
		builder.Account(*opts.Account)
	}
	if opts.Zone != nil {
		zone, err := properties.ParseZone(*opts.Zone)
		if err != nil {
			return properties.Properties{}, err
		}
		builder.Zone(zone)
	}
	if opts.Region != nil {
		region, err := properties.ParseRegion(*opts.Region)
		if err != nil {
			return properties.Properties{}, err
		}
		builder.Region(region)
	}

	return builder.Build(), nil
}
