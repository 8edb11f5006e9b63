package workflows

import (
	"context"

	"github.com/PolarWolf314/gctx/internal/configs"
)

// openStore opens the store at location, or at the default location when
// location is empty.
func openStore(ctx context.Context, location string) (*configs.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if location == "" {
		return configs.OpenDefault()
	}
	return configs.Open(location)
}
