package workflows

import "context"

// ListOptions configures the list workflow.
type ListOptions struct {
	// Location is the store root. Empty resolves the default.
	Location string
}

// ListEntry describes one configuration.
type ListEntry struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// ListResult contains every configuration sorted by name.
type ListResult struct {
	Configurations []ListEntry

	// Active is the raw active pointer, which may name a missing configuration.
	Active string
}

// ActiveExists reports whether the active pointer names a listed configuration.
func (r *ListResult) ActiveExists() bool {
	for _, entry := range r.Configurations {
		if entry.Active {
			return true
		}
	}
	return false
}

// List returns all configurations with the active one flagged.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	store, err := openStore(ctx, opts.Location)
	if err != nil {
		return nil, err
	}

	result := &ListResult{Active: store.Active()}
	for _, c := range store.Configurations() {
		result.Configurations = append(result.Configurations, ListEntry{
			Name:   c.Name(),
			Path:   c.Path(),
			Active: store.IsActive(c),
		})
	}

	return result, nil
}

// Names returns the configuration names in listing order.
func (r *ListResult) Names() []string {
	names := make([]string, len(r.Configurations))
	for i, entry := range r.Configurations {
		names[i] = entry.Name
	}
	return names
}
