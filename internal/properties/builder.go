package properties

// Builder accumulates settings and produces a Properties snapshot.
//
// Zones and regions must already be parsed; the builder performs no
// validation of its own.
type Builder struct {
	project *string
	account *string
	zone    *Zone
	region  *Region
}

// NewBuilder returns a builder with no settings.
func NewBuilder() *Builder {
	return &Builder{}
}

// Project sets core/project.
func (b *Builder) Project(project string) *Builder {
	b.project = &project
	return b
}

// Account sets core/account.
func (b *Builder) Account(account string) *Builder {
	b.account = &account
	return b
}

// Zone sets compute/zone.
func (b *Builder) Zone(zone Zone) *Builder {
	b.zone = &zone
	return b
}

// Region sets compute/region.
func (b *Builder) Region(region Region) *Builder {
	b.region = &region
	return b
}

// Build returns the accumulated settings. A section with no settings is
// left out entirely. Later changes to b do not affect the result.
func (b *Builder) Build() Properties {
	var p Properties

	if b.project != nil || b.account != nil {
		p.core = &coreProperties{
			project: cloneString(b.project),
			account: cloneString(b.account),
		}
	}

	if b.zone != nil || b.region != nil {
		p.compute = &computeProperties{}
		if b.zone != nil {
			zone := *b.zone
			p.compute.zone = &zone
		}
		if b.region != nil {
			region := *b.region
			p.compute.region = &region
		}
	}

	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
