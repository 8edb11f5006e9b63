package properties

import (
	"regexp"

	kerrors "github.com/PolarWolf314/gctx/internal/errors"
)

// regionPattern matches region names such as europe-west1 and us-east4.
const regionPattern = `[a-z]+-[a-z]+[0-9]`

var (
	regionRegex = regexp.MustCompile(`^` + regionPattern + `$`)
	zoneRegex   = regexp.MustCompile(`^` + regionPattern + `-[a-z]$`)
)

// Region is a validated compute region, e.g. europe-west1.
type Region struct {
	value string
}

// ParseRegion validates s as a region.
func ParseRegion(s string) (Region, error) {
	if !regionRegex.MatchString(s) {
		return Region{}, &kerrors.NameError{Err: kerrors.ErrInvalidRegion, Name: s}
	}
	return Region{value: s}, nil
}

func (r Region) String() string {
	return r.value
}

// Zone is a validated compute zone, e.g. europe-west1-d.
type Zone struct {
	value string
}

// ParseZone validates s as a zone.
func ParseZone(s string) (Zone, error) {
	if !zoneRegex.MatchString(s) {
		return Zone{}, &kerrors.NameError{Err: kerrors.ErrInvalidZone, Name: s}
	}
	return Zone{value: s}, nil
}

func (z Zone) String() string {
	return z.value
}

// coreProperties holds the [core] section. A nil field is unset.
type coreProperties struct {
	project *string
	account *string
}

func (c *coreProperties) empty() bool {
	return c == nil || (c.project == nil && c.account == nil)
}

// computeProperties holds the [compute] section. A nil field is unset.
type computeProperties struct {
	zone   *Zone
	region *Region
}

func (c *computeProperties) empty() bool {
	return c == nil || (c.zone == nil && c.region == nil)
}

// Properties is an immutable snapshot of the recognized settings of a
// configuration. The zero value has no settings.
type Properties struct {
	core    *coreProperties
	compute *computeProperties
}

// Project returns the core/project setting.
func (p Properties) Project() (string, bool) {
	if p.core == nil || p.core.project == nil {
		return "", false
	}
	return *p.core.project, true
}

// Account returns the core/account setting.
func (p Properties) Account() (string, bool) {
	if p.core == nil || p.core.account == nil {
		return "", false
	}
	return *p.core.account, true
}

// Zone returns the compute/zone setting.
func (p Properties) Zone() (Zone, bool) {
	if p.compute == nil || p.compute.zone == nil {
		return Zone{}, false
	}
	return *p.compute.zone, true
}

// Region returns the compute/region setting.
func (p Properties) Region() (Region, bool) {
	if p.compute == nil || p.compute.region == nil {
		return Region{}, false
	}
	return *p.compute.region, true
}

// IsEmpty reports whether no recognized setting is set.
func (p Properties) IsEmpty() bool {
	return p.core.empty() && p.compute.empty()
}

// Equal reports whether p and other hold the same settings.
func (p Properties) Equal(other Properties) bool {
	pProject, pHasProject := p.Project()
	oProject, oHasProject := other.Project()
	pAccount, pHasAccount := p.Account()
	oAccount, oHasAccount := other.Account()
	pZone, pHasZone := p.Zone()
	oZone, oHasZone := other.Zone()
	pRegion, pHasRegion := p.Region()
	oRegion, oHasRegion := other.Region()

	return pHasProject == oHasProject && pProject == oProject &&
		pHasAccount == oHasAccount && pAccount == oAccount &&
		pHasZone == oHasZone && pZone == oZone &&
		pHasRegion == oHasRegion && pRegion == oRegion
}
