package properties

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/gctx/internal/errors"
	"gopkg.in/ini.v1"
)

const (
	coreSection    = "core"
	computeSection = "compute"

	projectKey = "project"
	accountKey = "account"
	zoneKey    = "zone"
	regionKey  = "region"
)

// loadOptions keep values as written: gcloud does not treat ';' or '#'
// after a value as a comment, quotes are part of the value and a trailing
// backslash does not continue the line.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// Decode parses the recognized settings from r. Unrecognized sections and
// keys are dropped.
func Decode(r io.Reader) (Properties, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Properties{}, fmt.Errorf("%w: %w", kerrors.ErrLoadingProperties, err)
	}

	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return Properties{}, fmt.Errorf("%w: %w", kerrors.ErrLoadingProperties, err)
	}

	var p Properties

	if section, err := file.GetSection(coreSection); err == nil {
		core := &coreProperties{
			project: lookup(section, projectKey),
			account: lookup(section, accountKey),
		}
		if !core.empty() {
			p.core = core
		}
	}

	if section, err := file.GetSection(computeSection); err == nil {
		compute := &computeProperties{}
		if value := lookup(section, zoneKey); value != nil {
			zone, err := ParseZone(*value)
			if err != nil {
				return Properties{}, fmt.Errorf("%w: %w", kerrors.ErrLoadingProperties, err)
			}
			compute.zone = &zone
		}
		if value := lookup(section, regionKey); value != nil {
			region, err := ParseRegion(*value)
			if err != nil {
				return Properties{}, fmt.Errorf("%w: %w", kerrors.ErrLoadingProperties, err)
			}
			compute.region = &region
		}
		if !compute.empty() {
			p.compute = compute
		}
	}

	return p, nil
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) (Properties, error) {
	file, err := os.Open(path)
	if err != nil {
		return Properties{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file)
}

func lookup(section *ini.Section, key string) *string {
	if !section.HasKey(key) {
		return nil
	}
	value := section.Key(key).String()
	return &value
}

// Encode writes p to w as [core] then [compute], one key=value per line
// terminated by a single linefeed. Unset settings and empty sections are
// omitted.
func Encode(w io.Writer, p Properties) error {
	bw := bufio.NewWriter(w)

	if !p.core.empty() {
		lines := []entry{
			{projectKey, p.core.project},
			{accountKey, p.core.account},
		}
		if err := writeSection(bw, coreSection, lines); err != nil {
			return err
		}
	}

	if !p.compute.empty() {
		var lines []entry
		if p.compute.zone != nil {
			zone := p.compute.zone.String()
			lines = append(lines, entry{zoneKey, &zone})
		}
		if p.compute.region != nil {
			region := p.compute.region.String()
			lines = append(lines, entry{regionKey, &region})
		}
		if err := writeSection(bw, computeSection, lines); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrSavingProperties, err)
	}
	return nil
}

type entry struct {
	key   string
	value *string
}

func writeSection(w *bufio.Writer, name string, entries []entry) error {
	if _, err := w.WriteString("[" + name + "]\n"); err != nil {
		return fmt.Errorf("%w: %w", kerrors.ErrSavingProperties, err)
	}

	for _, e := range entries {
		if e.value == nil {
			continue
		}
		if err := checkValue(*e.value); err != nil {
			return fmt.Errorf("%w: %s/%s %w", kerrors.ErrSavingProperties, name, e.key, err)
		}
		if _, err := w.WriteString(e.key + "=" + *e.value + "\n"); err != nil {
			return fmt.Errorf("%w: %w", kerrors.ErrSavingProperties, err)
		}
	}

	return nil
}

// checkValue rejects values Decode would not read back unchanged: the
// parser trims surrounding whitespace and treats a leading backtick or
// triple quote as a quoted value.
func checkValue(value string) error {
	switch {
	case strings.ContainsAny(value, "\r\n"):
		return errors.New("contains a line break")
	case strings.TrimSpace(value) != value:
		return errors.New("has leading or trailing whitespace")
	case strings.HasPrefix(value, "`"):
		return errors.New("starts with a backtick")
	case len(value) > 3 && strings.HasPrefix(value, `"""`):
		return errors.New(`starts with """`)
	}
	return nil
}
