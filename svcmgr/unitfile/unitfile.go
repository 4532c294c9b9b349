// Package unitfile renders the systemd unit file content for an
// installed service, using coreos/go-systemd's option serializer instead
// of hand-interpolated INI text so values are escaped correctly and
// multi-line directives fold the way systemd expects.
package unitfile

import (
	"bytes"
	"fmt"

	"github.com/coreos/go-systemd/v22/unit"
)

// Options describes the handful of directives this toolkit ever needs to
// write; it deliberately doesn't expose the full unit file grammar.
type Options struct {
	Description string
	ExecStart   string
	RestartAlways bool
	WantedBy    string
}

// Render serializes opts into a complete unit file body.
func Render(opts Options) (string, error) {
	entries := []*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", opts.Description),
		unit.NewUnitOption("Service", "ExecStart", opts.ExecStart),
	}

	if opts.RestartAlways {
		entries = append(entries, unit.NewUnitOption("Service", "Restart", "always"))
	}

	if opts.WantedBy != "" {
		entries = append(entries, unit.NewUnitOption("Install", "WantedBy", opts.WantedBy))
	}

	r := unit.Serialize(entries)

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", fmt.Errorf("unitfile: failed to render unit: %w", err)
	}

	return buf.String(), nil
}
