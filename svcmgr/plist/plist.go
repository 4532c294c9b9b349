// Package plist renders the minimal launchd property-list content this
// toolkit needs: a Label, ProgramArguments array, and the KeepAlive and
// RunAtLoad flags, as standard Apple PLIST 1.0 XML.
package plist

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Options is the set of plist keys this toolkit ever writes.
type Options struct {
	Label            string
	ProgramArguments []string
	RunAtLoad        bool
}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
`

// Render produces the complete plist document for opts. KeepAlive is
// always written false and Options has no restart setting, so the
// rendered plist never asks launchd to restart the service.
func Render(opts Options) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("<dict>\n")

	writeString(&buf, "Label", opts.Label)

	buf.WriteString("\t<key>ProgramArguments</key>\n\t<array>\n")
	for _, a := range opts.ProgramArguments {
		if err := writeEscaped(&buf, "\t\t<string>", a, "</string>\n"); err != nil {
			return "", fmt.Errorf("plist: %w", err)
		}
	}
	buf.WriteString("\t</array>\n")

	buf.WriteString("\t<key>KeepAlive</key>\n\t<false/>\n")

	buf.WriteString("\t<key>RunAtLoad</key>\n")
	if opts.RunAtLoad {
		buf.WriteString("\t<true/>\n")
	} else {
		buf.WriteString("\t<false/>\n")
	}

	buf.WriteString("</dict>\n</plist>\n")

	return buf.String(), nil
}

func writeString(buf *bytes.Buffer, key, value string) error {
	buf.WriteString("\t<key>")
	buf.WriteString(key)
	buf.WriteString("</key>\n")
	return writeEscaped(buf, "\t<string>", value, "</string>\n")
}

func writeEscaped(buf *bytes.Buffer, prefix, value, suffix string) error {
	buf.WriteString(prefix)
	if err := xml.EscapeText(buf, []byte(value)); err != nil {
		return err
	}
	buf.WriteString(suffix)
	return nil
}
