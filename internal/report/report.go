// Package report renders KVM request tables for people and for code.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/tinyrange/kvmreq/internal/kvm"
	"gopkg.in/yaml.v3"
)

// Format selects an output renderer.
type Format string

const (
	// FormatPlain is one "NAME = value" line per request, value in
	// decimal, nothing else.
	FormatPlain Format = "plain"
	// FormatTable is an aligned, optionally colored table with the
	// decoded request fields.
	FormatTable Format = "table"
	// FormatYAML is a YAML document with one entry per request.
	FormatYAML Format = "yaml"
	// FormatGo is a generated Go source file declaring the request
	// numbers as constants.
	FormatGo Format = "go"
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPlain, FormatTable, FormatYAML, FormatGo:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want plain, table, yaml or go)", s)
	}
}

// Options configure rendering.
type Options struct {
	// Color enables ANSI styling in the table format.
	Color bool
	// Package is the package clause of generated Go source. Empty means
	// "kvmioctl".
	Package string
}

// Write renders requests to w in the given format.
func Write(w io.Writer, format Format, requests []kvm.Request, opts Options) error {
	switch format {
	case FormatPlain:
		return writePlain(w, requests)
	case FormatTable:
		return writeTable(w, requests, opts.Color)
	case FormatYAML:
		return writeYAML(w, requests)
	case FormatGo:
		return writeGo(w, requests, opts.Package)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writePlain(w io.Writer, requests []kvm.Request) error {
	for _, req := range requests {
		if _, err := fmt.Fprintf(w, "%s = %d\n", req.Name, uint32(req.Number)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

var headerStyle = ansi.Style{}.Bold()

func writeTable(w io.Writer, requests []kvm.Request, color bool) error {
	nameWidth := len("NAME")
	for _, req := range requests {
		if len(req.Name) > nameWidth {
			nameWidth = len(req.Name)
		}
	}

	header := fmt.Sprintf("%-*s %10s %10s %10s %4s %5s",
		nameWidth, "NAME", "DEC", "HEX", "DIR", "NR", "SIZE")
	if color {
		header = headerStyle.Styled(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	for _, req := range requests {
		n := req.Number
		if _, err := fmt.Fprintf(w, "%-*s %10d %10s %10s 0x%02x %5d\n",
			nameWidth, req.Name, uint32(n), n, n.Dir(), n.Nr(), n.Size()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

type yamlEntry struct {
	Name  string `yaml:"name"`
	Value uint32 `yaml:"value"`
	Hex   string `yaml:"hex"`
	Dir   string `yaml:"dir"`
	Nr    uint8  `yaml:"nr"`
	Size  uint16 `yaml:"size"`
}

func writeYAML(w io.Writer, requests []kvm.Request) error {
	entries := make([]yamlEntry, 0, len(requests))
	for _, req := range requests {
		n := req.Number
		entries = append(entries, yamlEntry{
			Name:  req.Name,
			Value: uint32(n),
			Hex:   n.String(),
			Dir:   n.Dir().String(),
			Nr:    n.Nr(),
			Size:  n.Size(),
		})
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(entries); err != nil {
		enc.Close()
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}
