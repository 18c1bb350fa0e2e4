package report

import (
	"fmt"
	"os"

	"github.com/tinyrange/kvmreq/internal/ioctl"
	"github.com/tinyrange/kvmreq/internal/kvm"
	"gopkg.in/yaml.v3"
)

// Manifest selects and extends the set of requests to report.
type Manifest struct {
	// Requests names entries of the built-in table, in report order.
	Requests []string `yaml:"requests"`
	// Extra defines requests the built-in table does not carry.
	Extra []ExtraRequest `yaml:"extra,omitempty"`
}

// ExtraRequest is a manifest-defined request, encoded with the generic
// _IOC layout.
type ExtraRequest struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir,omitempty"`  // none, write, read or read-write
	Type uint8  `yaml:"type,omitempty"` // defaults to the KVMIO type byte
	Nr   uint8  `yaml:"nr"`
	Size uint16 `yaml:"size,omitempty"`
}

// LoadManifest reads a YAML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Requests) == 0 && len(m.Extra) == 0 {
		return nil, fmt.Errorf("manifest %s selects no requests", path)
	}
	return &m, nil
}

// Resolve expands the manifest into a request list: named entries first,
// then extras, both in manifest order.
func (m *Manifest) Resolve() ([]kvm.Request, error) {
	out := make([]kvm.Request, 0, len(m.Requests)+len(m.Extra))
	for _, name := range m.Requests {
		req, err := kvm.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	for _, extra := range m.Extra {
		req, err := extra.encode()
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func (e ExtraRequest) encode() (kvm.Request, error) {
	if e.Name == "" {
		return kvm.Request{}, fmt.Errorf("extra request with nr 0x%02x has no name", e.Nr)
	}

	var dir ioctl.Dir
	switch e.Dir {
	case "", "none":
		dir = ioctl.DirNone
	case "write":
		dir = ioctl.DirWrite
	case "read":
		dir = ioctl.DirRead
	case "read-write":
		dir = ioctl.DirRead | ioctl.DirWrite
	default:
		return kvm.Request{}, fmt.Errorf("extra request %s: unknown dir %q", e.Name, e.Dir)
	}

	typ := e.Type
	if typ == 0 {
		typ = kvm.TypeKVMIO
	}
	return kvm.Request{Name: e.Name, Number: ioctl.New(dir, typ, e.Nr, uintptr(e.Size))}, nil
}
