package report

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"github.com/tinyrange/kvmreq/internal/kvm"
)

// writeGo emits a gofmt-formatted Go source file declaring one constant per
// request. Identifiers keep the kernel names so generated code greps the
// same as the kernel headers.
func writeGo(w io.Writer, requests []kvm.Request, pkg string) error {
	if pkg == "" {
		pkg = "kvmioctl"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by kvmreq. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "const (\n")
	for _, req := range requests {
		fmt.Fprintf(&buf, "\t%s = 0x%x\n", req.Name, uint32(req.Number))
	}
	fmt.Fprintf(&buf, ")\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("write generated source: %w", err)
	}
	return nil
}
