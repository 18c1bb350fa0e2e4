package kvm

import (
	"fmt"

	"github.com/tinyrange/kvmreq/internal/ioctl"
)

// TypeKVMIO is the ioctl type byte of the KVM API ("KVMIO" in the kernel).
const TypeKVMIO = 0xAE

// Request is a named KVM ioctl request.
type Request struct {
	Name   string
	Number ioctl.Request
}

var table = []Request{
	{"KVM_GET_API_VERSION", ioctl.IO(TypeKVMIO, 0x00)},
	{"KVM_CREATE_VM", ioctl.IO(TypeKVMIO, 0x01)},
	{"KVM_GET_MSR_INDEX_LIST", ioctl.IOWR(TypeKVMIO, 0x02, sizeofMSRList)},
	{"KVM_CHECK_EXTENSION", ioctl.IO(TypeKVMIO, 0x03)},
	{"KVM_GET_VCPU_MMAP_SIZE", ioctl.IO(TypeKVMIO, 0x04)},
	{"KVM_CREATE_VCPU", ioctl.IO(TypeKVMIO, 0x41)},
	{"KVM_SET_USER_MEMORY_REGION", ioctl.IOW(TypeKVMIO, 0x46, sizeofUserspaceMemoryRegion)},
	{"KVM_SET_TSS_ADDR", ioctl.IO(TypeKVMIO, 0x47)},
	{"KVM_CREATE_IRQCHIP", ioctl.IO(TypeKVMIO, 0x60)},
	{"KVM_RUN", ioctl.IO(TypeKVMIO, 0x80)},
	{"KVM_GET_REGS", ioctl.IOR(TypeKVMIO, 0x81, sizeofRegs)},
	{"KVM_SET_REGS", ioctl.IOW(TypeKVMIO, 0x82, sizeofRegs)},
	{"KVM_GET_SREGS", ioctl.IOR(TypeKVMIO, 0x83, sizeofSRegs)},
	{"KVM_SET_SREGS", ioctl.IOW(TypeKVMIO, 0x84, sizeofSRegs)},
}

// canonicalNames is the fixed reporting order: the seven requests a minimal
// VMM touches, API surface first, then per-VM, then per-vCPU.
var canonicalNames = []string{
	"KVM_GET_API_VERSION",
	"KVM_CREATE_VM",
	"KVM_SET_USER_MEMORY_REGION",
	"KVM_CREATE_VCPU",
	"KVM_GET_VCPU_MMAP_SIZE",
	"KVM_GET_SREGS",
	"KVM_SET_SREGS",
}

// All returns a copy of the full request table, in nr order.
func All() []Request {
	out := make([]Request, len(table))
	copy(out, table)
	return out
}

// Canonical returns the seven requests of the minimal VMM surface, in their
// fixed reporting order.
func Canonical() []Request {
	out := make([]Request, 0, len(canonicalNames))
	for _, name := range canonicalNames {
		for _, req := range table {
			if req.Name == name {
				out = append(out, req)
				break
			}
		}
	}
	return out
}

// Lookup finds a request in the full table by its kernel name.
func Lookup(name string) (Request, error) {
	for _, req := range table {
		if req.Name == name {
			return req, nil
		}
	}
	return Request{}, fmt.Errorf("unknown KVM request %q", name)
}
