// Package kvm defines the request numbers of the Linux KVM ioctl interface
// for x86-64. The numbers are computed from the asm-generic _IOC encoding
// and the KVM ABI struct layouts rather than copied out of <linux/kvm.h>,
// so the table is available, and identical, on every platform.
package kvm

import "unsafe"

const nrInterrupts = 256

// UserspaceMemoryRegion mirrors struct kvm_userspace_memory_region.
type UserspaceMemoryRegion struct {
	Slot          uint32
	Flags         uint32
	GuestPhysAddr uint64
	MemorySize    uint64
	UserspaceAddr uint64
}

// Segment mirrors struct kvm_segment.
type Segment struct {
	Base     uint64
	Limit    uint32
	Selector uint16
	Type     uint8
	Present  uint8
	Dpl      uint8
	Db       uint8
	S        uint8
	L        uint8
	G        uint8
	Avl      uint8
	Unusable uint8
	Padding  uint8
}

// DTable mirrors struct kvm_dtable.
type DTable struct {
	Base    uint64
	Limit   uint16
	Padding [3]uint16
}

// SRegs mirrors struct kvm_sregs from the x86-64 <asm/kvm.h>.
type SRegs struct {
	Cs, Ds, Es, Fs, Gs, Ss Segment
	Tr, Ldt                Segment
	Gdt, Idt               DTable
	Cr0                    uint64
	Cr2                    uint64
	Cr3                    uint64
	Cr4                    uint64
	Cr8                    uint64
	Efer                   uint64
	ApicBase               uint64
	InterruptBitmap        [(nrInterrupts + 63) / 64]uint64
}

// Regs mirrors struct kvm_regs from the x86-64 <asm/kvm.h>.
type Regs struct {
	Rax, Rbx, Rcx, Rdx uint64
	Rsi, Rdi, Rsp, Rbp uint64
	R8, R9, R10, R11   uint64
	R12, R13, R14, R15 uint64
	Rip, Rflags        uint64
}

// MSRList mirrors the fixed header of struct kvm_msr_list. The indices
// following it are a flexible array member and do not count toward the
// ioctl size.
type MSRList struct {
	NMSRs uint32
}

const (
	sizeofUserspaceMemoryRegion = unsafe.Sizeof(UserspaceMemoryRegion{})
	sizeofSRegs                 = unsafe.Sizeof(SRegs{})
	sizeofRegs                  = unsafe.Sizeof(Regs{})
	sizeofMSRList               = unsafe.Sizeof(MSRList{})
)
