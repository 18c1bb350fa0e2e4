// Package ioctl encodes and decodes Linux ioctl request numbers using the
// asm-generic _IOC layout shared by 386, amd64, arm64 and riscv64.
package ioctl

import "fmt"

const (
	nrBits   = 8
	typeBits = 8
	sizeBits = 14
	dirBits  = 2

	nrShift   = 0
	typeShift = nrShift + nrBits
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits

	nrMask   = 1<<nrBits - 1
	typeMask = 1<<typeBits - 1
	sizeMask = 1<<sizeBits - 1
	dirMask  = 1<<dirBits - 1
)

// Dir is the data-transfer direction of a request, from the kernel's point
// of view: DirWrite means the kernel reads the payload from userspace,
// DirRead means it writes the payload back.
type Dir uint8

const (
	DirNone  Dir = 0
	DirWrite Dir = 1
	DirRead  Dir = 2
)

func (d Dir) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirWrite:
		return "write"
	case DirRead:
		return "read"
	case DirRead | DirWrite:
		return "read-write"
	default:
		return fmt.Sprintf("Dir(%d)", uint8(d))
	}
}

// Request is an encoded 32-bit ioctl request number.
type Request uint32

// New packs a request number. The size is truncated to 14 bits, matching
// what the kernel's _IOC macro produces for oversized payloads.
func New(dir Dir, typ, nr uint8, size uintptr) Request {
	return Request(uint32(dir&dirMask)<<dirShift |
		uint32(size&sizeMask)<<sizeShift |
		uint32(typ)<<typeShift |
		uint32(nr)<<nrShift)
}

// IO mirrors _IO(typ, nr): no payload.
func IO(typ, nr uint8) Request { return New(DirNone, typ, nr, 0) }

// IOR mirrors _IOR(typ, nr, size).
func IOR(typ, nr uint8, size uintptr) Request { return New(DirRead, typ, nr, size) }

// IOW mirrors _IOW(typ, nr, size).
func IOW(typ, nr uint8, size uintptr) Request { return New(DirWrite, typ, nr, size) }

// IOWR mirrors _IOWR(typ, nr, size).
func IOWR(typ, nr uint8, size uintptr) Request {
	return New(DirRead|DirWrite, typ, nr, size)
}

func (r Request) Dir() Dir     { return Dir(r >> dirShift & dirMask) }
func (r Request) Type() uint8  { return uint8(r >> typeShift & typeMask) }
func (r Request) Nr() uint8    { return uint8(r >> nrShift & nrMask) }
func (r Request) Size() uint16 { return uint16(r >> sizeShift & sizeMask) }

func (r Request) String() string {
	return fmt.Sprintf("0x%08x", uint32(r))
}
