//go:build linux

package kvm

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// expectedAPIVersion is the stable KVM API version, unchanged since the
// interface was frozen in Linux 2.6.
const expectedAPIVersion = 12

// Verify opens /dev/kvm and issues the two stateless query ioctls using the
// computed request numbers. It creates no VM and no vCPU. An error means
// either KVM is unavailable or the table disagrees with the running kernel.
func Verify() error {
	fd, err := unix.Open("/dev/kvm", unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("open /dev/kvm: %w", err)
	}
	defer unix.Close(fd)

	version, err := queryIoctl(fd, "KVM_GET_API_VERSION")
	if err != nil {
		return err
	}
	if version != expectedAPIVersion {
		return fmt.Errorf("kernel reports KVM API version %d, want %d", version, expectedAPIVersion)
	}

	mmapSize, err := queryIoctl(fd, "KVM_GET_VCPU_MMAP_SIZE")
	if err != nil {
		return err
	}
	if mmapSize <= 0 {
		return fmt.Errorf("kernel reports vCPU mmap size %d", mmapSize)
	}

	return nil
}

func queryIoctl(fd int, name string) (int, error) {
	req, err := Lookup(name)
	if err != nil {
		return 0, err
	}

	for {
		ret, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req.Number), 0)
		if errno == unix.EINTR {
			continue
		}
		if errno != 0 {
			return 0, fmt.Errorf("%s: %w", name, errno)
		}
		return int(ret), nil
	}
}
