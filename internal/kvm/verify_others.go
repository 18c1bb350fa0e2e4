//go:build !linux

package kvm

import "errors"

// Verify requires a Linux kernel; the request table itself does not.
func Verify() error {
	return errors.New("kvm: verification requires Linux (/dev/kvm)")
}
