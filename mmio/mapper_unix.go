//go:build unix

package mmio

import (
	"golang.org/x/sys/unix"
)

type sysMapper struct{}

func (sysMapper) Mmap(fd int, offset int64, length int) ([]byte, error) {
	return unix.Mmap(fd, offset, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func (sysMapper) Munmap(b []byte) error {
	return unix.Munmap(b)
}

func defaultPageSize() int {
	return unix.Getpagesize()
}
