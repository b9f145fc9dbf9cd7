//go:build !unix

package mmio

import (
	"errors"
	"os"
)

type sysMapper struct{}

func (sysMapper) Mmap(int, int64, int) ([]byte, error) {
	return nil, errors.ErrUnsupported
}

func (sysMapper) Munmap([]byte) error {
	return errors.ErrUnsupported
}

func defaultPageSize() int {
	return os.Getpagesize()
}
