package mmio

// mapper maps and unmaps device memory. sysMapper is the platform
// implementation; tests substitute failing variants.
type mapper interface {
	Mmap(fd int, offset int64, length int) ([]byte, error)
	Munmap(b []byte) error
}
