// Package fs provides the device-file opener used by periphery, abstracted
// for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open device file exposing its descriptor
//   - [FileSystem]: opens device files by path
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate open/close errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	f, err := fs.Default.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("mem", fs.Fault{FailOnClose: true})
//	// inject ffs into component under test
package fs
