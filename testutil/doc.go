// Package testutil provides testing utilities for periphery.
//
// This package is intended for use in tests only. It provides a seeded RNG
// for property tests, a manually advanced clock, and scripted byte sources
// and sinks that stand in for device handles.
//
// # Scripted Handles
//
//	clk := testutil.NewFakeClock()
//	src := testutil.NewChunkSource(clk, 4, 10*time.Millisecond)
//	// every WaitReadable consumes 10ms of fake time, every Read yields 4 bytes
//
//	w := testutil.NewChunkWriter(3) // accepts at most 3 bytes per Write
package testutil
