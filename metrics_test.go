package periphery

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	c := &BasicMetricsCollector{}

	c.RecordRead(16, 10*time.Millisecond, nil)
	c.RecordRead(4, 30*time.Millisecond, errors.New("boom"))
	c.RecordWrite(8, time.Millisecond, nil)
	c.RecordTimeout(16, 4)

	stats := c.GetStats()
	assert.Equal(t, int64(2), stats.ReadCount)
	assert.Equal(t, int64(1), stats.ReadErrors)
	assert.Equal(t, int64(20), stats.ReadBytes)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.ReadAvgNanos)
	assert.Equal(t, int64(1), stats.WriteCount)
	assert.Equal(t, int64(8), stats.WriteBytes)
	assert.Zero(t, stats.WriteErrors)
	assert.Equal(t, int64(1), stats.Timeouts)
	assert.Equal(t, int64(12), stats.ShortReadBytes)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.ReadAvgNanos)
	assert.Zero(t, stats.WriteAvgNanos)
}

func TestBasicMetricsCollector_Concurrent(t *testing.T) {
	c := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.RecordWrite(1, 0, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8000), c.GetStats().WriteBytes)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordRead(1, 0, nil)
	mc.RecordWrite(1, 0, nil)
	mc.RecordTimeout(1, 0)
}
