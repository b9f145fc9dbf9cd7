package resource

import (
	"context"
	"io"
)

// RateLimitedWriter paces writes to an underlying writer.
//
// Each Write forwards at most one burst of bytes in a single call to the
// underlying writer and may therefore return a short count. Callers are
// expected to loop, as they would over a raw write(2).
type RateLimitedWriter struct {
	ctx context.Context
	w   io.Writer
	rc  *Controller
}

// NewRateLimitedWriter wraps w. A nil Controller disables pacing.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{ctx: ctx, w: w, rc: rc}
}

func (r *RateLimitedWriter) Write(p []byte) (int, error) {
	if burst := r.rc.Burst(); burst > 0 && len(p) > burst {
		p = p[:burst]
	}
	if err := r.rc.AcquireIO(r.ctx, len(p)); err != nil {
		return 0, err
	}
	return r.w.Write(p)
}
