package service

import (
	"context"
	"time"
)

// Latency simulates network delay in front of every store access
type Latency struct {
	Read  time.Duration
	Write time.Duration
}

func (l Latency) read(ctx context.Context) error  { return sleep(ctx, l.Read) }
func (l Latency) write(ctx context.Context) error { return sleep(ctx, l.Write) }

// sleep waits for d or until ctx is done, whichever comes first
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
