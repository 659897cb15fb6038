package game

import (
	"time"

	"mini-voxel/internal/config"
)

// FPSLimiter paces the frame loop to config.GetFPSLimit.
type FPSLimiter struct {
	next time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due. A limit of 0 disables pacing.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin out the last few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// FPSCounter counts frames and publishes a rate once per window.
type FPSCounter struct {
	window time.Duration
	start  time.Time
	frames int
	fps    int
}

func NewFPSCounter(now time.Time) *FPSCounter {
	return &FPSCounter{window: time.Second, start: now}
}

// Frame records a frame at now. It reports true when a new rate was
// published.
func (c *FPSCounter) Frame(now time.Time) bool {
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return false
	}
	c.fps = int(float64(c.frames) / elapsed.Seconds())
	c.frames = 0
	c.start = now
	return true
}

// FPS is the last published rate.
func (c *FPSCounter) FPS() int {
	return c.fps
}
