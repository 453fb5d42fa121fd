// ABOUTME: Time module: wall clock with a configurable layout
// ABOUTME: Clock function is injectable for tests

package modules

import (
	"context"
	"time"

	"github.com/mauromedda/promptline-go/pkg/style"
)

const defaultTimeFormat = "15:04:05"

// Clock shows the current time.
type Clock struct {
	layout string
	style  *style.Style
	now    func() time.Time
}

// NewClock returns a time module. An empty layout uses HH:MM:SS; a nil
// now uses time.Now.
func NewClock(layout string, st *style.Style, now func() time.Time) *Clock {
	if layout == "" {
		layout = defaultTimeFormat
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{layout: layout, style: st, now: now}
}

func (c *Clock) Name() string { return "time" }

func (c *Clock) Collect(_ context.Context) (Output, error) {
	return Output{Text: c.now().Format(c.layout), Style: c.style}, nil
}
