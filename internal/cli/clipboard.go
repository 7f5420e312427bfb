package cli

import (
	"context"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// clipboardWrite is a test seam for the system clipboard.
var clipboardWrite = clipboard.WriteAll

// copiedFlag is the "copied" indicator. It switches itself off after reset.
type copiedFlag struct {
	mu    sync.Mutex
	on    bool
	reset time.Duration
	timer *time.Timer
}

func newCopiedFlag(reset time.Duration) *copiedFlag {
	return &copiedFlag{reset: reset}
}

// Mark turns the indicator on and restarts its reset timer.
func (c *copiedFlag) Mark() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.on = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.reset, func() {
		c.mu.Lock()
		c.on = false
		c.mu.Unlock()
	})
}

func (c *copiedFlag) On() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.on
}

// copy puts text on the clipboard. A failure is only logged at debug level.
func (a *App) copy(ctx context.Context, text string) bool {
	if err := clipboardWrite(text); err != nil {
		a.log.Debug(ctx, "clipboard write failed", "error", err)
		return false
	}
	a.copied.Mark()
	return true
}
