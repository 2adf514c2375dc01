package frontend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Copy button labels and the time the confirmation stays visible.
const (
	CopyLabel   = "Copy"
	CopiedLabel = "Copied!"
	RevertDelay = 2000 * time.Millisecond
)

// ErrNoResult is returned when there is no result heading to copy from.
var ErrNoResult = errors.New("no result heading on the page")

// ErrClipboardUnsupported is returned when the host has no clipboard utility.
var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")

// Clipboard writes text to a clipboard; the write may wait for a permission prompt.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// SystemClipboard implements Clipboard using github.com/atotto/clipboard.
type SystemClipboard struct{}

var _ Clipboard = SystemClipboard{}

// WriteText copies text to the system clipboard.
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	done := make(chan error, 1)
	go func() {
		done <- clipboard.WriteAll(text)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Copier copies the short URL and shows a transient confirmation on the button. At most one
// label revert is pending: every successful copy replaces the previous one.
type Copier struct {
	clipboard Clipboard
	clock     clock.Clock
	delay     time.Duration
	log       *zap.SugaredLogger

	mu     sync.Mutex
	revert *clock.Timer
	gen    uint64
}

// NewCopier returns a Copier reverting the label after RevertDelay as measured by clk.
func NewCopier(cb Clipboard, clk clock.Clock, log *zap.SugaredLogger) *Copier {
	return &Copier{
		clipboard: cb,
		clock:     clk,
		delay:     RevertDelay,
		log:       log,
	}
}

// Copy writes the heading text to the clipboard. On success the button reads CopiedLabel until the
// revert to CopyLabel fires; on failure the error is logged and returned and the label is kept.
func (c *Copier) Copy(ctx context.Context, heading TextReader, button Label) error {
	if heading == nil {
		c.log.Errorw("Error copying to clipboard", "error", ErrNoResult)
		return ErrNoResult
	}
	text := heading.Text()
	if err := c.clipboard.WriteText(ctx, text); err != nil {
		c.log.Errorw("Error copying to clipboard", "error", err)
		return err
	}
	c.log.Debugw("Copied to clipboard", "text", text)
	if button == nil {
		return nil
	}

	// label and generation change together
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.revert != nil {
		c.revert.Stop()
	}
	c.gen++
	gen := c.gen
	button.SetText(CopiedLabel)
	c.revert = c.clock.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// a newer copy owns the label
		if c.gen != gen {
			return
		}
		button.SetText(CopyLabel)
		c.revert = nil
	})
	return nil
}

// Pending reports whether a label revert is scheduled.
func (c *Copier) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revert != nil
}

// Stop cancels a pending label revert.
func (c *Copier) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.revert != nil {
		c.revert.Stop()
		c.revert = nil
	}
	c.gen++
}
