// Package clipboard provides the destinations a copied translation can be
// written to.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned by System when no clipboard utility is
// available on this machine.
var ErrUnsupported = errors.New("system clipboard unavailable")

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// Memory keeps the last copied text in process. The web server uses one per
// session and hands the text to the browser. A non-nil Err makes every write
// fail with it.
type Memory struct {
	mu   sync.Mutex
	text string
	Err  error
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}

// Text returns the last text written.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
