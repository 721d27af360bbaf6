package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/atotto/clipboard"
)

func TestMemory_WriteText(t *testing.T) {
	var m Memory
	if err := m.WriteText(context.Background(), "नमस्ते"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if got := m.Text(); got != "नमस्ते" {
		t.Errorf("Text() = %q, want %q", got, "नमस्ते")
	}
}

func TestMemory_WriteTextError(t *testing.T) {
	boom := errors.New("boom")
	m := Memory{Err: boom}
	if err := m.WriteText(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("WriteText() error = %v, want %v", err, boom)
	}
	if m.Text() != "" {
		t.Errorf("Text() = %q, want empty", m.Text())
	}
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var m Memory
	if err := m.WriteText(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteText() error = %v, want context.Canceled", err)
	}
}

func TestSystem_Unsupported(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("system clipboard available; not touching it from tests")
	}
	if err := (System{}).WriteText(context.Background(), "x"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("WriteText() error = %v, want ErrUnsupported", err)
	}
}

func TestSystem_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (System{}).WriteText(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("WriteText() error = %v, want context.Canceled", err)
	}
}
