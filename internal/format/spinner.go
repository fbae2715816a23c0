// Package format holds small terminal output helpers for the CLI commands
// that run outside the TUI.
package format

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner renders a progress indicator on stderr while a command waits.
type Spinner struct {
	ctx      context.Context
	cancel   context.CancelFunc
	message  string
	done     chan struct{}
	stopOnce sync.Once
}

func NewSpinner(ctx context.Context, cancel context.CancelFunc, message string) *Spinner {
	return &Spinner{
		ctx:     ctx,
		cancel:  cancel,
		message: message,
		done:    make(chan struct{}),
	}
}

// Start begins animating. It returns immediately.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.message)
				frame++
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
		fmt.Fprintf(os.Stderr, "\r\033[K")
	})
}
