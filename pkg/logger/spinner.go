package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// SpinnerDots are the default spinner frames
var SpinnerDots = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner represents an animated spinner for long-running operations.
// Frames are written under the same lock as log lines.
type Spinner struct {
	mu       sync.Mutex
	active   bool
	message  string
	frames   []string
	interval time.Duration
	out      *output
	stopChan chan struct{}
	done     chan struct{}
}

// NewSpinner creates a new spinner writing to the default logger's output
func NewSpinner(message string) *Spinner {
	return newSpinner(message, defaultOutput())
}

func newSpinner(message string, out *output) *Spinner {
	return &Spinner{
		message:  message,
		frames:   SpinnerDots,
		interval: 100 * time.Millisecond,
		out:      out,
	}
}

// Start starts the spinner animation
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stopChan, s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			frame := s.frames[i%len(s.frames)]
			s.out.write(func(w io.Writer, noColor bool) {
				if !noColor {
					frame = colorKey.Sprint(frame)
				}
				_, _ = fmt.Fprintf(w, "\r%s %s", frame, s.message)
			})

			select {
			case <-stop:
				s.out.write(func(w io.Writer, _ bool) {
					_, _ = fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len(s.message)+10))
				})
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop stops the spinner and waits for the line to be cleared
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.stopChan)
	done := s.done
	s.mu.Unlock()

	<-done
}

// WithSpinner runs a function with a spinner
func WithSpinner(message string, fn func() error) error {
	spinner := NewSpinner(message)
	spinner.Start()

	err := fn()
	spinner.Stop()

	if err != nil {
		Error(fmt.Sprintf("%s %s failed: %v", IconError, message, err))
	} else {
		Success(fmt.Sprintf("%s completed", message))
	}

	return err
}
