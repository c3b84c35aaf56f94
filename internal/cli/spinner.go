package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status line on w while a stage runs.
//
// Spinner is also an io.Writer: while it runs, point the logger at it and
// every log line is printed on a cleared line with the frame redrawn below,
// so frames and log output never share a line.
type Spinner struct {
	w       io.Writer
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}

	started bool
	once    sync.Once

	mu    sync.Mutex
	frame string // last drawn frame, empty while nothing is on screen
}

// newSpinner creates a spinner that stops drawing when ctx is cancelled.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.started = true
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				s.frame = spinnerFrames[i%len(spinnerFrames)]
				s.draw()
				s.mu.Unlock()
			}
		}
	}()
}

// Write prints p on a clean line and redraws the current frame after it.
func (s *Spinner) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	n, err := s.w.Write(p)
	if s.frame != "" {
		s.draw()
	}
	return n, err
}

// Stop ends the animation and clears the status line. Calling Stop more
// than once is safe.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		if s.started {
			<-s.stopped
		}
		s.mu.Lock()
		s.clear()
		s.frame = ""
		s.mu.Unlock()
	})
}

// StopWithError stops the spinner and prints message as an error.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError(s.w, "%s", message)
}

// draw and clear expect s.mu to be held.
func (s *Spinner) draw() {
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(s.frame), StyleDim.Render(s.message))
}

func (s *Spinner) clear() {
	if s.frame == "" {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len([]rune(s.message))+2))
}
