package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// ProgressIndicator draws a spinner next to a message while a generator runs.
type ProgressIndicator struct {
	mu         *sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	hideCursor bool
	stopChan   chan struct{}
	doneChan   chan struct{}
	running    bool
}

// NewProgressIndicator instantiates a new progress indicator writing to stderr.
func NewProgressIndicator(msg string, d time.Duration) *ProgressIndicator {
	return NewProgressIndicatorTo(os.Stderr, msg, d)
}

// NewProgressIndicatorTo instantiates a progress indicator writing to w.
func NewProgressIndicatorTo(w io.Writer, msg string, d time.Duration) *ProgressIndicator {
	return &ProgressIndicator{
		mu:         &sync.Mutex{},
		delay:      d,
		writer:     w,
		message:    msg,
		hideCursor: true,
		stopChan:   make(chan struct{}),
		doneChan:   make(chan struct{}),
	}
}

// Start starts the progress indicator.
func (pi *ProgressIndicator) Start() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	if pi.running {
		return
	}
	pi.running = true

	if pi.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(pi.writer, "\033[?25l")
	}

	go func() {
		defer close(pi.doneChan)
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-pi.stopChan:
					return
				default:
				}
				pi.mu.Lock()
				pi.clear()
				output := fmt.Sprintf("\r%s %s", pi.message, SuccessStyle.Render(string(r)))
				fmt.Fprint(pi.writer, output)
				pi.lastOutput = output
				pi.mu.Unlock()

				time.Sleep(pi.delay)
			}
		}
	}()
}

// Done stops the indicator, replacing the spinner line with a success message.
func (pi *ProgressIndicator) Done(msg string) {
	pi.stop(fmt.Sprintf("%s %s\n", pi.message, SuccessStyle.Render(msg+" ✔")))
}

// Fail stops the indicator, replacing the spinner line with a failure message.
func (pi *ProgressIndicator) Fail(msg string) {
	pi.stop(fmt.Sprintf("%s %s\n", pi.message, ErrorStyle.Render(msg+" ✗")))
}

func (pi *ProgressIndicator) stop(msg string) {
	pi.mu.Lock()
	if !pi.running {
		pi.mu.Unlock()
		return
	}
	pi.running = false
	pi.mu.Unlock()

	close(pi.stopChan)
	<-pi.doneChan

	pi.mu.Lock()
	defer pi.mu.Unlock()

	pi.clear()
	pi.restoreCursor()
	fmt.Fprint(pi.writer, msg)
}

// restoreCursor restores back the cursor visibility.
func (pi *ProgressIndicator) restoreCursor() {
	if pi.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(pi.writer, "\033[?25h")
	}
}

// clear deletes the last line. Caller must hold the lock.
func (pi *ProgressIndicator) clear() {
	if pi.lastOutput == "" {
		return
	}
	n := utf8.RuneCountInString(pi.lastOutput)
	if runtime.GOOS == "windows" {
		fmt.Fprint(pi.writer, "\r"+strings.Repeat(" ", n)+"\r")
		pi.lastOutput = ""
		return
	}
	fmt.Fprint(pi.writer, "\r\033[K")
	pi.lastOutput = ""
}
