// Package ui provides terminal output helpers for the pdf2dxf CLI.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar reports page conversion progress
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a bar counting total pages on w
func NewProgressBar(w io.Writer, total int, description string) *ProgressBar {
	bar := progressbar.NewOptions(
		total,
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &ProgressBar{bar: bar}
}

// Set moves the bar to done pages
func (p *ProgressBar) Set(done int) {
	_ = p.bar.Set(done)
}

// Finish completes the bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// Tracker returns a progress callback that creates the bar on first use,
// once the page total is known.
func Tracker(w io.Writer, description string) (func(done, total int), func()) {
	var bar *ProgressBar
	update := func(done, total int) {
		if bar == nil {
			bar = NewProgressBar(w, total, description)
		}
		bar.Set(done)
	}
	finish := func() {
		if bar != nil {
			bar.Finish()
		}
	}
	return update, finish
}

// Spinner shows indeterminate progress. It stays silent when w is not a
// terminal.
type Spinner struct {
	spinner *spinner.Spinner
}

// NewSpinner creates a spinner with the given message
func NewSpinner(w io.Writer, message string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{spinner: s}
}

// Start starts the animation
func (s *Spinner) Start() {
	s.spinner.Start()
}

// Stop stops the animation and clears the line
func (s *Spinner) Stop() {
	s.spinner.Stop()
}
