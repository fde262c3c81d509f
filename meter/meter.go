// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package meter renders acceleration samples on a terminal as one coloured
// bar per axis, using ANSI color codes.
//
// Useful to check mounting and orientation before starting a recording.
package meter

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/GermanBionicSystems/accel/adxl355"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this meter.
type Opts struct {
	// Width is the number of cells per axis. It is rounded up to an odd
	// number so 0g sits on the middle cell.
	Width int
	// FullScale is the value in g drawn at either end of a bar.
	FullScale float64
	Palette   *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Dev is a three bar level meter that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	full    float64
	palette ansi256.Palette

	buf bytes.Buffer
}

var (
	positive = color.NRGBA{R: 255, G: 64, B: 0, A: 255}
	negative = color.NRGBA{R: 0, G: 128, B: 255, A: 255}
	zero     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	empty    = color.NRGBA{A: 255}
)

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.Width < 1 {
		return nil, errors.New("meter: width must be positive")
	}
	if opts.FullScale <= 0 {
		return nil, errors.New("meter: full scale must be positive")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		width:   opts.Width | 1,
		full:    opts.FullScale,
		palette: *p,
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("Meter{Width:%d, FullScale:%gg}", d.width, d.full)
}

// Halt implements conn.Resource.
//
// It resets the colors and moves to a new line so the terminal is not
// corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write redraws the current line with a.
func (d *Dev) Write(a adxl355.Acceleration) error {
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for i, v := range [...]float64{a.X, a.Y, a.Z} {
		if i != 0 {
			_, _ = d.buf.WriteString("\033[0m ")
		}
		d.bar(v)
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[0m %s", a)
	_, err := d.buf.WriteTo(d.w)
	return err
}

// bar appends the cells of one axis.
func (d *Dev) bar(v float64) {
	lo, hi := span(v, d.full, d.width)
	mid := d.width / 2
	for i := 0; i < d.width; i++ {
		c := empty
		switch {
		case i == mid:
			c = zero
		case i >= lo && i <= hi && i > mid:
			c = positive
		case i >= lo && i <= hi && i < mid:
			c = negative
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
}

// span returns the inclusive range of cells covered by v, always including
// the middle cell. Values beyond full are clipped to the bar.
func span(v, full float64, width int) (int, int) {
	mid := width / 2
	n := int(math.Round(v / full * float64(mid)))
	if n > mid {
		n = mid
	} else if n < -mid {
		n = -mid
	}
	if n < 0 {
		return mid + n, mid
	}
	return mid, mid + n
}
