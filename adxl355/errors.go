// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

var (
	// ErrConfiguration is wrapped by every error reporting a setting that is
	// not in the Variant's tables.
	ErrConfiguration = errors.New("adxl355: unsupported configuration")
	// ErrReadyTimeout is returned when DRDY did not rise within
	// Opts.ReadyTimeout. It is not fatal: the caller may retry or keep the
	// returned, possibly stale, sample.
	ErrReadyTimeout = errors.New("adxl355: timeout while polling DRDY")
	// ErrNoReadySignal is returned when no DRDY pin is configured. The
	// driver waited Opts.ReadyTimeout instead.
	ErrNoReadySignal = errors.New("adxl355: DRDY pin not connected")
)

type UnsupportedRangeError struct {
	Range Range
}

func (e *UnsupportedRangeError) Error() string {
	return fmt.Sprintf("adxl355: unsupported range %s", e.Range)
}

func (e *UnsupportedRangeError) Unwrap() error { return ErrConfiguration }

type UnsupportedRateError struct {
	Rate physic.Frequency
}

func (e *UnsupportedRateError) Error() string {
	return fmt.Sprintf("adxl355: unsupported output data rate %s", e.Rate)
}

func (e *UnsupportedRateError) Unwrap() error { return ErrConfiguration }

type UnsupportedFilterError struct {
	HighPass HighPass
}

func (e *UnsupportedFilterError) Error() string {
	return fmt.Sprintf("adxl355: unsupported high-pass corner %d", e.HighPass)
}

func (e *UnsupportedFilterError) Unwrap() error { return ErrConfiguration }

// WrongDeviceError is returned by New when the identification registers do
// not match Opts.
type WrongDeviceError struct {
	Want, Got Identity
}

func (e *WrongDeviceError) Error() string {
	return fmt.Sprintf("adxl355: wrong device connected, expected %s, got %s", e.Want, e.Got)
}
