// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// SetRange selects the full scale range and updates the scale factor.
//
// An unsupported range returns an *UnsupportedRangeError without touching
// the device. Otherwise the device is put in standby, the range bits are
// updated and measurement resumes.
func (d *Dev) SetRange(r Range) error {
	code, ok := d.variant.RangeCode(r)
	if !ok {
		return &UnsupportedRangeError{Range: r}
	}
	return d.applyRange(r, code)
}

// SetFilter selects the output data rate and the high-pass corner. The scale
// factor is not affected.
func (d *Dev) SetFilter(odr physic.Frequency, hpf HighPass) error {
	odrCode, hpfCode, err := d.filterCodes(odr, hpf)
	if err != nil {
		return err
	}
	return d.applyFilter(odrCode, hpfCode)
}

// Configure validates all three settings before applying the range and then
// the filter.
func (d *Dev) Configure(r Range, odr physic.Frequency, hpf HighPass) error {
	code, ok := d.variant.RangeCode(r)
	if !ok {
		return &UnsupportedRangeError{Range: r}
	}
	odrCode, hpfCode, err := d.filterCodes(odr, hpf)
	if err != nil {
		return err
	}
	if err := d.applyRange(r, code); err != nil {
		return err
	}
	return d.applyFilter(odrCode, hpfCode)
}

// Range returns the configured full scale range.
func (d *Dev) Range() Range {
	return d.rng
}

// Scale returns the weight of one LSB in g.
func (d *Dev) Scale() float64 {
	return d.scale
}

func (d *Dev) filterCodes(odr physic.Frequency, hpf HighPass) (byte, byte, error) {
	odrCode, ok := d.variant.RateCode(odr)
	if !ok {
		return 0, 0, &UnsupportedRateError{Rate: odr}
	}
	hpfCode, ok := d.variant.HighPassCode(hpf)
	if !ok {
		return 0, 0, &UnsupportedFilterError{HighPass: hpf}
	}
	return odrCode, hpfCode, nil
}

// applyRange records the new scale as soon as the range register holds it,
// even if resuming measurement fails afterward.
func (d *Dev) applyRange(r Range, code byte) error {
	if err := d.Stop(); err != nil {
		return err
	}
	if err := d.updateRegister(RangeReg, rangeMask, code); err != nil {
		return err
	}
	d.rng = r
	d.scale = scaleFactor(r)
	return d.Start()
}

// ReadRange reads the range currently programmed in the device, regardless of
// the cached value returned by Range.
func (d *Dev) ReadRange() (Range, error) {
	v, err := d.ReadRegister(RangeReg)
	if err != nil {
		return 0, err
	}
	for _, r := range [...]Range{Range2G, Range4G, Range8G} {
		if code, ok := d.variant.RangeCode(r); ok && code == v&rangeMask {
			return r, nil
		}
	}
	return 0, fmt.Errorf("adxl355: unknown range code %#x", v&rangeMask)
}

func (d *Dev) applyFilter(odrCode, hpfCode byte) error {
	if err := d.Stop(); err != nil {
		return err
	}
	if err := d.WriteRegister(Filter, hpfCode<<hpfShift|odrCode&odrMask); err != nil {
		return err
	}
	return d.Start()
}
