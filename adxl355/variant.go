// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Range is a full scale measurement range in g.
type Range float64

const (
	Range2G Range = 2.048 // ±2.048g
	Range4G Range = 4.096 // ±4.096g
	Range8G Range = 8.192 // ±8.192g
)

func (r Range) String() string {
	return fmt.Sprintf("%gg", float64(r))
}

// HighPass selects the high-pass filter corner. 0 disables the filter, 1 to
// 6 select a corner at a decreasing fraction of the output data rate.
type HighPass uint8

// Output data rates. The low-pass corner is a quarter of the rate.
const (
	ODR4000  physic.Frequency = 4000 * physic.Hertz
	ODR2000  physic.Frequency = 2000 * physic.Hertz
	ODR1000  physic.Frequency = 1000 * physic.Hertz
	ODR500   physic.Frequency = 500 * physic.Hertz
	ODR250   physic.Frequency = 250 * physic.Hertz
	ODR125   physic.Frequency = 125 * physic.Hertz
	ODR62_5  physic.Frequency = 62500 * physic.MilliHertz
	ODR31_25 physic.Frequency = 31250 * physic.MilliHertz
	ODR15_62 physic.Frequency = 15625 * physic.MilliHertz
	ODR7_813 physic.Frequency = 7813 * physic.MilliHertz
	ODR3_906 physic.Frequency = 3906 * physic.MilliHertz
)

// Variant maps physical settings to register codes. Boards that calibrate
// the same die differently provide another Variant instead of another
// driver.
type Variant interface {
	fmt.Stringer
	RangeCode(r Range) (byte, bool)
	RateCode(odr physic.Frequency) (byte, bool)
	HighPassCode(hpf HighPass) (byte, bool)
}

// Table is a Variant backed by lookup maps.
type Table struct {
	Name     string
	Ranges   map[Range]byte
	Rates    map[physic.Frequency]byte
	HighPass map[HighPass]byte

	_ struct{}
}

func (t *Table) String() string {
	return t.Name
}

// RangeCode implements Variant.
func (t *Table) RangeCode(r Range) (byte, bool) {
	c, ok := t.Ranges[r]
	return c, ok
}

// RateCode implements Variant.
func (t *Table) RateCode(odr physic.Frequency) (byte, bool) {
	c, ok := t.Rates[odr]
	return c, ok
}

// HighPassCode implements Variant.
func (t *Table) HighPassCode(hpf HighPass) (byte, bool) {
	c, ok := t.HighPass[hpf]
	return c, ok
}

// ADXL355 is the register table from the datasheet.
var ADXL355 Variant = &Table{
	Name: "ADXL355",
	Ranges: map[Range]byte{
		Range2G: 0b01,
		Range4G: 0b10,
		Range8G: 0b11,
	},
	Rates: map[physic.Frequency]byte{
		ODR4000:  0b0000, // low-pass 1000 Hz
		ODR2000:  0b0001,
		ODR1000:  0b0010,
		ODR500:   0b0011,
		ODR250:   0b0100,
		ODR125:   0b0101,
		ODR62_5:  0b0110,
		ODR31_25: 0b0111,
		ODR15_62: 0b1000,
		ODR7_813: 0b1001,
		ODR3_906: 0b1010, // low-pass 0.977 Hz
	},
	HighPass: map[HighPass]byte{
		0: 0b000, // disabled
		1: 0b001, // 24.7e-4 × ODR
		2: 0b010, // 6.208e-4 × ODR
		3: 0b011, // 1.554e-4 × ODR
		4: 0b100, // 0.386e-4 × ODR
		5: 0b101, // 0.095e-4 × ODR
		6: 0b110, // 0.023e-4 × ODR
	},
}

var _ Variant = &Table{}
