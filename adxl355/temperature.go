// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import "periph.io/x/conn/v3/physic"

// ReadTemperatureRaw returns the 12 bit temperature count. TEMP2 holds bits
// 11:8 in its low nibble and TEMP1 bits 7:0; both are read in one
// transaction so they belong to the same conversion.
func (d *Dev) ReadTemperatureRaw() (uint16, error) {
	b, err := d.ReadRegisters(Temp2, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]&tempHighMsk)<<8 | uint16(b[1]), nil
}

// Temperature returns the die temperature using the calibration in Opts.
//
// The nominal bias and slope vary between parts; the result is only as
// good as that calibration.
func (d *Dev) Temperature() (physic.Temperature, error) {
	raw, err := d.ReadTemperatureRaw()
	if err != nil {
		return 0, err
	}
	return countToTemperature(raw, d.opts.TemperatureBias, d.opts.TemperatureSlope), nil
}

func countToTemperature(raw uint16, bias, slope float64) physic.Temperature {
	c := (float64(raw)-bias)/slope + 25
	return physic.ZeroCelsius + physic.Temperature(c*float64(physic.Celsius))
}
