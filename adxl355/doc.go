// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adxl355 controls an ADXL355 low noise 3-axis accelerometer over
// SPI.
//
// Samples are 20 bit two's complement values. They can be read one at a
// time, gated by the DRDY pin, or in bursts drained from the 96 entry FIFO.
// FIFO overflow is not detected by the burst functions; size bursts and
// polling so the FIFO never holds more than 32 samples.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/adxl354_adxl355.pdf
package adxl355
