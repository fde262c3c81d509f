// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import "fmt"

// Raw20 assembles the 20 bit value held in a data register triplet. The low
// nibble of lo is not part of the sample (in FIFO entries it carries the
// axis and empty markers) and is discarded.
func Raw20(hi, mid, lo byte) uint32 {
	return uint32(hi)<<12 | uint32(mid)<<4 | uint32(lo)>>4
}

// SignExtend20 interprets raw as a 20 bit two's complement value.
func SignExtend20(raw uint32) int32 {
	if raw&signBit20 != 0 {
		return int32(raw) - span20
	}
	return int32(raw)
}

// ToG converts a signed sample to g.
func ToG(raw int32, scale float64) float64 {
	return float64(raw) * scale
}

// scaleFactor is the weight of one LSB in g for the full scale range r.
func scaleFactor(r Range) float64 {
	return 2 * float64(r) / span20
}

// DecodeAxis decodes the first three bytes of b as a signed sample.
func DecodeAxis(b []byte) int32 {
	return SignExtend20(Raw20(b[0], b[1], b[2]))
}

// RawTriplet holds the undecoded X, Y and Z payloads of one sample.
type RawTriplet [axisNumber][axisBytes]byte

// Decode returns the signed samples.
func (r *RawTriplet) Decode() Triplet {
	return Triplet{
		X: DecodeAxis(r[0][:]),
		Y: DecodeAxis(r[1][:]),
		Z: DecodeAxis(r[2][:]),
	}
}

// Triplet is one signed sample per axis, in LSB.
type Triplet struct {
	X int32
	Y int32
	Z int32
}

// Scale converts t to g.
func (t Triplet) Scale(scale float64) Acceleration {
	return Acceleration{
		X: ToG(t.X, scale),
		Y: ToG(t.Y, scale),
		Z: ToG(t.Z, scale),
	}
}

func (t Triplet) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", t.X, t.Y, t.Z)
}

// Acceleration represents the acceleration on the three axes in g.
type Acceleration struct {
	X float64
	Y float64
	Z float64
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%.6fg Y:%.6fg Z:%.6fg", a.X, a.Y, a.Z)
}
