// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Axis selects one of the data register triplets.
type Axis byte

const (
	X Axis = XData3
	Y Axis = YData3
	Z Axis = ZData3
)

// WaitReady polls DRDY until it goes high.
//
// It returns ErrReadyTimeout when ReadyTimeout elapsed first, and
// ErrNoReadySignal after sleeping ReadyTimeout when no pin is configured.
// Both are informational; reading can proceed.
func (d *Dev) WaitReady() error {
	if d.drdy == nil {
		time.Sleep(d.opts.ReadyTimeout)
		return ErrNoReadySignal
	}
	deadline := time.Now().Add(d.opts.ReadyTimeout)
	for d.drdy.Read() == gpio.Low {
		if !time.Now().Before(deadline) {
			d.debug("DRDY %s still low after %s", d.drdy, d.opts.ReadyTimeout)
			return ErrReadyTimeout
		}
		time.Sleep(d.opts.PollInterval)
	}
	return nil
}

// ReadAxis reads one axis' data registers, without waiting for DRDY.
func (d *Dev) ReadAxis(a Axis) (int32, error) {
	b, err := d.ReadRegisters(byte(a), axisBytes)
	if err != nil {
		return 0, err
	}
	return DecodeAxis(b), nil
}

// ReadRaw waits for DRDY then reads X, Y and Z in that order.
//
// When the wait ends with ErrReadyTimeout or ErrNoReadySignal the sample is
// still read and returned alongside that error; the caller decides whether
// to keep it. Any other error returns a zero Triplet.
func (d *Dev) ReadRaw() (Triplet, error) {
	ready := d.WaitReady()
	var t Triplet
	var err error
	if t.X, err = d.ReadAxis(X); err != nil {
		return Triplet{}, err
	}
	if t.Y, err = d.ReadAxis(Y); err != nil {
		return Triplet{}, err
	}
	if t.Z, err = d.ReadAxis(Z); err != nil {
		return Triplet{}, err
	}
	return t, ready
}

// Read is ReadRaw converted to g.
func (d *Dev) Read() (Acceleration, error) {
	t, err := d.ReadRaw()
	return t.Scale(d.scale), err
}

// readFIFO reads one axis entry from the FIFO.
func (d *Dev) readFIFO(dst *[axisBytes]byte) error {
	b, err := d.ReadRegisters(FIFOData, axisBytes)
	if err != nil {
		return err
	}
	copy(dst[:], b)
	return nil
}

// drainFIFO appends the complete triplets currently held in the FIFO to dst.
//
// Entries come out X, Y, Z. An X slot flagged empty stops draining before Y
// and Z are read, so a triplet is never split.
func (d *Dev) drainFIFO(dst []RawTriplet) ([]RawTriplet, error) {
	for {
		var t RawTriplet
		if err := d.readFIFO(&t[0]); err != nil {
			return dst, err
		}
		if t[0][2]&fifoEmpty != 0 {
			return dst, nil
		}
		if err := d.readFIFO(&t[1]); err != nil {
			return dst, err
		}
		if err := d.readFIFO(&t[2]); err != nil {
			return dst, err
		}
		dst = append(dst, t)
	}
}

// ReadBurstRaw returns exactly n triplets read from the FIFO, oldest first.
// It blocks, draining the FIFO repeatedly, until enough were collected.
//
// FIFO overflow is not detected. The FIFO holds 32 triplets; at high data
// rates a caller that falls behind silently loses samples. Check
// Status().FIFOOverrange() when loss matters.
func (d *Dev) ReadBurstRaw(n int) ([]RawTriplet, error) {
	if n <= 0 {
		return []RawTriplet{}, nil
	}
	out := make([]RawTriplet, 0, n+fifoDepth/axisNumber)
	for len(out) < n {
		before := len(out)
		var err error
		if out, err = d.drainFIFO(out); err != nil {
			return nil, err
		}
		if len(out) != before {
			d.debug("drained %d triplets, %d/%d", len(out)-before, len(out), n)
		}
	}
	return out[:n], nil
}

// ReadBurstTriplets is ReadBurstRaw decoded to signed samples.
func (d *Dev) ReadBurstTriplets(n int) ([]Triplet, error) {
	raw, err := d.ReadBurstRaw(n)
	if err != nil {
		return nil, err
	}
	out := make([]Triplet, len(raw))
	for i := range raw {
		out[i] = raw[i].Decode()
	}
	return out, nil
}

// ReadBurst is ReadBurstRaw converted to g.
func (d *Dev) ReadBurst(n int) ([]Acceleration, error) {
	raw, err := d.ReadBurstRaw(n)
	if err != nil {
		return nil, err
	}
	out := make([]Acceleration, len(raw))
	for i := range raw {
		out[i] = raw[i].Decode().Scale(d.scale)
	}
	return out, nil
}

// FlushFIFO discards the FIFO content.
func (d *Dev) FlushFIFO() error {
	var e [axisBytes]byte
	for {
		if err := d.readFIFO(&e); err != nil {
			return err
		}
		if e[2]&fifoEmpty != 0 {
			return nil
		}
	}
}

// FIFOLen returns the number of axis entries held in the FIFO.
func (d *Dev) FIFOLen() (int, error) {
	n, err := d.ReadRegister(FIFOEntries)
	return int(n & entriesMask), err
}
