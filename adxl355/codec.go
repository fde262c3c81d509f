// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"errors"
	"fmt"
)

var errInvalidLength = errors.New("adxl355: read length must be at least 1")

// encodeRead returns the frame for reading n consecutive registers starting
// at addr. The address is shifted left by one and the read bit set, followed
// by n filler bytes clocked out while the device answers.
func encodeRead(addr byte, n int) ([]byte, error) {
	if n < 1 {
		return nil, errInvalidLength
	}
	w := make([]byte, n+1)
	w[0] = addr<<1 | readBit
	return w, nil
}

// encodeWrite returns the two byte frame writing value to addr.
func encodeWrite(addr, value byte) []byte {
	return []byte{(addr << 1) & writeMask, value}
}

// decodeReadResponse drops the byte received while the address was sent.
func decodeReadResponse(rx []byte) []byte {
	if len(rx) == 0 {
		return rx
	}
	return rx[1:]
}

// ReadRegisters reads n consecutive registers starting at addr in a single
// transaction.
func (d *Dev) ReadRegisters(addr byte, n int) ([]byte, error) {
	w, err := encodeRead(addr, n)
	if err != nil {
		return nil, err
	}
	r := make([]byte, len(w))
	if err := d.c.Tx(w, r); err != nil {
		return nil, fmt.Errorf("adxl355: read register %#02x: %w", addr, err)
	}
	return decodeReadResponse(r), nil
}

// ReadRegister reads a single register.
func (d *Dev) ReadRegister(addr byte) (byte, error) {
	b, err := d.ReadRegisters(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteRegister writes value to addr.
//
// Configuration registers are only reliably written while the device is in
// standby. A failed write must not be assumed applied.
func (d *Dev) WriteRegister(addr, value byte) error {
	if err := d.c.Tx(encodeWrite(addr, value), nil); err != nil {
		return fmt.Errorf("adxl355: write register %#02x: %w", addr, err)
	}
	return nil
}

// updateRegister replaces the bits selected by mask with value, keeping the
// rest of the register.
func (d *Dev) updateRegister(addr, mask, value byte) error {
	cur, err := d.ReadRegister(addr)
	if err != nil {
		return err
	}
	d.debug("update register %#02x: %#02x -> %#02x", addr, cur, (cur&^mask)|(value&mask))
	return d.WriteRegister(addr, (cur&^mask)|(value&mask))
}
