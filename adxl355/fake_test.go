// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"
)

// regFile simulates the register file and FIFO of an ADXL355 behind an SPI
// connection.
type regFile struct {
	mu   sync.Mutex
	regs [ResetReg + 1]byte
	// fifo holds axis entries, X then Y then Z.
	fifo [][axisBytes]byte
	// fifoReads counts FIFO accesses, including the one returning empty.
	fifoReads int
	// failAfter makes Tx fail once that many transactions succeeded, when
	// not negative.
	failAfter int
	txs       int
}

var errBus = errors.New("bus error")

func newRegFile() *regFile {
	f := &regFile{failAfter: -1}
	f.reset()
	return f
}

// reset loads the power-on values.
func (f *regFile) reset() {
	f.regs = [ResetReg + 1]byte{}
	f.regs[DevIDAD] = 0xAD
	f.regs[DevIDMST] = 0x1D
	f.regs[PartID] = 0xED
	f.regs[RevID] = 0x01
	f.regs[Filter] = 0x00
	f.regs[FIFOSamples] = 0x60
	f.regs[RangeReg] = 0x81
	f.regs[PowerCtl] = 0x01
	f.fifo = nil
}

func (f *regFile) String() string {
	return "regfile"
}

func (f *regFile) Duplex() conn.Duplex {
	return conn.Full
}

func (f *regFile) TxPackets(p []spi.Packet) error {
	return errors.New("regfile: TxPackets not supported")
}

func (f *regFile) LimitSpeed(physic.Frequency) error {
	return nil
}

func (f *regFile) Connect(physic.Frequency, spi.Mode, int) (spi.Conn, error) {
	return f, nil
}

// connect returns the connection recording traffic against pb.
func connect(t *testing.T, pb *spitest.Playback) spi.Conn {
	c, err := pb.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func (f *regFile) Tx(w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAfter >= 0 && f.txs >= f.failAfter {
		return errBus
	}
	f.txs++
	if len(w) < 2 {
		return fmt.Errorf("regfile: short frame %#v", w)
	}
	addr := int(w[0] >> 1)
	if addr >= len(f.regs) {
		return fmt.Errorf("regfile: invalid register %#02x", addr)
	}
	if w[0]&readBit == 0 {
		switch addr {
		case ResetReg:
			if w[1] == resetCode {
				f.reset()
			}
		case DevIDAD, DevIDMST, PartID, RevID, StatusReg, FIFOEntries:
			// Read only.
		default:
			f.regs[addr] = w[1]
		}
		return nil
	}
	if len(r) != len(w) {
		return fmt.Errorf("regfile: read buffer %d != %d", len(r), len(w))
	}
	r[0] = 0
	if addr == FIFOData {
		f.fifoReads++
		if len(f.fifo) == 0 {
			copy(r[1:], []byte{0, 0, fifoEmpty})
			return nil
		}
		copy(r[1:], f.fifo[0][:])
		f.fifo = f.fifo[1:]
		return nil
	}
	for i := 1; i < len(r); i++ {
		if addr+i-1 < len(f.regs) {
			r[i] = f.regs[addr+i-1]
		}
	}
	return nil
}

// setAxis stores v in the data registers of a.
func (f *regFile) setAxis(a Axis, v uint32) {
	e := encodeAxis(v)
	copy(f.regs[a:a+axisBytes], e[:])
}

// push queues triplets in the FIFO.
func (f *regFile) push(samples ...[3]uint32) {
	for _, s := range samples {
		for i, v := range s {
			e := encodeAxis(v)
			// Low nibble markers: bit 0 flags the X axis.
			if i == 0 {
				e[2] |= 0x01
			}
			f.fifo = append(f.fifo, e)
		}
	}
}

// encodeAxis packs a 20 bit value the way the device lays it out.
func encodeAxis(v uint32) [axisBytes]byte {
	return [axisBytes]byte{byte(v >> 12), byte(v >> 4), byte(v<<4) & 0xF0}
}

// Helpers building expected bus traffic.

func readOp(addr byte, data ...byte) conntest.IO {
	w := make([]byte, len(data)+1)
	w[0] = addr<<1 | readBit
	return conntest.IO{W: w, R: append([]byte{0}, data...)}
}

func writeOp(addr, value byte) conntest.IO {
	return conntest.IO{W: []byte{addr << 1, value}}
}

func identifyOp() conntest.IO {
	return readOp(DevIDAD, 0xAD, 0x1D, 0xED, 0x01)
}

// bracket returns the standby/measurement sequence around ops, given the
// power control value found before stopping.
func bracket(power byte, ops ...conntest.IO) []conntest.IO {
	out := []conntest.IO{
		readOp(PowerCtl, power),
		writeOp(PowerCtl, power|standbyBit),
	}
	out = append(out, ops...)
	return append(out,
		readOp(PowerCtl, power|standbyBit),
		writeOp(PowerCtl, power&^standbyBit),
	)
}
