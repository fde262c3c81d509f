// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI connection parameters.
var (
	SpiFrequency = 10 * physic.MegaHertz
	SpiMode      = spi.Mode0
	SpiBits      = 8
)

// DebugF is the signature of the debug hook.
type DebugF func(string, ...interface{})

// Opts holds the configuration applied by New.
type Opts struct {
	Variant  Variant          // Register tables, defaults to ADXL355
	Range    Range            // Full scale range
	Rate     physic.Frequency // Output data rate
	HighPass HighPass         // High-pass corner, 0 disables the filter

	// DRDY polling. The pin is read every PollInterval until it goes high or
	// ReadyTimeout elapses.
	PollInterval time.Duration
	ReadyTimeout time.Duration

	// Expected identification, verified by New. Zero values are not checked.
	Identity Identity

	// Nominal temperature calibration: TemperatureBias LSB at 25°C and
	// TemperatureSlope LSB/°C.
	TemperatureBias  float64
	TemperatureSlope float64

	// Debug receives a line for register updates, drained bursts and ready
	// timeouts.
	Debug DebugF
}

// DefaultOpts is the configuration applied by New when o is nil.
var DefaultOpts = Opts{
	Variant:      ADXL355,
	Range:        Range2G,
	Rate:         ODR125,
	HighPass:     0,
	PollInterval: time.Microsecond,
	ReadyTimeout: 3 * time.Second,
	Identity: Identity{
		AnalogDevicesID: 0xAD,
		MEMSID:          0x1D,
		PartID:          0xED,
	},
	TemperatureBias:  1852,
	TemperatureSlope: -9.05,
}

// Status is the STATUS register.
type Status byte

const (
	DataReady     Status = 1 << 0 // A complete sample is available
	FIFOFull      Status = 1 << 1 // FIFO watermark reached
	FIFOOverrange Status = 1 << 2 // FIFO overrun, samples were lost
)

// DataReady reports whether a new sample is available.
func (s Status) DataReady() bool { return s&DataReady != 0 }

// FIFOFull reports whether the FIFO reached its watermark.
func (s Status) FIFOFull() bool { return s&FIFOFull != 0 }

// FIFOOverrange reports whether the FIFO overran.
func (s Status) FIFOOverrange() bool { return s&FIFOOverrange != 0 }

func (s Status) String() string {
	return fmt.Sprintf("Status{DataReady:%t FIFOFull:%t FIFOOverrange:%t}", s.DataReady(), s.FIFOFull(), s.FIFOOverrange())
}

// Identity holds the identification registers.
type Identity struct {
	AnalogDevicesID byte
	MEMSID          byte
	PartID          byte
	RevisionID      byte
}

func (i Identity) String() string {
	return fmt.Sprintf("{AD:%#02x MEMS:%#02x Part:%#02x Rev:%#02x}", i.AnalogDevicesID, i.MEMSID, i.PartID, i.RevisionID)
}

// matches reports whether got carries the non zero IDs of i.
func (i Identity) matches(got Identity) bool {
	return (i.AnalogDevicesID == 0 || i.AnalogDevicesID == got.AnalogDevicesID) &&
		(i.MEMSID == 0 || i.MEMSID == got.MEMSID) &&
		(i.PartID == 0 || i.PartID == got.PartID)
}

// Dev is a driver for the ADXL355 accelerometer.
//
// Dev is not safe for concurrent use. The bus transactions of one operation
// must not interleave with another's, so callers sharing a Dev serialize
// their calls.
type Dev struct {
	c       spi.Conn
	drdy    gpio.PinIn
	variant Variant
	opts    Opts
	rng     Range
	scale   float64
}

// New returns a Dev talking over p, using drdy as the data ready signal.
// drdy may be nil, in which case every ready wait lasts ReadyTimeout.
//
// The identification registers are verified, then o's range, rate and
// filter are applied and the device is left in measurement mode.
func New(p spi.Port, drdy gpio.PinIn, o *Opts) (*Dev, error) {
	c, err := p.Connect(SpiFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("adxl355: %w", err)
	}
	return NewConn(c, drdy, o)
}

// NewConn is like New on an already connected bus.
func NewConn(c spi.Conn, drdy gpio.PinIn, o *Opts) (*Dev, error) {
	if o == nil {
		o = &DefaultOpts
	}
	d := &Dev{c: c, drdy: drdy, variant: o.Variant, opts: *o}
	if d.variant == nil {
		d.variant = ADXL355
	}
	if d.opts.Debug == nil {
		d.opts.Debug = noop
	}
	id, err := d.Identify()
	if err != nil {
		return nil, err
	}
	if !o.Identity.matches(id) {
		return nil, &WrongDeviceError{Want: o.Identity, Got: id}
	}
	if err := d.Configure(o.Range, o.Rate, o.HighPass); err != nil {
		return nil, err
	}
	if err := d.WaitReady(); err != nil {
		d.debug("%v", err)
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADXL355{%s, Range:%s}", d.c, d.rng)
}

// Start enters measurement mode.
func (d *Dev) Start() error {
	return d.updateRegister(PowerCtl, standbyBit, 0)
}

// Stop enters standby.
func (d *Dev) Stop() error {
	return d.updateRegister(PowerCtl, standbyBit, standbyBit)
}

// Halt implements conn.Resource. It puts the device in standby.
func (d *Dev) Halt() error {
	return d.Stop()
}

// Standby reports whether the device is in standby, as read back from the
// power control register.
func (d *Dev) Standby() (bool, error) {
	v, err := d.ReadRegister(PowerCtl)
	return v&standbyBit != 0, err
}

// Status reads the STATUS register.
func (d *Dev) Status() (Status, error) {
	s, err := d.ReadRegister(StatusReg)
	return Status(s), err
}

// Identify reads the identification registers.
func (d *Dev) Identify() (Identity, error) {
	b, err := d.ReadRegisters(DevIDAD, 4)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		AnalogDevicesID: b[0],
		MEMSID:          b[1],
		PartID:          b[2],
		RevisionID:      b[3],
	}, nil
}

// Reset performs a software reset. The device returns to its power-on
// register values, in standby. The cached range is reset accordingly.
func (d *Dev) Reset() error {
	if err := d.WriteRegister(ResetReg, resetCode); err != nil {
		return err
	}
	d.rng = Range2G
	d.scale = scaleFactor(Range2G)
	return nil
}

func (d *Dev) debug(format string, args ...interface{}) {
	d.opts.Debug(format, args...)
}

func noop(string, ...interface{}) {}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
