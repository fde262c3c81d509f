// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
)

func testOpts() *Opts {
	o := DefaultOpts
	o.PollInterval = fastOpts.PollInterval
	o.ReadyTimeout = fastOpts.ReadyTimeout
	return &o
}

func TestNew(t *testing.T) {
	ops := []conntest.IO{identifyOp()}
	ops = append(ops, bracket(0x00,
		readOp(RangeReg, 0x81),
		writeOp(RangeReg, 0x81),
	)...)
	ops = append(ops, bracket(0x00, writeOp(Filter, 0x05))...)
	pb := &spitest.Playback{Playback: conntest.Playback{Ops: ops, DontPanic: true}}

	var lines []string
	o := testOpts()
	o.Debug = func(format string, args ...interface{}) {
		lines = append(lines, format)
	}
	d, err := New(pb, &gpiotest.Pin{N: "DRDY", L: gpio.High}, o)
	if err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
	if d.Range() != Range2G || d.Scale() != 3.90625e-6 {
		t.Errorf("Range()=%s Scale()=%g", d.Range(), d.Scale())
	}
	if s := d.String(); s != "ADXL355{playback, Range:2.048g}" {
		t.Errorf("String() = %q", s)
	}
	if len(lines) == 0 {
		t.Error("Debug hook not called")
	}
}

func TestNewWrongDevice(t *testing.T) {
	pb := &spitest.Playback{Playback: conntest.Playback{
		Ops:       []conntest.IO{readOp(DevIDAD, 0xE5, 0x00, 0x00, 0x00)},
		DontPanic: true,
	}}
	_, err := New(pb, nil, testOpts())
	var wrong *WrongDeviceError
	if !errors.As(err, &wrong) {
		t.Fatalf("New() = %v, expected a WrongDeviceError", err)
	}
	if wrong.Got.AnalogDevicesID != 0xE5 {
		t.Errorf("Got = %s", wrong.Got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewUnsupportedConfiguration(t *testing.T) {
	pb := &spitest.Playback{Playback: conntest.Playback{
		Ops:       []conntest.IO{identifyOp()},
		DontPanic: true,
	}}
	o := testOpts()
	o.Rate = 100 * physic.Hertz
	if _, err := New(pb, nil, o); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("New() = %v, expected %v", err, ErrConfiguration)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStartStopPreserveBits(t *testing.T) {
	pb := &spitest.Playback{Playback: conntest.Playback{
		Ops: []conntest.IO{
			readOp(PowerCtl, 0x06),
			writeOp(PowerCtl, 0x07),
			readOp(PowerCtl, 0x07),
			writeOp(PowerCtl, 0x06),
			readOp(PowerCtl, 0x04),
			writeOp(PowerCtl, 0x05),
		},
		DontPanic: true,
	}}
	d := &Dev{c: connect(t, pb), variant: ADXL355, opts: fastOpts}
	if err := d.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := d.Start(); err != nil {
		t.Fatal(err)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		reg       byte
		ready     bool
		full      bool
		overrange bool
	}{
		{0x00, false, false, false},
		{0x01, true, false, false},
		{0x02, false, true, false},
		{0x04, false, false, true},
		{0x07, true, true, true},
		{0x10, false, false, false},
	}
	for _, test := range tests {
		pb := &spitest.Playback{Playback: conntest.Playback{
			Ops:       []conntest.IO{readOp(StatusReg, test.reg)},
			DontPanic: true,
		}}
		d := &Dev{c: connect(t, pb), variant: ADXL355, opts: fastOpts}
		s, err := d.Status()
		if err != nil {
			t.Fatal(err)
		}
		if s.DataReady() != test.ready || s.FIFOFull() != test.full || s.FIFOOverrange() != test.overrange {
			t.Errorf("Status(%#x) = %s", test.reg, s)
		}
		if err := pb.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestIdentify(t *testing.T) {
	f := newRegFile()
	d := &Dev{c: f, variant: ADXL355, opts: fastOpts}
	id, err := d.Identify()
	if err != nil {
		t.Fatal(err)
	}
	expected := Identity{AnalogDevicesID: 0xAD, MEMSID: 0x1D, PartID: 0xED, RevisionID: 0x01}
	if diff := cmp.Diff(id, expected); diff != "" {
		t.Errorf("Identify() difference (-got +want):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	f := newRegFile()
	d, err := New(f, &gpiotest.Pin{L: gpio.High}, testOpts())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetRange(Range8G); err != nil {
		t.Fatal(err)
	}
	if err := d.Reset(); err != nil {
		t.Fatal(err)
	}
	if f.regs[RangeReg] != 0x81 || f.regs[PowerCtl] != 0x01 {
		t.Errorf("registers not reset: range=%#x power=%#x", f.regs[RangeReg], f.regs[PowerCtl])
	}
	if d.Range() != Range2G || d.Scale() != scaleFactor(Range2G) {
		t.Errorf("Range()=%s after reset", d.Range())
	}
}

func TestReadBack(t *testing.T) {
	f := newRegFile()
	d, err := NewConn(f, &gpiotest.Pin{L: gpio.High}, testOpts())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetRange(Range4G); err != nil {
		t.Fatal(err)
	}
	if r, err := d.ReadRange(); err != nil || r != Range4G {
		t.Errorf("ReadRange() = %s, %v", r, err)
	}
	if s, err := d.Standby(); err != nil || s {
		t.Errorf("Standby() = %t, %v", s, err)
	}
	if err := d.Stop(); err != nil {
		t.Fatal(err)
	}
	if s, err := d.Standby(); err != nil || !s {
		t.Errorf("Standby() = %t, %v after Stop", s, err)
	}

	f.regs[RangeReg] = 0x80
	if _, err := d.ReadRange(); err == nil {
		t.Error("ReadRange() accepted range code 0")
	}
}

func TestTemperature(t *testing.T) {
	pb := &spitest.Playback{Playback: conntest.Playback{
		Ops: []conntest.IO{
			readOp(Temp2, 0xF7, 0x3C),
			readOp(Temp2, 0x07, 0x3C),
		},
		DontPanic: true,
	}}
	o := testOpts()
	d := &Dev{c: connect(t, pb), variant: ADXL355, opts: *o}
	raw, err := d.ReadTemperatureRaw()
	if err != nil {
		t.Fatal(err)
	}
	if raw != 0x73C {
		t.Errorf("ReadTemperatureRaw() = %#x, expected 0x73c", raw)
	}
	temp, err := d.Temperature()
	if err != nil {
		t.Fatal(err)
	}
	// 0x73C = 1852 LSB is the 25°C intercept.
	if c := temp.Celsius(); math.Abs(c-25) > 0.001 {
		t.Errorf("Temperature() = %.3f°C, expected 25", c)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestCountToTemperature(t *testing.T) {
	got := countToTemperature(1852-181, 1852, -9.05)
	if c := got.Celsius(); math.Abs(c-45) > 0.001 {
		t.Errorf("countToTemperature() = %.3f°C, expected 45", c)
	}
}

// TestEndToEnd configures the default range and filter, then reads one ready
// gated sample in g.
func TestEndToEnd(t *testing.T) {
	f := newRegFile()
	o := testOpts()
	d, err := NewConn(f, &gpiotest.Pin{L: gpio.High}, o)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Configure(2.048, 125*physic.Hertz, 0); err != nil {
		t.Fatal(err)
	}
	if f.regs[Filter] != 0x05 || f.regs[RangeReg]&rangeMask != 0b01 || f.regs[PowerCtl]&standbyBit != 0 {
		t.Fatalf("filter=%#x range=%#x power=%#x", f.regs[Filter], f.regs[RangeReg], f.regs[PowerCtl])
	}
	scale := 4.096 / 1048576
	if d.Scale() != scale {
		t.Fatalf("Scale() = %g, expected %g", d.Scale(), scale)
	}

	f.setAxis(X, 0x012345)
	f.setAxis(Y, 0x0ABCDE)
	f.setAxis(Z, 0x001000)
	a, err := d.Read()
	if err != nil {
		t.Fatal(err)
	}
	expected := Acceleration{
		X: 0x12345 * scale,
		Y: (0xABCDE - 0x100000) * scale,
		Z: 0x1000 * scale,
	}
	if diff := cmp.Diff(a, expected); diff != "" {
		t.Errorf("Read() difference (-got +want):\n%s", diff)
	}
	if a.Y >= 0 {
		t.Errorf("Y = %g, expected a negative value", a.Y)
	}
}
