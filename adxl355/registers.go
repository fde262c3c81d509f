// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl355

// Register addresses.
const (
	DevIDAD     = 0x00 // Analog Devices ID, 0xAD
	DevIDMST    = 0x01 // Analog Devices MEMS ID, 0x1D
	PartID      = 0x02 // Device ID, 0xED
	RevID       = 0x03 // Mask revision
	StatusReg   = 0x04 // Status
	FIFOEntries = 0x05 // Number of valid data samples in the FIFO
	Temp2       = 0x06 // Temperature bits 11:8
	Temp1       = 0x07 // Temperature bits 7:0
	XData3      = 0x08 // X-axis data bits 19:12
	XData2      = 0x09 // X-axis data bits 11:4
	XData1      = 0x0A // X-axis data bits 3:0
	YData3      = 0x0B
	YData2      = 0x0C
	YData1      = 0x0D
	ZData3      = 0x0E
	ZData2      = 0x0F
	ZData1      = 0x10
	FIFOData    = 0x11 // FIFO access
	OffsetXH    = 0x1E
	OffsetXL    = 0x1F
	OffsetYH    = 0x20
	OffsetYL    = 0x21
	OffsetZH    = 0x22
	OffsetZL    = 0x23
	ActEn       = 0x24 // Activity enable
	ActThreshH  = 0x25
	ActThreshL  = 0x26
	ActCount    = 0x27
	Filter      = 0x28 // High-pass corner and output data rate
	FIFOSamples = 0x29 // FIFO watermark
	IntMap      = 0x2A
	Sync        = 0x2B
	RangeReg    = 0x2C // I²C speed, interrupt polarity and range
	PowerCtl    = 0x2D
	SelfTest    = 0x2E
	ResetReg    = 0x2F
)

// Bit masks.
const (
	readBit     = 0x01 // LSB of the address byte selects a read.
	writeMask   = 0xFE
	rangeMask   = 0x03 // RangeReg bits 1:0
	standbyBit  = 0x01 // PowerCtl bit 0, 1 = standby
	fifoEmpty   = 0x02 // bit 1 of the third byte of a FIFO entry
	odrMask     = 0x0F // Filter bits 3:0
	hpfShift    = 4    // Filter bits 6:4
	entriesMask = 0x7F
	tempHighMsk = 0x0F

	// Sample layout.
	signBit20  = 0x80000
	span20     = 0x100000
	axisBytes  = 3
	resetCode  = 0x52
	fifoDepth  = 96 // axis entries, 32 triplets
	axisNumber = 3
)
