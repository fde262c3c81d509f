// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// adxl355 streams acceleration bursts read from an ADXL355 FIFO.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/accel/adxl355"
	"github.com/GermanBionicSystems/accel/meter"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	spiID := flag.String("spi", "", "SPI port to use")
	drdyName := flag.String("drdy", "GPIO17", "DRDY pin, empty when not wired")
	rng := flag.Float64("range", float64(adxl355.Range2G), "full scale range in g: 2.048, 4.096 or 8.192")
	odr := adxl355.ODR125
	flag.Var(&odr, "odr", "output data rate, e.g. 125Hz or 62.5Hz")
	hpf := flag.Uint("hpf", 0, "high-pass corner 0-6, 0 disables the filter")
	n := flag.Int("n", 100, "samples per burst")
	count := flag.Int("count", 0, "number of bursts, 0 to run until interrupted")
	raw := flag.Bool("raw", false, "print signed LSB instead of g")
	showMeter := flag.Bool("meter", false, "draw a level meter instead of printing samples")
	broker := flag.String("mqtt", "", "MQTT broker to publish bursts to, e.g. tcp://localhost:1883")
	topic := flag.String("topic", "adxl355/acceleration", "MQTT topic")
	clientID := flag.String("client-id", "adxl355", "MQTT client ID")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *n < 1 {
		return errors.New("-n must be at least 1")
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	p, err := spireg.Open(*spiID)
	if err != nil {
		return err
	}
	defer p.Close()

	var drdy gpio.PinIn
	if *drdyName != "" {
		pin := gpioreg.ByName(*drdyName)
		if pin == nil {
			return fmt.Errorf("invalid DRDY pin %q", *drdyName)
		}
		if err := pin.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return err
		}
		drdy = pin
	}

	o := adxl355.DefaultOpts
	o.Range = adxl355.Range(*rng)
	o.Rate = odr
	o.HighPass = adxl355.HighPass(*hpf)
	if *verbose {
		o.Debug = log.Printf
	}
	d, err := adxl355.New(p, drdy, &o)
	if err != nil {
		return err
	}
	defer d.Halt()
	if *verbose {
		id, err := d.Identify()
		if err != nil {
			return err
		}
		r, err := d.ReadRange()
		if err != nil {
			return err
		}
		standby, err := d.Standby()
		if err != nil {
			return err
		}
		log.Printf("%s %s device range:%s standby:%t", d, id, r, standby)
	}

	var m *meter.Dev
	if *showMeter {
		if m, err = meter.New(&meter.Opts{Width: 21, FullScale: float64(d.Range())}); err != nil {
			return err
		}
		defer m.Halt()
	}

	var pub *publisher
	if *broker != "" {
		if pub, err = newPublisher(*broker, *clientID, *topic); err != nil {
			return err
		}
		defer pub.Close()
	}

	// The current burst always completes; the interrupt is honoured between
	// bursts.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	if err := d.FlushFIFO(); err != nil {
		return err
	}
	for i := 0; *count == 0 || i < *count; i++ {
		select {
		case <-stop:
			return nil
		default:
		}
		start := time.Now()
		triplets, err := d.ReadBurstTriplets(*n)
		if err != nil {
			return err
		}
		samples := make([]adxl355.Acceleration, len(triplets))
		for j, t := range triplets {
			samples[j] = t.Scale(d.Scale())
		}
		switch {
		case m != nil:
			if err := m.Write(samples[len(samples)-1]); err != nil {
				return err
			}
		case *raw:
			for _, t := range triplets {
				fmt.Println(t)
			}
		default:
			for _, a := range samples {
				fmt.Println(a)
			}
		}
		if pub != nil {
			if err := pub.Publish(start, odr, samples); err != nil {
				log.Printf("MQTT publish error: %v", err)
			}
		}
		if *verbose {
			s, err := d.Status()
			if err != nil {
				return err
			}
			if s.FIFOOverrange() {
				log.Printf("FIFO overrun, samples were lost before burst %d", i)
			}
		}
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "adxl355: %s.\n", err)
		os.Exit(1)
	}
}
