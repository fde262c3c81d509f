// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"time"

	"github.com/GermanBionicSystems/accel/adxl355"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"periph.io/x/conn/v3/physic"
)

// burst is the JSON payload published for each burst.
type burst struct {
	Time   string    `json:"time"`
	RateHz float64   `json:"rate_hz"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Z      []float64 `json:"z"`
}

func encodeBurst(start time.Time, odr physic.Frequency, samples []adxl355.Acceleration) ([]byte, error) {
	b := burst{
		Time:   start.UTC().Format(time.RFC3339Nano),
		RateHz: float64(odr) / float64(physic.Hertz),
		X:      make([]float64, len(samples)),
		Y:      make([]float64, len(samples)),
		Z:      make([]float64, len(samples)),
	}
	for i, s := range samples {
		b.X[i] = s.X
		b.Y[i] = s.Y
		b.Z[i] = s.Z
	}
	return json.Marshal(b)
}

// publisher sends bursts to an MQTT broker.
type publisher struct {
	client mqtt.Client
	topic  string
}

func newPublisher(broker, clientID, topic string) (*publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &publisher{client: client, topic: topic}, nil
}

// Publish sends one burst. Bursts are not retained; a late subscriber only
// gets what comes next.
func (p *publisher) Publish(start time.Time, odr physic.Frequency, samples []adxl355.Acceleration) error {
	payload, err := encodeBurst(start, odr, samples)
	if err != nil {
		return err
	}
	token := p.client.Publish(p.topic, 0, false, payload)
	token.Wait()
	return token.Error()
}

func (p *publisher) Close() {
	p.client.Disconnect(250)
}
