// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package drying integrates the dried-cake thickness through primary
// drying under prescribed pressure and shelf temperature schedules
package drying

import "math"

// Status labels how a drying run terminated
type Status int

const (
	FullyDried        Status = iota // cake reached the initial fill height
	TimeLimit                       // maximum-time safety bound exceeded
	ScheduleExhausted               // control schedules ran out before dryness
)

// String returns a human readable status
func (s Status) String() string {
	switch s {
	case FullyDried:
		return "fully dried"
	case TimeLimit:
		return "time limit exceeded, drying incomplete"
	case ScheduleExhausted:
		return "schedule exhausted, drying incomplete"
	}
	return "unknown"
}

// Sample holds one row of a drying trajectory. Pressure is kept in Torr;
// output tables convert to mTorr.
type Sample struct {
	T       float64 // elapsed time [hr]
	Tsub    float64 // sublimation front temperature [°C]
	Tbot    float64 // vial bottom temperature [°C]
	Tsh     float64 // shelf temperature [°C]
	Pch     float64 // chamber pressure [Torr]
	Flux    float64 // sublimation flux [kg/hr/m²]
	DryFrac float64 // fraction dried [-]
}

// Trajectory is a time-increasing sequence of samples from fully frozen to
// the terminal state, with the reason the run ended
type Trajectory struct {
	Samples []Sample
	Status  Status
	DryTime float64 // elapsed time at termination [hr]
}

// AvgFlux computes the time-weighted mean sublimation flux [kg/hr/m²].
// A single-sample trajectory returns that sample's flux.
func (o *Trajectory) AvgFlux() float64 {
	n := len(o.Samples)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return o.Samples[0].Flux
	}
	var sum, wsum float64
	for i := 0; i < n; i++ {
		var dt float64
		if i < n-1 {
			dt = o.Samples[i+1].T - o.Samples[i].T
		} else {
			dt = o.Samples[n-1].T - o.Samples[n-2].T
		}
		sum += o.Samples[i].Flux * dt
		wsum += dt
	}
	if wsum == 0 {
		return o.Samples[0].Flux
	}
	return sum / wsum
}

// MaxTbot returns the maximum vial bottom temperature [°C]
func (o *Trajectory) MaxTbot() float64 {
	m := math.Inf(-1)
	for _, s := range o.Samples {
		if s.Tbot > m {
			m = s.Tbot
		}
	}
	return m
}

// MaxFlux returns the maximum sublimation flux [kg/hr/m²]
func (o *Trajectory) MaxFlux() float64 {
	m := math.Inf(-1)
	for _, s := range o.Samples {
		if s.Flux > m {
			m = s.Flux
		}
	}
	return m
}

// MinFlux returns the minimum sublimation flux [kg/hr/m²]
func (o *Trajectory) MinFlux() float64 {
	m := math.Inf(1)
	for _, s := range o.Samples {
		if s.Flux < m {
			m = s.Flux
		}
	}
	return m
}

// EndFlux returns the sublimation flux at the last sample [kg/hr/m²]
func (o *Trajectory) EndFlux() float64 {
	if len(o.Samples) == 0 {
		return 0
	}
	return o.Samples[len(o.Samples)-1].Flux
}
