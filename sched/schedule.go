// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sched implements piecewise ramp-and-hold control schedules for
// chamber pressure and shelf temperature
package sched

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Schedule defines a control variable as a function of elapsed time: the
// variable starts at Init, ramps at RampRate toward each setpoint in turn
// and holds it until the setpoint's hold duration expires. Immutable once
// built; evaluation does not modify the schedule.
type Schedule struct {
	vals   []float64 // setpoint values incl. initial value [unit]
	tkeys  []float64 // cumulative segment end times [hr]
	rate   float64   // ramp rate [unit/min]
	endinf bool      // schedule never expires (constant control)
}

// New builds a schedule from an initial value, setpoints with hold
// durations [min] and a ramp rate [unit/min]
func New(init float64, setpts, holds []float64, rampRate float64) (o *Schedule, err error) {
	if len(setpts) < 1 {
		return nil, chk.Err("schedule needs at least one setpoint")
	}
	if len(setpts) != len(holds) {
		return nil, chk.Err("schedule needs one hold duration per setpoint: %d setpoints, %d durations", len(setpts), len(holds))
	}
	if rampRate <= 0 {
		return nil, chk.Err("schedule ramp rate must be positive: %g", rampRate)
	}
	o = &Schedule{
		vals:  append([]float64{init}, setpts...),
		tkeys: make([]float64, len(holds)+1),
		rate:  rampRate,
	}
	for i, d := range holds {
		if d <= 0 {
			return nil, chk.Err("schedule hold durations must be positive: dt[%d]=%g", i, d)
		}
		o.tkeys[i+1] = o.tkeys[i] + d/60.0 // [min] to [hr]
	}
	return
}

// Constant builds a schedule fixed at value v for all times
func Constant(v float64) *Schedule {
	return &Schedule{
		vals:   []float64{v, v},
		tkeys:  []float64{0, math.MaxFloat64},
		rate:   1,
		endinf: true,
	}
}

// Ramp builds a schedule that ramps from init toward a single setpoint at
// rampRate [unit/min] and then holds it for all times
func Ramp(init, setpt, rampRate float64) (o *Schedule, err error) {
	if rampRate <= 0 {
		return nil, chk.Err("schedule ramp rate must be positive: %g", rampRate)
	}
	return &Schedule{
		vals:   []float64{init, setpt},
		tkeys:  []float64{0, math.MaxFloat64},
		rate:   rampRate,
		endinf: true,
	}, nil
}

// F evaluates the schedule at elapsed time t [hr]. Beyond the last hold the
// final setpoint is returned; use Expired to detect that condition.
func (o *Schedule) F(t float64) float64 {
	n := len(o.tkeys)
	i := n // first key time beyond t
	for k := 1; k < n; k++ {
		if o.tkeys[k] > t {
			i = k
			break
		}
	}
	if i == n {
		return o.vals[n-1]
	}
	// ramp from the previous value toward this segment's setpoint, then hold
	if o.vals[i] >= o.vals[i-1] {
		return math.Min(o.vals[i-1]+o.rate*60.0*(t-o.tkeys[i-1]), o.vals[i])
	}
	return math.Max(o.vals[i-1]-o.rate*60.0*(t-o.tkeys[i-1]), o.vals[i])
}

// Expired tells whether t [hr] lies beyond the schedule's last hold
func (o *Schedule) Expired(t float64) bool {
	if o.endinf {
		return false
	}
	return t >= o.tkeys[len(o.tkeys)-1]
}

// EndTime returns the total scheduled duration [hr]
func (o *Schedule) EndTime() float64 {
	if o.endinf {
		return math.MaxFloat64
	}
	return o.tkeys[len(o.tkeys)-1]
}
