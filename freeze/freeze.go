// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package freeze simulates the freezing step with a lumped-capacitance
// product model: supercooled liquid cooling to the nucleation temperature,
// an isothermal crystallization hold, then solidified-product cooling.
package freeze

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/LyoHUB/golyo/mdl"
)

// Status reports how a freezing run ended
type Status int

const (
	Complete     Status = iota // schedule finished with the product solidified
	NoNucleation               // schedule ended before nucleation
	NoSolidified               // schedule ended during crystallization
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case NoNucleation:
		return "schedule ended before nucleation"
	case NoSolidified:
		return "schedule ended during crystallization"
	}
	return "unknown"
}

// Opts collects the freezing inputs
type Opts struct {
	Vial   mdl.Vial
	CSolid float64 // solute mass fraction
	Tpr0   float64 // initial product temperature [°C]
	Tf     float64 // equilibrium freezing temperature [°C]
	Tn     float64 // nucleation temperature [°C]
	H      float64 // vial heat transfer coefficient [W/m²/K]

	// shelf temperature program
	TshInit float64   // [°C]
	Setpts  []float64 // [°C]
	Holds   []float64 // per-setpoint hold durations [min]
	Ramp    float64   // [°C/min]

	Dt float64 // time step [hr]
}

// Sample is one record of a freezing run
type Sample struct {
	T   float64 // elapsed time [hr]
	Tsh float64 // shelf temperature [°C]
	Tpr float64 // product temperature [°C]
}

// Result is a complete freezing run
type Result struct {
	Samples []Sample
	Status  Status
}

// segment is one linear piece of the shelf program
type segment struct {
	t0   float64 // start time [hr]
	v0   float64 // start value [°C]
	rate float64 // [°C/min], zero during holds
}

// profile expands the setpoint program into alternating ramp and hold
// segments with absolute start times
func (o *Opts) profile() (segs []segment, tend float64, err error) {
	if len(o.Setpts) < 1 || len(o.Setpts) != len(o.Holds) {
		return nil, 0, chk.Err("freeze: shelf program needs one hold duration per setpoint: %d setpoints, %d durations", len(o.Setpts), len(o.Holds))
	}
	if o.Ramp <= 0 {
		return nil, 0, chk.Err("freeze: shelf ramp rate must be positive: %g", o.Ramp)
	}
	t, v := 0.0, o.TshInit
	for i, sp := range o.Setpts {
		if sp != v {
			r := o.Ramp
			if sp < v {
				r = -o.Ramp
			}
			segs = append(segs, segment{t0: t, v0: v, rate: r})
			t += (sp - v) / r / 60.0 // ramp duration [hr]
			v = sp
		}
		segs = append(segs, segment{t0: t, v0: v})
		t += o.Holds[i] / 60.0
	}
	return segs, t, nil
}

// at returns the active segment index and shelf temperature at time t
func at(segs []segment, t float64) (i int, tsh float64) {
	i = len(segs) - 1
	for k := 1; k < len(segs); k++ {
		if segs[k].t0 > t {
			i = k - 1
			break
		}
	}
	s := segs[i]
	tsh = s.v0 + s.rate*60.0*(t-s.t0)
	return
}

// lumped evaluates the closed-form lumped-capacitance temperature response
// to a linearly ramping shelf. rho [g/mL], cp [J/kg/K], vol [mL], h
// [W/m²/K], ramp [°C/min], dt measured from the segment start [hr].
func (o *Opts) lumped(dt, tpr0, rho, cp, vol, tsh, tsh0, ramp float64) float64 {
	av := o.Vial.Av * mdl.CmToM * mdl.CmToM // [m²]
	tau := rho * cp / mdl.KgToG * vol / (o.H * av)
	lag := ramp / mdl.MinToS * tau
	return (tpr0+lag-tsh0)*math.Exp(-dt*mdl.HrToS/tau) - lag + tsh
}

// crystTime returns the crystallization hold duration [hr] given the shelf
// temperature at nucleation
func (o *Opts) crystTime(tsh float64) float64 {
	av := o.Vial.Av * mdl.CmToM * mdl.CmToM // [m²]
	latent := mdl.DHf*mdl.CalToJ - mdl.CpSolution/mdl.KgToG*(o.Tf-o.Tn)
	return mdl.RhoSolution * o.Vial.Vfill * latent / o.H / mdl.HrToS / av / (o.Tf - tsh)
}

// Freeze runs the freezing simulation
func (o *Opts) Freeze() (res *Result, err error) {

	if o.H <= 0 {
		return nil, chk.Err("freeze: heat transfer coefficient must be positive: %g", o.H)
	}
	if o.Tn >= o.Tpr0 || o.Tf < o.Tn {
		return nil, chk.Err("freeze: temperatures must order Tpr0 > Tn and Tf >= Tn: Tpr0=%g, Tf=%g, Tn=%g", o.Tpr0, o.Tf, o.Tn)
	}
	if o.Dt <= 0 {
		o.Dt = 0.01
	}
	segs, tend, err := o.profile()
	if err != nil {
		return nil, err
	}

	// frozen volume follows the fill height, which accounts for expansion
	prod := mdl.Product{CSolid: o.CSolid}
	vFrozen := prod.FillHeight(o.Vial) * o.Vial.Ap // [mL]

	res = &Result{}
	t, tpr, tpr0 := 0.0, o.Tpr0, o.Tpr0
	iPrev, tsh := 0, o.TshInit
	res.Samples = append(res.Samples, Sample{T: 0, Tsh: tsh, Tpr: tpr})

	// cooling of the supercooled solution
	for tpr > o.Tn {
		t += o.Dt
		if t > tend {
			res.Status = NoNucleation
			return
		}
		var i int
		i, tsh = at(segs, t)
		if i != iPrev {
			tpr0 = tpr
			iPrev = i
		}
		s := segs[i]
		tpr = o.lumped(t-s.t0, tpr0, mdl.RhoSolution, mdl.CpSolution, o.Vial.Vfill, tsh, s.v0, s.rate)
		res.Samples = append(res.Samples, Sample{T: t, Tsh: tsh, Tpr: tpr})
	}

	// nucleation: the temperature snaps back to the freezing point
	res.Samples = append(res.Samples, Sample{T: t, Tsh: tsh, Tpr: o.Tn})
	ts := t + o.crystTime(tsh)

	// isothermal crystallization hold
	tpr = o.Tf
	for t < ts {
		if t > tend {
			res.Status = NoSolidified
			return
		}
		var i int
		i, tsh = at(segs, t)
		if i != iPrev {
			tpr0 = tpr
			iPrev = i
		}
		res.Samples = append(res.Samples, Sample{T: t, Tsh: tsh, Tpr: o.Tf})
		t += o.Dt
	}

	// cooling of the solidified product
	tpr0 = o.Tf
	for t < tend {
		var i int
		i, tsh = at(segs, t)
		if i != iPrev {
			tpr0 = tpr
			iPrev = i
		}
		s := segs[i]
		tpr = o.lumped(t-s.t0, tpr0, mdl.RhoIce, mdl.CpIce, vFrozen, tsh, s.v0, s.rate)
		res.Samples = append(res.Samples, Sample{T: t, Tsh: tsh, Tpr: tpr})
		t += o.Dt
	}
	res.Status = Complete
	return
}
