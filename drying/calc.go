// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drying

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
	"github.com/cpmech/gosl/utl"

	"github.com/LyoHUB/golyo/sched"
	"github.com/LyoHUB/golyo/state"
)

// Calc integrates primary drying with known Kv and Rp. The dried-cake
// thickness is the sole ODE state,
//
//   dLck/dt = dmdt * fice / (Ap * ρice)
//
// with dmdt obtained from the front energy balance at each evaluation.
// Radau5 handles the stiffness of the fast balance equilibration against
// the slow cake growth.
type Calc struct {

	// configuration
	Sol state.Solver    // front energy balance solver
	Pch *sched.Schedule // chamber pressure schedule [Torr]
	Tsh *sched.Schedule // shelf temperature schedule [°C]

	// options
	NOut int     // number of resampled output rows
	Dt   float64 // integration interval between terminal checks [hr]
	TMax float64 // maximum-time safety bound [hr]
}

// SetDefaults sets default options
func (o *Calc) SetDefaults() {
	o.NOut = 100
	o.Dt = 0.01
	o.TMax = 14 * 24 // two weeks
}

// Run integrates until fully dried, the time bound, or schedule
// exhaustion. The returned trajectory is valid in all three cases; only a
// root-find failure inside the energy balance is an error.
func (o *Calc) Run() (traj *Trajectory, err error) {

	if o.NOut < 2 || o.Dt <= 0 || o.TMax <= 0 {
		return nil, chk.Err("drying: invalid options: NOut=%d, Dt=%g, TMax=%g", o.NOut, o.Dt, o.TMax)
	}
	lpr0 := o.Sol.Lpr0

	// warm start for the front temperature, threaded through the RHS
	guess := o.Tsh.F(0)

	// right-hand side of the thickness ODE
	var fail error
	fcn := func(f []float64, dx, x float64, y []float64) error {
		l := math.Max(0, math.Min(y[0], lpr0))
		s, e := o.Sol.Solve(l, o.Pch.F(x), o.Tsh.F(x), guess)
		if e != nil {
			fail = e
			return e
		}
		guess = s.Tsub
		f[0] = o.Sol.Prod.DLdt(s.Dmdt, o.Sol.Vial.Ap)
		return nil
	}

	var odesol ode.Solver
	odesol.Init("Radau5", 1, fcn, nil, nil, nil)
	odesol.SetTol(1e-10, 1e-7)
	odesol.Distr = false

	// advance interval by interval, watching for the drying-complete event
	status := TimeLimit
	t, tEnd := 0.0, o.TMax
	y := []float64{0}
	times, lcks := []float64{0}, []float64{0}
	for t < o.TMax {
		if o.Pch.Expired(t) || o.Tsh.Expired(t) {
			status = ScheduleExhausted
			tEnd = t
			break
		}
		ta, tb := t, math.Min(t+o.Dt, o.TMax)
		lprev := y[0]
		if err = odesol.Solve(y, ta, tb, tb-ta, false); err != nil {
			if fail != nil {
				return nil, fail
			}
			return nil, chk.Err("drying: integration failed at t=%g hr: %v", ta, err)
		}
		t = tb
		times = append(times, t)
		lcks = append(lcks, y[0])
		if y[0] >= lpr0 {
			// locate the crossing inside this interval
			tEnd = tb
			if y[0] > lprev {
				tEnd = ta + (tb-ta)*(lpr0-lprev)/(y[0]-lprev)
			}
			lcks[len(lcks)-1] = lpr0
			times[len(times)-1] = tEnd
			status = FullyDried
			break
		}
	}
	if status == TimeLimit {
		tEnd = o.TMax
	}

	// resample to evenly spaced output times
	traj = &Trajectory{Status: status, DryTime: tEnd}
	tout := utl.LinSpace(0, tEnd, o.NOut)
	guess = o.Tsh.F(0)
	for _, tt := range tout {
		l := interp(times, lcks, tt)
		s, e := o.Sol.Solve(l, o.Pch.F(tt), o.Tsh.F(tt), guess)
		if e != nil {
			return nil, e
		}
		guess = s.Tsub
		traj.Samples = append(traj.Samples, Sample{
			T:       tt,
			Tsub:    s.Tsub,
			Tbot:    s.Tbot,
			Tsh:     o.Tsh.F(tt),
			Pch:     o.Pch.F(tt),
			Flux:    s.Flux,
			DryFrac: l / lpr0,
		})
	}
	return
}

// interp linearly interpolates y(x) over the strictly increasing knots xs
func interp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			w := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + w*(ys[i]-ys[i-1])
		}
	}
	return ys[n-1]
}
