// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package opt implements per-step constrained optimization of the primary
// drying controls. At each time step the free control(s) are chosen to
// maximize the sublimation rate subject to the critical product
// temperature and the equipment capability; the optimized controls are
// then fed through the same thickness-advance rule as package drying.
package opt

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/state"
)

// constraint satisfaction tolerances at reported solutions
const (
	tolTbot   = 1e-3 // [°C]
	tolMargin = 1e-9 // [kg/hr]
)

// InfeasibleError reports a step at which no control within bounds
// satisfies the constraints. Recoverable: batch callers mark the point
// infeasible and continue.
type InfeasibleError struct {
	T   float64 // elapsed time [hr]
	Lck float64 // cake thickness [cm]
	Msg string
}

// Error returns the error message
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("opt: infeasible step at t=%g hr, Lck=%g cm: %s", e.T, e.Lck, e.Msg)
}

// IsInfeasible tells whether err reports an infeasible optimization step
func IsInfeasible(err error) bool {
	_, ok := err.(*InfeasibleError)
	return ok
}

// warm carries the previous step's solution used to seed the next solve
type warm struct {
	pch  float64 // previous optimal chamber pressure [Torr]
	tsh  float64 // previous optimal shelf temperature [°C]
	tsub float64 // previous front temperature [°C]
	ok   bool    // at least one step solved
}

// stepper solves the per-step constrained program for one variant
type stepper interface {
	step(t, lck float64, w *warm) (pch, tsh float64, s state.State, err error)
	expired(t float64) bool // scheduled control ran out
}

// accumulate advances the cake thickness with optimized controls until
// fully dried or a budget is exhausted
func accumulate(sol *state.Solver, st stepper, dt, tmax float64) (traj *drying.Trajectory, err error) {

	if dt <= 0 || tmax <= 0 {
		return nil, chk.Err("opt: invalid step options: dt=%g, tmax=%g", dt, tmax)
	}
	lpr0 := sol.Lpr0
	traj = &drying.Trajectory{Status: drying.TimeLimit}

	t, lck := 0.0, 0.0
	w := &warm{}
	for t < tmax {
		if st.expired(t) {
			traj.Status = drying.ScheduleExhausted
			break
		}

		pch, tsh, s, e := st.step(t, lck, w)
		if e != nil {
			return nil, e
		}
		w.pch, w.tsh, w.tsub, w.ok = pch, tsh, s.Tsub, true

		traj.Samples = append(traj.Samples, drying.Sample{
			T:       t,
			Tsub:    s.Tsub,
			Tbot:    s.Tbot,
			Tsh:     tsh,
			Pch:     pch,
			Flux:    s.Flux,
			DryFrac: lck / lpr0,
		})

		// advance cake thickness, correcting the final partial step
		rate := sol.Prod.DLdt(s.Dmdt, sol.Vial.Ap)
		dl := rate * dt
		if lck+dl >= lpr0 && rate > 0 {
			t += (lpr0 - lck) / rate
			lck = lpr0
			traj.Samples = append(traj.Samples, drying.Sample{
				T:       t,
				Tsub:    s.Tsub,
				Tbot:    s.Tbot,
				Tsh:     tsh,
				Pch:     pch,
				Flux:    s.Flux,
				DryFrac: 1,
			})
			traj.Status = drying.FullyDried
			break
		}
		lck += dl
		t += dt
	}
	traj.DryTime = t
	return
}

// feasible verifies the constraints at a candidate solution
func feasible(eq mdl.Equipment, tcrit, pch float64, s state.State) bool {
	if s.Tbot > tcrit+tolTbot {
		return false
	}
	if eq.Margin(pch, s.Dmdt) < -tolMargin {
		return false
	}
	return true
}

// clamp restricts x to [lo,hi]
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
