// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"math"
	"math/rand"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/state"
)

// BothCalc optimizes chamber pressure and shelf temperature jointly. Each
// step solves a penalized two-variable program with the SCE global search
// over the control box, narrowed around the previous optimum first. With
// both controls free the flux surface can hold ties; whichever feasible
// point the search converges to first is returned.
type BothCalc struct {

	// configuration
	Sol state.Solver  // front energy balance solver
	Eq  mdl.Equipment // equipment capability

	// bounds on the free controls
	PchMin float64 // [Torr]
	PchMax float64 // [Torr]
	TshMin float64 // [°C]
	TshMax float64 // [°C]

	// options
	Dt     float64 // time step [hr]
	TMax   float64 // maximum-time safety bound [hr]
	Ncmplx int     // SCE complexes

	rng *rand.Rand
}

// SetDefaults sets default options
func (o *BothCalc) SetDefaults() {
	o.PchMin = 0.05
	o.PchMax = 1000
	o.TshMin = -45
	o.TshMax = 120
	o.Dt = 0.01
	o.TMax = 14 * 24
	o.Ncmplx = 16
}

// Run accumulates optimized steps until fully dried or a budget runs out
func (o *BothCalc) Run() (*drying.Trajectory, error) {
	o.rng = rand.New(mrg63k3a.New())
	o.rng.Seed(time.Now().UnixNano())
	return accumulate(&o.Sol, o, o.Dt, o.TMax)
}

func (o *BothCalc) expired(t float64) bool {
	return false // both controls are free; no schedule to run out
}

func (o *BothCalc) step(t, lck float64, w *warm) (pch, tsh float64, s state.State, err error) {

	tcrit := o.Sol.Prod.TprCrit

	// warm start: search a narrowed box around the previous optimum first
	if w.ok {
		dp := 0.1 * (o.PchMax - o.PchMin)
		dT := 0.1 * (o.TshMax - o.TshMin)
		pch, tsh, s, err = o.solveBox(lck, w.tsub,
			clamp(w.pch-dp, o.PchMin, o.PchMax), clamp(w.pch+dp, o.PchMin, o.PchMax),
			clamp(w.tsh-dT, o.TshMin, o.TshMax), clamp(w.tsh+dT, o.TshMin, o.TshMax))
		if err == nil && feasible(o.Eq, tcrit, pch, s) {
			return
		}
	}

	// full-box solve
	g0 := tcrit
	if w.ok {
		g0 = w.tsub
	}
	pch, tsh, s, err = o.solveBox(lck, g0, o.PchMin, o.PchMax, o.TshMin, o.TshMax)
	if err != nil {
		return
	}
	if !feasible(o.Eq, tcrit, pch, s) {
		return pch, tsh, s, &InfeasibleError{T: t, Lck: lck, Msg: "no feasible pressure/shelf-temperature pair within bounds"}
	}
	return
}

// solveBox runs the penalized SCE search over one control box
func (o *BothCalc) solveBox(lck, guess0, pLo, pHi, tLo, tHi float64) (pch, tsh float64, s state.State, err error) {

	tcrit := o.Sol.Prod.TprCrit
	guess := guess0
	gen := func(u []float64) float64 {
		p := mmaths.LinearTransform(pLo, pHi, u[0])
		T := mmaths.LinearTransform(tLo, tHi, u[1])
		sv, e := o.Sol.Solve(lck, p, T, guess)
		if e != nil {
			return math.MaxFloat64
		}
		guess = sv.Tsub
		pen := math.Max(0, sv.Tbot-tcrit) + math.Max(0, -o.Eq.Margin(p, sv.Dmdt))
		return -sv.Flux + 1e3*pen
	}
	u, _ := glbopt.SCE(o.Ncmplx, 2, o.rng, gen, true)

	pch = mmaths.LinearTransform(pLo, pHi, u[0])
	tsh = mmaths.LinearTransform(tLo, tHi, u[1])
	s, err = o.Sol.Solve(lck, pch, tsh, guess)
	return
}
