// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LyoHUB/golyo/mdl"
)

func exampleSolver() (o Solver) {
	var v mdl.Vial
	v.Init(v.GetPrms(true))
	var p mdl.Product
	p.Init(p.GetPrms(true))
	var h mdl.HeatTransfer
	h.Init(h.GetPrms(true))
	o.Init(v, p, h)
	return
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. front energy balance")

	o := exampleSolver()
	s, err := o.Solve(0, 0.15, -20, -30)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("Tsub=%g Tbot=%g dmdt=%g flux=%g\n", s.Tsub, s.Tbot, s.Dmdt, s.Flux)
	}

	// residual vanishes at the solution
	qsub := mdl.DHs * (s.Psub - 0.15) * o.Vial.Ap / s.Rp / mdl.HrToS
	qsh := s.Kv * o.Vial.Av * (-20 - s.Tbot)
	chk.Scalar(tst, "Qsub-Qsh", 1e-8, qsub-qsh, 0)

	// bottom warmer than the front, both below the shelf
	if s.Tsub >= s.Tbot || s.Tbot >= -20 {
		tst.Errorf("temperature ordering violated: Tsub=%g, Tbot=%g, Tsh=-20\n", s.Tsub, s.Tbot)
		return
	}
	if s.Dmdt <= 0 || s.Flux <= 0 {
		tst.Errorf("sublimation must proceed at these conditions: dmdt=%g\n", s.Dmdt)
		return
	}
	chk.Scalar(tst, "flux from dmdt", 1e-12, s.Flux, s.Dmdt/(o.Vial.Ap*mdl.CmToM*mdl.CmToM))

	// warm start far from the solution still converges to the same root
	s2, err := o.Solve(0, 0.15, -20, 40)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "warm start independence", 1e-7, s2.Tsub, s.Tsub)
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. no-sublimation clamp and input checks")

	o := exampleSolver()

	// high pressure with a cold shelf keeps the front below saturation
	s, err := o.Solve(0, 2.0, -40, -40)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dmdt clamped", 1e-15, s.Dmdt, 0)
	chk.Scalar(tst, "flux clamped", 1e-15, s.Flux, 0)

	if _, err = o.Solve(-0.1, 0.15, -20, -30); err == nil {
		tst.Errorf("Solve must reject a negative cake thickness\n")
	}
	if _, err = o.Solve(0, -0.15, -20, -30); err == nil {
		tst.Errorf("Solve must reject a non-positive pressure\n")
	}
	if _, err = o.Solve(2*o.Lpr0, 0.15, -20, -30); err == nil {
		tst.Errorf("Solve must reject a cake thicker than the fill\n")
	}
}

func Test_solver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver03. inversion from measured bottom temperature")

	o := exampleSolver()
	lck := 0.2 * o.Lpr0
	s, err := o.Solve(lck, 0.15, -20, -30)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// feeding the forward solution back recovers front state and resistance
	inv, err := o.SolveFromTbot(lck, 0.15, -20, s.Tbot)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Tsub recovered", 1e-6, inv.Tsub, s.Tsub)
	chk.Scalar(tst, "Rp recovered", 1e-5, inv.Rp, s.Rp)
	chk.Scalar(tst, "dmdt recovered", 1e-8, inv.Dmdt, s.Dmdt)

	// a bottom temperature at the front temperature means no gradient
	cold, err := o.SolveFromTbot(lck, 2.0, -40, -40)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if cold.Rp != 0 || cold.Dmdt != 0 {
		tst.Errorf("no-sublimation inversion must zero Rp and dmdt: Rp=%g, dmdt=%g\n", cold.Rp, cold.Dmdt)
	}
}

func Test_solver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver04. prescribed bottom temperature isotherm")

	o := exampleSolver()
	lck := 0.3 * o.Lpr0
	s, err := o.SolveAtTbot(lck, 0.15, -5)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Tbot prescribed", 1e-12, s.Tbot, -5)

	// conduction through the frozen layer closes the loop
	tbot := s.Tsub + (o.Lpr0-lck)*(s.Psub-0.15)*mdl.DHs/s.Rp/mdl.HrToS/mdl.KIce
	chk.Scalar(tst, "conduction closure", 1e-7, tbot, -5)

	if s.Tsub >= s.Tbot {
		tst.Errorf("front must be colder than the bottom: Tsub=%g\n", s.Tsub)
	}
	if math.IsNaN(s.Flux) || s.Flux <= 0 {
		tst.Errorf("isotherm flux must be positive: %g\n", s.Flux)
	}
}
