// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dspace maps the primary-drying design space: shelf-temperature
// isotherms over a grid of chamber pressures, product-temperature isotherms
// at the critical temperature, and the equipment capability limit.
package dspace

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/gosuri/uiprogress"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/sched"
	"github.com/LyoHUB/golyo/state"
)

// Opts collects the inputs for a design-space sweep
type Opts struct {
	Vial    mdl.Vial
	Prod    mdl.Product
	Ht      mdl.HeatTransfer
	Eq      mdl.Equipment
	Pch     []float64 // chamber pressure setpoints [Torr]
	Tsh     []float64 // shelf temperature setpoints [°C]
	TshInit float64   // initial shelf temperature [°C]
	Ramp    float64   // shelf temperature ramp rate [°C/min]
	Dt      float64   // time step [hr]
	Quiet   bool      // suppress the progress bar
}

// Cell holds the shelf-isotherm results for one (Tsh, Pch) pair
type Cell struct {
	TbotMax float64 // maximum product temperature [°C]
	DryTime float64 // total drying time [hr]
	FluxAvg float64 // time-averaged sublimation flux [kg/hr/m²]
	FluxMax float64 // maximum sublimation flux [kg/hr/m²]
	FluxEnd float64 // flux at the end of drying [kg/hr/m²]
}

// PrCell holds the product-isotherm results at one chamber pressure
type PrCell struct {
	Pch     float64 // chamber pressure [Torr]
	DryTime float64 // total drying time [hr]
	FluxAvg float64 // time-averaged sublimation flux [kg/hr/m²]
	FluxMin float64 // minimum sublimation flux [kg/hr/m²]
	FluxEnd float64 // flux at the end of drying [kg/hr/m²]
}

// EqCell holds the equipment-capability results at one chamber pressure
type EqCell struct {
	Pch     float64 // chamber pressure [Torr]
	Flux    float64 // per-vial sublimation flux at capability [kg/hr/m²]
	DryTime float64 // drying time at capability [hr]
	TbotMax float64 // maximum product temperature at capability [°C]
}

// Result is a complete design-space sweep
type Result struct {
	Shelf [][]Cell // indexed [iTsh][iPch]
	Prod  []PrCell // at the first and last chamber pressures
	Equip []EqCell // one per chamber pressure
}

// Generate sweeps the design space defined by the options
func Generate(o *Opts) (res *Result, err error) {

	if len(o.Pch) < 1 || len(o.Tsh) < 1 {
		return nil, chk.Err("design space needs at least one pressure and one shelf temperature setpoint")
	}
	if o.Dt <= 0 {
		o.Dt = 0.01
	}

	res = &Result{
		Shelf: make([][]Cell, len(o.Tsh)),
		Prod:  make([]PrCell, 2),
		Equip: make([]EqCell, len(o.Pch)),
	}

	var bar *uiprogress.Bar
	if !o.Quiet {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(o.Tsh) * len(o.Pch)).AppendCompleted().PrependElapsed()
		defer uiprogress.Stop()
	}

	// shelf temperature isotherms
	for i, tsh := range o.Tsh {
		res.Shelf[i] = make([]Cell, len(o.Pch))
		for j, pch := range o.Pch {
			var calc drying.Calc
			calc.Sol.Init(o.Vial, o.Prod, o.Ht)
			calc.SetDefaults()
			calc.Dt = o.Dt
			calc.Pch = sched.Constant(pch)
			calc.Tsh, err = sched.Ramp(o.TshInit, tsh, o.Ramp)
			if err != nil {
				return nil, err
			}
			traj, e := calc.Run()
			if e != nil {
				return nil, chk.Err("shelf isotherm Tsh=%g Pch=%g: %v", tsh, pch, e)
			}
			res.Shelf[i][j] = Cell{
				TbotMax: traj.MaxTbot(),
				DryTime: traj.DryTime,
				FluxAvg: traj.AvgFlux(),
				FluxMax: traj.MaxFlux(),
				FluxEnd: traj.EndFlux(),
			}
			if bar != nil {
				bar.Incr()
			}
		}
	}

	// product temperature isotherms at the critical temperature, bracketing
	// chamber pressures only
	var sol state.Solver
	sol.Init(o.Vial, o.Prod, o.Ht)
	for j, pch := range []float64{o.Pch[0], o.Pch[len(o.Pch)-1]} {
		c, e := o.prIsotherm(&sol, pch)
		if e != nil {
			return nil, e
		}
		res.Prod[j] = c
	}

	// equipment capability curves
	lcks := utl.LinSpace(0, sol.Lpr0, 100)
	for k, pch := range o.Pch {
		dmdt := o.Eq.MaxRate(pch) // whole-batch rate [kg/hr]
		flux := dmdt / float64(o.Eq.NVial) / (o.Vial.Ap * mdl.CmToM * mdl.CmToM)
		rate := o.Prod.DLdt(dmdt/float64(o.Eq.NVial), o.Vial.Ap) // [cm/hr]
		dtime := math.Inf(1)
		if rate > 0 {
			dtime = sol.Lpr0 / rate
		}
		tmax := math.Inf(-1)
		for _, lck := range lcks {
			rp := o.Prod.Rp(lck)
			psub := dmdt/o.Vial.Ap*rp + pch
			tsub := mdl.Tsub(psub)
			tbot := tsub + (sol.Lpr0-lck)*(psub-pch)*mdl.DHs/rp/mdl.HrToS/mdl.KIce
			if tbot > tmax {
				tmax = tbot
			}
		}
		res.Equip[k] = EqCell{Pch: pch, Flux: flux, DryTime: dtime, TbotMax: tmax}
	}
	return
}

// prIsotherm integrates drying with the product held at its critical
// temperature, stepping the front explicitly
func (o *Opts) prIsotherm(sol *state.Solver, pch float64) (c PrCell, err error) {

	c.Pch = pch
	lck, t := 0.0, 0.0
	var tprev, fprev, fsum, wsum float64
	c.FluxMin = math.Inf(1)
	first := true

	for lck < sol.Lpr0 {
		s, e := sol.SolveAtTbot(lck, pch, o.Prod.TprCrit)
		if e != nil {
			return c, chk.Err("product isotherm Pch=%g Lck=%g: %v", pch, lck, e)
		}
		if s.Flux < c.FluxMin {
			c.FluxMin = s.Flux
		}
		c.FluxEnd = s.Flux
		if !first {
			fsum += fprev * (t - tprev)
			wsum += t - tprev
		}
		tprev, fprev = t, s.Flux
		first = false

		rate := o.Prod.DLdt(s.Dmdt, o.Vial.Ap) // [cm/hr]
		if rate <= 0 {
			return c, chk.Err("product isotherm Pch=%g: no sublimation at the critical temperature", pch)
		}
		if lck+rate*o.Dt >= sol.Lpr0 {
			t += (sol.Lpr0 - lck) / rate
			lck = sol.Lpr0
		} else {
			lck += rate * o.Dt
			t += o.Dt
		}
	}

	// the last step weighs in with the preceding interval width; a run that
	// completes within a single step reduces to that step's flux
	if wsum > 0 {
		last := t - tprev
		fsum += fprev * last
		wsum += last
		c.FluxAvg = fsum / wsum
	} else {
		c.FluxAvg = fprev
	}
	c.DryTime = t
	return
}
