// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Product holds the formulation properties and the dried-cake resistance law
//
//   Rp(l) = R0 + A1*l / (1 + A2*l)
//
// where l is the dried-cake thickness [cm]
type Product struct {
	CSolid  float64 // fractional solute concentration [-]
	R0      float64 // base product resistance [cm²*hr*Torr/g]
	A1      float64 // resistance linear coefficient [cm*hr*Torr/g]
	A2      float64 // resistance saturation coefficient [1/cm]
	TprCrit float64 // critical (collapse) product temperature [°C]
}

// Init initialises this structure
func (o *Product) Init(prms fun.Params) error {
	o.TprCrit = -5.0
	for _, p := range prms {
		switch p.N {
		case "cSolid":
			o.CSolid = p.V
		case "R0":
			o.R0 = p.V
		case "A1":
			o.A1 = p.V
		case "A2":
			o.A2 = p.V
		case "TprCrit":
			o.TprCrit = p.V
		}
	}
	if o.CSolid < 0 || o.CSolid >= 1 {
		return chk.Err("solute concentration must be within [0,1): cSolid=%g", o.CSolid)
	}
	if o.R0 <= 0 {
		return chk.Err("base product resistance must be positive: R0=%g", o.R0)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Product) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{ // 5% sucrose
			&fun.P{N: "cSolid", V: 0.05},  // [-]
			&fun.P{N: "R0", V: 1.4},       // [cm²*hr*Torr/g]
			&fun.P{N: "A1", V: 16.0},      // [cm*hr*Torr/g]
			&fun.P{N: "A2", V: 0.0},       // [1/cm]
			&fun.P{N: "TprCrit", V: -5.0}, // [°C]
		}
	}
	return fun.Params{
		&fun.P{N: "cSolid", V: o.CSolid},
		&fun.P{N: "R0", V: o.R0},
		&fun.P{N: "A1", V: o.A1},
		&fun.P{N: "A2", V: o.A2},
		&fun.P{N: "TprCrit", V: o.TprCrit},
	}
}

// Rp computes the dried-cake resistance to vapor flow [cm²*hr*Torr/g] at
// cake thickness l [cm]
func (o Product) Rp(l float64) float64 {
	return o.R0 + o.A1*l/(1.0+o.A2*l)
}

// FillHeight computes the initial height of the frozen product [cm]
func (o Product) FillHeight(v Vial) float64 {
	densfac := RhoSolution - o.CSolid*(RhoSolution-RhoIce)/RhoSolute
	return v.Vfill / (v.Ap * RhoIce) * densfac
}

// IceFrac computes the conversion factor between sublimated mass and frozen
// layer consumed, accounting for the solute left behind in the cake
func (o Product) IceFrac() float64 {
	return (1.0 - o.CSolid*(RhoSolution-RhoIce)/RhoSolute) / (1.0 - o.CSolid*RhoSolution/RhoSolute)
}

// DLdt computes the cake growth rate [cm/hr] for a per-vial sublimation
// rate dmdt [kg/hr] over product area Ap [cm²]
func (o Product) DLdt(dmdt, Ap float64) float64 {
	return dmdt * KgToG * o.IceFrac() / (Ap * RhoIce)
}

// SublimableMass computes the total mass of ice to be removed from one
// vial [kg]
func (o Product) SublimableMass(v Vial) float64 {
	return o.FillHeight(v) * v.Ap * RhoIce / o.IceFrac() / KgToG
}
