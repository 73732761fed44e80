// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Equipment holds the lyophilizer capability: the maximum total water
// vapor removal rate as an affine function of chamber pressure
//
//   dmdtMax(Pch) = A + B*Pch
//
type Equipment struct {
	A     float64 // capability intercept [kg/hr]
	B     float64 // capability slope [kg/hr/Torr]
	NVial int     // number of vials on the shelves [-]
}

// Init initialises this structure
func (o *Equipment) Init(prms fun.Params) error {
	for _, p := range prms {
		switch p.N {
		case "a":
			o.A = p.V
		case "b":
			o.B = p.V
		case "nVial":
			o.NVial = int(p.V)
		}
	}
	if o.NVial < 1 {
		return chk.Err("equipment load must have at least one vial: nVial=%d", o.NVial)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Equipment) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{ // LyoStar II
			&fun.P{N: "a", V: -0.182},  // [kg/hr]
			&fun.P{N: "b", V: 11.7},    // [kg/hr/Torr]
			&fun.P{N: "nVial", V: 398}, // [-]
		}
	}
	return fun.Params{
		&fun.P{N: "a", V: o.A},
		&fun.P{N: "b", V: o.B},
		&fun.P{N: "nVial", V: float64(o.NVial)},
	}
}

// MaxRate computes the maximum total sublimation rate [kg/hr] the vacuum
// and condenser system sustains at chamber pressure Pch [Torr]
func (o Equipment) MaxRate(Pch float64) float64 {
	return o.A + o.B*Pch
}

// Margin computes the equipment capability margin [kg/hr] for a per-vial
// sublimation rate dmdt; negative means the condenser is overloaded
func (o Equipment) Margin(Pch, dmdt float64) float64 {
	return o.MaxRate(Pch) - float64(o.NVial)*dmdt
}
