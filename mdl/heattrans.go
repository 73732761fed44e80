// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// HeatTransfer holds the pressure-dependent vial heat transfer model
//
//   Kv(Pch) = KC + KP*Pch / (1 + KD*Pch)
//
type HeatTransfer struct {
	KC float64 // contact/radiation term [cal/s/K/cm²]
	KP float64 // gas conduction term [cal/s/K/cm²/Torr]
	KD float64 // gas conduction saturation [1/Torr]
}

// Init initialises this structure
func (o *HeatTransfer) Init(prms fun.Params) error {
	for _, p := range prms {
		switch p.N {
		case "KC":
			o.KC = p.V
		case "KP":
			o.KP = p.V
		case "KD":
			o.KD = p.V
		}
	}
	if o.KC <= 0 && o.KP <= 0 {
		return chk.Err("heat transfer parameters give a non-positive Kv: KC=%g, KP=%g", o.KC, o.KP)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o HeatTransfer) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "KC", V: 2.75e-4}, // [cal/s/K/cm²]
			&fun.P{N: "KP", V: 8.93e-4}, // [cal/s/K/cm²/Torr]
			&fun.P{N: "KD", V: 0.46},    // [1/Torr]
		}
	}
	return fun.Params{
		&fun.P{N: "KC", V: o.KC},
		&fun.P{N: "KP", V: o.KP},
		&fun.P{N: "KD", V: o.KD},
	}
}

// Kv computes the vial heat transfer coefficient [cal/s/K/cm²] at chamber
// pressure Pch [Torr]
func (o HeatTransfer) Kv(Pch float64) float64 {
	return o.KC + o.KP*Pch/(1.0+o.KD*Pch)
}
