// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Vial holds the vial geometry and fill
type Vial struct {
	Av    float64 // vial cross-sectional area [cm²]
	Ap    float64 // product cross-sectional area [cm²]
	Vfill float64 // fill volume [mL]
}

// Init initialises this structure
func (o *Vial) Init(prms fun.Params) error {
	for _, p := range prms {
		switch p.N {
		case "Av":
			o.Av = p.V
		case "Ap":
			o.Ap = p.V
		case "Vfill":
			o.Vfill = p.V
		}
	}
	if o.Av <= 0 || o.Ap <= 0 || o.Vfill <= 0 {
		return chk.Err("vial geometry parameters must be positive: Av=%g, Ap=%g, Vfill=%g", o.Av, o.Ap, o.Vfill)
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o Vial) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{ // SCHOTT 6R tubing vial
			&fun.P{N: "Av", V: 3.80},    // [cm²]
			&fun.P{N: "Ap", V: 3.14},    // [cm²]
			&fun.P{N: "Vfill", V: 2.0},  // [mL]
		}
	}
	return fun.Params{
		&fun.P{N: "Av", V: o.Av},
		&fun.P{N: "Ap", V: o.Ap},
		&fun.P{N: "Vfill", V: o.Vfill},
	}
}
