// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/LyoHUB/golyo/mdl"
)

// SolveFromTbot inverts the solver: given a measured vial bottom
// temperature it computes the front temperature from the conduction balance
// through the frozen layer and then the cake resistance that explains the
// vapor flow. Used by parameter estimation; Rp comes out zero when the
// measurement implies no sublimation.
func (o *Solver) SolveFromTbot(Lck, Pch, Tsh, Tbot float64) (s State, err error) {

	if Lck < 0 || Lck >= o.Lpr0 {
		return s, chk.Err("state: cake thickness out of range for inversion: Lck=%g, Lpr0=%g", Lck, o.Lpr0)
	}
	if Pch <= 0 {
		return s, chk.Err("state: chamber pressure must be positive: Pch=%g", Pch)
	}
	s.Kv = o.Ht.Kv(Pch)
	s.Tbot = Tbot

	// conduction balance is linear in Tsub:
	//   (Tsh-Tbot)*Av*Kv = (Tbot-Tsub)*Ap*kice/(Lpr0-Lck)
	q := (Tsh - Tbot) * o.Vial.Av * s.Kv
	s.Tsub = Tbot - q*(o.Lpr0-Lck)/(o.Vial.Ap*mdl.KIce)

	s.Psub = mdl.Psub(s.Tsub)
	if s.Tbot <= s.Tsub {
		// no conductive gradient: measurement implies no sublimation
		s.Rp = 0
		s.Dmdt = 0
		s.Flux = 0
		return
	}
	s.Rp = (o.Lpr0 - Lck) * (s.Psub - Pch) * mdl.DHs / (s.Tbot - s.Tsub) / mdl.HrToS / mdl.KIce
	s.Dmdt = o.Vial.Ap / s.Rp / mdl.KgToG * (s.Psub - Pch)
	if s.Dmdt < 0 {
		s.Dmdt = 0
		s.Rp = 0
	}
	s.Flux = s.Dmdt / (o.Vial.Ap * mdl.CmToM * mdl.CmToM)
	return
}

// SolveAtTbot computes the state whose vial bottom temperature equals the
// prescribed Tbot, regardless of the shelf temperature needed to sustain
// it. Used for product-temperature isotherms in design-space generation.
func (o *Solver) SolveAtTbot(Lck, Pch, Tbot float64) (s State, err error) {

	if Lck < 0 || Lck > o.Lpr0*(1.0+1e-9) {
		return s, chk.Err("state: cake thickness out of range: Lck=%g, Lpr0=%g", Lck, o.Lpr0)
	}
	s.Kv = o.Ht.Kv(Pch)
	s.Rp = o.Prod.Rp(Lck)
	s.Tbot = Tbot

	// F(T) = T - Tbot + (Psub(T)-Pch)*(Lpr0-Lck)*dHs/(Rp*kice)
	resid := func(T float64) float64 {
		return T - Tbot + (mdl.Psub(T)-Pch)*(o.Lpr0-Lck)*mdl.DHs/s.Rp/mdl.HrToS/mdl.KIce
	}
	xa, xb, err := bracket(resid, Tbot)
	if err != nil {
		return s, chk.Err("state: isotherm front temperature not bracketed (Lck=%g, Pch=%g, Tbot=%g): %v", Lck, Pch, Tbot, err)
	}
	var brent num.Brent
	brent.Init(func(T float64) (float64, error) { return resid(T), nil })
	s.Tsub, err = brent.Solve(xa, xb, true)
	if err != nil {
		return s, chk.Err("state: isotherm front temperature root-find failed (Lck=%g, Pch=%g, Tbot=%g): %v", Lck, Pch, Tbot, err)
	}

	s.Psub = mdl.Psub(s.Tsub)
	s.Dmdt = o.Vial.Ap / s.Rp / mdl.KgToG * (s.Psub - Pch)
	if s.Dmdt < 0 {
		s.Dmdt = 0
	}
	s.Flux = s.Dmdt / (o.Vial.Ap * mdl.CmToM * mdl.CmToM)
	return
}
