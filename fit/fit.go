// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit estimates heat- and mass-transfer parameters from
// experimental primary-drying data.
package fit

import (
	"math"
	"math/rand"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"

	"github.com/LyoHUB/golyo/drying"
	"github.com/LyoHUB/golyo/mdl"
	"github.com/LyoHUB/golyo/sched"
	"github.com/LyoHUB/golyo/state"
)

// KvFromDryingTime calibrates the pressure-independent coefficient KC of the
// vial heat-transfer model so that the simulated drying time matches an
// experimental one, holding KP and KD fixed. The root search brackets KC in
// [kcLo, kcHi]; if the drying-time mismatch does not change sign across the
// bracket, the endpoint with the smaller mismatch is returned.
func KvFromDryingTime(v mdl.Vial, p mdl.Product, ht mdl.HeatTransfer, pch, tsh *sched.Schedule, tExp, kcLo, kcHi float64) (kc float64, err error) {

	mismatch := func(kc float64) (float64, error) {
		htTrial := ht
		htTrial.KC = kc
		var calc drying.Calc
		calc.Sol.Init(v, p, htTrial)
		calc.Pch, calc.Tsh = pch, tsh
		calc.SetDefaults()
		traj, e := calc.Run()
		if e != nil {
			return 0, e
		}
		return traj.DryTime - tExp, nil
	}

	fLo, err := mismatch(kcLo)
	if err != nil {
		return
	}
	fHi, err := mismatch(kcHi)
	if err != nil {
		return
	}
	if fLo*fHi > 0 {
		// bracket miss: pick the endpoint closer to the experimental time
		if math.Abs(fLo) < math.Abs(fHi) {
			return kcLo, nil
		}
		return kcHi, nil
	}

	var brent num.Brent
	brent.Init(func(kc float64) (float64, error) { return mismatch(kc) })
	kc, err = brent.Solve(kcLo, kcHi, true)
	if err != nil {
		return 0, chk.Err("KC root search failed: %v", err)
	}
	return
}

// TbotSample is one experimental record: time [hr], vial-bottom
// temperature [°C], with the chamber pressure [Torr] and shelf
// temperature [°C] held at that time.
type TbotSample struct {
	T    float64
	Tbot float64
	Pch  float64
	Tsh  float64
}

// RpFromTbot estimates the cake-resistance coefficients (R0, A1, A2) from a
// measured vial-bottom temperature trace. Each sample is first inverted to a
// point resistance at its cake depth, then the three-coefficient model is
// fitted to the point cloud by a least-squares global search.
func RpFromTbot(v mdl.Vial, p mdl.Product, ht mdl.HeatTransfer, data []TbotSample) (r0, a1, a2 float64, err error) {

	if len(data) < 3 {
		return 0, 0, 0, chk.Err("at least 3 samples are needed to fit 3 coefficients; got %d", len(data))
	}

	// invert each sample to (depth, resistance)
	var sol state.Solver
	sol.Init(v, p, ht)
	lck := 0.0
	depths := make([]float64, 0, len(data))
	rps := make([]float64, 0, len(data))
	for i, d := range data {
		s, e := sol.SolveFromTbot(lck, d.Pch, d.Tsh, d.Tbot)
		if e != nil {
			return 0, 0, 0, chk.Err("sample %d (t=%g): %v", i, d.T, e)
		}
		if s.Rp > 0 {
			depths = append(depths, lck)
			rps = append(rps, s.Rp)
		}
		if i < len(data)-1 {
			lck += p.DLdt(s.Dmdt, v.Ap) * (data[i+1].T - d.T)
			if lck >= sol.Lpr0 {
				break // fully dried; later samples carry no resistance signal
			}
		}
	}
	if len(rps) < 3 {
		return 0, 0, 0, chk.Err("too few sublimating samples to fit: %d", len(rps))
	}

	// fit Rp(l) = R0 + A1 l / (1 + A2 l) to the point cloud
	sim := make([]float64, len(rps))
	gen := func(u []float64) float64 {
		trial := p
		trial.R0 = mmaths.LinearTransform(0, 10, u[0])
		trial.A1 = mmaths.LinearTransform(0, 100, u[1])
		trial.A2 = mmaths.LinearTransform(0, 10, u[2])
		for i, l := range depths {
			sim[i] = trial.Rp(l)
		}
		return objfunc.RMSE(rps, sim)
	}
	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	u, _ := glbopt.SCE(16, 3, rng, gen, true)

	r0 = mmaths.LinearTransform(0, 10, u[0])
	a1 = mmaths.LinearTransform(0, 100, u[1])
	a2 = mmaths.LinearTransform(0, 10, u[2])
	return
}
