// Copyright 2024 The Golyo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/LyoHUB/golyo/drying"
)

func testTraj() *drying.Trajectory {
	return &drying.Trajectory{
		Status:  drying.FullyDried,
		DryTime: 1.0,
		Samples: []drying.Sample{
			{T: 0, Tsub: -32.5, Tbot: -31.0, Tsh: -20, Pch: 0.15, Flux: 0.8, DryFrac: 0},
			{T: 1, Tsub: -30.0, Tbot: -28.5, Tsh: -20, Pch: 0.15, Flux: 0.7, DryFrac: 1},
		},
	}
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. drying table rows")

	lines := dryingRows(testTraj())
	if len(lines) != 3 {
		tst.Errorf("wrong number of lines: %d\n", len(lines))
		return
	}
	if !strings.Contains(lines[0], "Chamber Pressure [mTorr]") {
		tst.Errorf("header must name the mTorr pressure column\n")
		return
	}

	// pressures leave in mTorr, everything else as stored
	chk.String(tst, lines[1], "0,-32.5,-31,-20,150,0.8,0")
	chk.String(tst, lines[2], "1,-30,-28.5,-20,150,0.7,1")
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. csv files on disk")

	dir := "/tmp/golyo"
	if err := os.MkdirAll(dir, 0777); err != nil {
		tst.Errorf("cannot create %q: %v\n", dir, err)
		return
	}
	fn, err := WriteDryingCsv(dir, "test_out02", testTraj())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	b, err := io.ReadFile(fn)
	if err != nil {
		tst.Errorf("cannot read back %q: %v\n", fn, err)
		return
	}
	if !strings.Contains(string(b), "150,0.8,0") {
		tst.Errorf("written file misses expected row\n")
	}
}
