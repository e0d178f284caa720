/*
 * spectrum_test.go, part of molden2abins.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package spectrum

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDOSArea(Te *testing.T) {
	freqs := []float64{500, 1500, 3000}
	x, y, err := DOS(freqs, 25, 4000)
	if err != nil {
		Te.Fatal(err)
	}
	if len(x) != len(y) {
		Te.Fatalf("grid and values have different lengths: %d vs %d", len(x), len(y))
	}
	//Each mode contributes unit area, so the integral should be close
	//to the number of modes.
	dx := x[1] - x[0]
	area := 0.0
	for _, v := range y {
		area += v * dx
	}
	if math.Abs(area-float64(len(freqs))) > 0.05 {
		Te.Errorf("DOS area %f, want about %d", area, len(freqs))
	}
}

func TestDOSPeakPosition(Te *testing.T) {
	x, y, err := DOS([]float64{1600}, 25, 2000)
	if err != nil {
		Te.Fatal(err)
	}
	best := 0
	for i := range y {
		if y[i] > y[best] {
			best = i
		}
	}
	if math.Abs(x[best]-1600) > 5 {
		Te.Errorf("DOS peak at %f, want near 1600", x[best])
	}
}

func TestDOSEmpty(Te *testing.T) {
	if _, _, err := DOS(nil, 25, 100); err == nil {
		Te.Error("expected an error for an empty frequency list")
	}
}

func TestPlot(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "spectrum.png")
	if err := Plot([]float64{1595.63, 3657.05, 3755.93}, 25, "water", name); err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("plot file is empty")
	}
}
