/*
 * spectrum.go, part of molden2abins.
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

//Package spectrum produces quick-look vibrational spectra from a list
//of harmonic frequencies. All intensities are equal; this is a density
//of states, not a simulated scattering spectrum.
package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultFWHM   = 25.0 //1/cm
	defaultPoints = 1000
)

//DOS returns a Gaussian-broadened vibrational density of states
//sampled on an even grid. Each mode contributes unit area. fwhm is the
//full width at half maximum of the broadening in 1/cm; non-positive
//values select DefaultFWHM.
func DOS(freqs []float64, fwhm float64, points int) (x, y []float64, err error) {
	if len(freqs) == 0 {
		return nil, nil, fmt.Errorf("spectrum: no frequencies given")
	}
	if fwhm <= 0 {
		fwhm = DefaultFWHM
	}
	if points < 2 {
		points = defaultPoints
	}
	lo := floats.Min(freqs) - 3*fwhm
	if lo > 0 {
		lo = 0 //always show the elastic line position
	}
	hi := floats.Max(freqs) + 3*fwhm
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	norm := 1 / (sigma * math.Sqrt(2*math.Pi))

	x = make([]float64, points)
	floats.Span(x, lo, hi)
	y = make([]float64, points)
	for i, xi := range x {
		for _, f := range freqs {
			d := (xi - f) / sigma
			y[i] += norm * math.Exp(-d*d/2)
		}
	}
	return x, y, nil
}

//Plot writes a PNG line plot of the broadened density of states to
//name.
func Plot(freqs []float64, fwhm float64, title, name string) error {
	x, y, err := DOS(freqs, fwhm, defaultPoints)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Wavenumber (1/cm)"
	p.Y.Label.Text = "DOS (arb. units)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	p.Add(line)
	if err := p.Save(vg.Points(600), vg.Points(400), name); err != nil {
		return fmt.Errorf("spectrum: save %s: %w", name, err)
	}
	return nil
}
