/*
 * molden_test.go, part of molden2abins.
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

package molden

import (
	"math"
	"os"
	"strings"
	"testing"
)

func TestOpen(Te *testing.T) {
	vib, err := Open("test/h2o.molden")
	if err != nil {
		Te.Fatal(err)
	}
	if vib.Len() != 3 {
		Te.Errorf("got %d atoms, want 3", vib.Len())
	}
	if vib.NModes() != 3 {
		Te.Errorf("got %d modes, want 3", vib.NModes())
	}
	if vib.Atom(0).Symbol != "O" || vib.Atom(0).Number != 8 {
		Te.Errorf("first atom is %s/%d, want O/8", vib.Atom(0).Symbol, vib.Atom(0).Number)
	}
	if math.Abs(vib.Atom(0).Mass-15.999) > 1e-6 {
		Te.Errorf("oxygen mass %f, want 15.999", vib.Atom(0).Mass)
	}
	//The fixture is in atomic units, so coordinates must come back in Angstrom.
	want := 0.221664 * Bohr2A
	if got := vib.Coords.At(0, 2); math.Abs(got-want) > 1e-10 {
		Te.Errorf("O z-coordinate %g, want %g", got, want)
	}
	if math.Abs(vib.Freqs[0]-1595.63) > 1e-10 {
		Te.Errorf("first frequency %f, want 1595.63", vib.Freqs[0])
	}
	//Displacements are taken as-is, no unit conversions or normalization.
	if got := vib.Modes[1].At(1, 1); math.Abs(got-0.582556) > 1e-10 {
		Te.Errorf("mode 2 H y-displacement %g, want 0.582556", got)
	}
	for m, mode := range vib.Modes {
		r, c := mode.Dims()
		if r != vib.Len() || c != 3 {
			Te.Errorf("mode %d has shape %dx%d, want %dx3", m+1, r, c, vib.Len())
		}
	}
}

func TestOpenGzip(Te *testing.T) {
	plain, err := Open("test/h2o.molden")
	if err != nil {
		Te.Fatal(err)
	}
	gz, err := Open("test/h2o.molden.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if gz.Len() != plain.Len() || gz.NModes() != plain.NModes() {
		Te.Errorf("gzip read gave %d atoms/%d modes, plain gave %d/%d",
			gz.Len(), gz.NModes(), plain.Len(), plain.NModes())
	}
	for i := range plain.Freqs {
		if gz.Freqs[i] != plain.Freqs[i] {
			Te.Errorf("frequency %d differs between gzip and plain read", i)
		}
	}
}

func TestAngstromUnits(Te *testing.T) {
	vib, err := Open("test/co.molden")
	if err != nil {
		Te.Fatal(err)
	}
	if vib.Len() != 2 || vib.NModes() != 1 {
		Te.Fatalf("got %d atoms/%d modes, want 2/1", vib.Len(), vib.NModes())
	}
	//[Atoms] Angs coordinates must not be rescaled.
	if got := vib.Coords.At(1, 2); math.Abs(got-1.128) > 1e-10 {
		Te.Errorf("O z-coordinate %g, want 1.128", got)
	}
}

func TestMissingFile(Te *testing.T) {
	_, err := Open("test/no_such_file.molden")
	if err == nil {
		Te.Fatal("expected an error for a missing file")
	}
	if !os.IsNotExist(err) {
		Te.Errorf("expected a not-exist error, got: %v", err)
	}
}

func TestBadHeader(Te *testing.T) {
	in := "[FREQ]\n100.0\n"
	_, err := Read(strings.NewReader(in), "bad.molden")
	if err == nil {
		Te.Fatal("expected an error for a file without the format header")
	}
	if !strings.Contains(err.Error(), "[Molden Format]") {
		Te.Errorf("error should name the missing header, got: %v", err)
	}
}

func TestFRCoordFallback(Te *testing.T) {
	in := `[Molden Format]
[FR-COORD]
 O    0.000000    0.000000    0.221664
 H    0.000000    1.430900   -0.886656
 H    0.000000   -1.430900   -0.886656
[FREQ]
1595.63
[FR-NORM-COORD]
vibration 1
 0.000000  0.000000  0.070503
 0.000000  0.430546 -0.559426
 0.000000 -0.430546 -0.559426
`
	vib, err := Read(strings.NewReader(in), "frcoord.molden")
	if err != nil {
		Te.Fatal(err)
	}
	if vib.Len() != 3 {
		Te.Fatalf("got %d atoms, want 3", vib.Len())
	}
	if vib.Atom(0).Number != 8 || vib.Atom(1).Number != 1 {
		Te.Errorf("atomic numbers not recovered from symbols: %d, %d",
			vib.Atom(0).Number, vib.Atom(1).Number)
	}
	//FR-COORD is always Bohr.
	want := 0.221664 * Bohr2A
	if got := vib.Coords.At(0, 2); math.Abs(got-want) > 1e-10 {
		Te.Errorf("O z-coordinate %g, want %g", got, want)
	}
}

func TestModeCountMismatch(Te *testing.T) {
	in := `[Molden Format]
[Atoms] Angs
 O     1    8    0.0 0.0 0.0
[FREQ]
100.0
200.0
[FR-NORM-COORD]
vibration 1
 0.1 0.0 0.0
`
	_, err := Read(strings.NewReader(in), "mismatch.molden")
	if err == nil {
		Te.Fatal("expected an error for mismatched frequency/mode counts")
	}
}

func TestShortDisplacementRows(Te *testing.T) {
	in := `[Molden Format]
[Atoms] Angs
 O     1    8    0.0 0.0 0.0
 H     2    1    0.0 0.0 1.0
[FREQ]
100.0
[FR-NORM-COORD]
vibration 1
 0.1 0.0 0.0
`
	_, err := Read(strings.NewReader(in), "short.molden")
	if err == nil {
		Te.Fatal("expected an error when a mode has fewer rows than atoms")
	}
}

func TestMasses(Te *testing.T) {
	vib, err := Open("test/h2o.molden")
	if err != nil {
		Te.Fatal(err)
	}
	masses := vib.Masses()
	if len(masses) != 3 {
		Te.Fatalf("got %d masses, want 3", len(masses))
	}
	for i, m := range masses {
		if m <= 0 {
			Te.Errorf("atom %d has non-positive mass %f", i, m)
		}
	}
}

func TestAtomicData(Te *testing.T) {
	z, err := AtomicNumber("Fe")
	if err != nil {
		Te.Fatal(err)
	}
	if z != 26 {
		Te.Errorf("Fe atomic number %d, want 26", z)
	}
	if _, err := AtomicNumber("Xx"); err == nil {
		Te.Error("expected an error for an unknown symbol")
	}
	if _, err := MassOf(0); err == nil {
		Te.Error("expected an error for atomic number 0")
	}
	if _, err := MassOf(2000); err == nil {
		Te.Error("expected an error for an out-of-range atomic number")
	}
}
