/*
 * molden.go, part of molden2abins.
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

//Package molden reads the vibrational subset of the Molden file format:
//atomic coordinates, harmonic frequencies and normal-mode eigenvectors.
package molden

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

const formatHeader = "[Molden Format]"

//A section header is a bracketed word, optionally followed by the unit
//tag used by the [Atoms] section.
var sectionRe = regexp.MustCompile(`^\[[\w\-]+\]\s*(AU|Angs)?`)

//Atom holds the per-atom data read from a Molden file, except for the
//coordinates, which are kept in a matrix (see Vibrations).
type Atom struct {
	Symbol string
	Number int     //atomic (proton) number
	Mass   float64 //standard atomic weight
}

//Vibrations holds everything read from one Molden file. Coordinates are
//in Angstrom regardless of the units used in the file, one row per atom.
//Each element of Modes is a natoms x 3 displacement matrix; values are
//copied from the file as-is, with no normalization applied.
type Vibrations struct {
	Atoms  []*Atom
	Coords *mat.Dense
	Freqs  []float64 //wavenumbers, 1/cm, one per mode
	Modes  []*mat.Dense
}

//Len returns the number of atoms.
func (V *Vibrations) Len() int {
	return len(V.Atoms)
}

//NModes returns the number of vibrational modes.
func (V *Vibrations) NModes() int {
	return len(V.Modes)
}

//Atom returns the Atom corresponding to the index i. Panics if out of
//range.
func (V *Vibrations) Atom(i int) *Atom {
	if i >= V.Len() {
		panic("Vibrations: requested Atom out of bounds")
	}
	return V.Atoms[i]
}

//Masses returns a slice with the mass of each atom.
func (V *Vibrations) Masses() []float64 {
	masses := make([]float64, V.Len())
	for i, at := range V.Atoms {
		masses[i] = at.Mass
	}
	return masses
}

//Open reads the Molden file with the given name. Files ending in ".gz"
//are decompressed on the fly.
func Open(name string) (*Vibrations, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		gz, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, Error{"can't read compressed stream: " + err.Error(), name, []string{"Open"}, true}
		}
		defer gz.Close()
		r = gz
	}
	return Read(r, name)
}

//Read parses Molden-format text from r. The name is only used to build
//error messages, it can be empty.
func Read(r io.Reader, name string) (*Vibrations, error) {
	scan := bufio.NewScanner(r)
	if !scan.Scan() {
		return nil, Error{"empty file", name, []string{"Read"}, true}
	}
	if strings.TrimSpace(scan.Text()) != formatHeader {
		return nil, Error{"missing " + formatHeader + " header, are you sure this is a Molden file?", name, []string{"Read"}, true}
	}
	secs := readSections(scan)
	if err := scan.Err(); err != nil {
		return nil, Error{"reading: " + err.Error(), name, []string{"Read"}, true}
	}

	atoms, coords, err := parseAtoms(secs, name)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	freqs, err := parseFreqs(secs, name)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	modes, err := parseModes(secs, len(atoms), name)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	if len(modes) != len(freqs) {
		return nil, Error{fmt.Sprintf("%d frequencies but %d sets of normal-mode displacements", len(freqs), len(modes)), name, []string{"Read"}, true}
	}
	return &Vibrations{Atoms: atoms, Coords: coords, Freqs: freqs, Modes: modes}, nil
}

//readSections splits the remaining lines into blocks keyed by their
//section header line. Blank lines and anything before the first header
//are discarded.
func readSections(scan *bufio.Scanner) map[string][]string {
	secs := make(map[string][]string)
	current := ""
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if sectionRe.MatchString(line) {
			current = strings.Join(strings.Fields(line), " ")
			if _, ok := secs[current]; !ok {
				secs[current] = []string{}
			}
			continue
		}
		if current == "" || line == "" {
			continue
		}
		secs[current] = append(secs[current], line)
	}
	return secs
}

func parseAtoms(secs map[string][]string, name string) ([]*Atom, *mat.Dense, error) {
	var lines []string
	var bohr bool
	var ok bool
	if lines, ok = secs["[Atoms] AU"]; ok {
		bohr = true
	} else if lines, ok = secs["[Atoms] Angs"]; !ok {
		//Some codes write frequency-only files where the geometry is
		//given (in Bohr) along with the normal modes.
		if lines, ok = secs["[FR-COORD]"]; !ok {
			return nil, nil, Error{"no [Atoms] or [FR-COORD] section", name, []string{"parseAtoms"}, true}
		}
		return parseFRCoord(lines, name)
	}
	if len(lines) == 0 {
		return nil, nil, Error{"[Atoms] section is empty", name, []string{"parseAtoms"}, true}
	}
	atoms := make([]*Atom, 0, len(lines))
	raw := make([]float64, 0, 3*len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return nil, nil, Error{fmt.Sprintf("ill-formed [Atoms] line %q", line), name, []string{"parseAtoms"}, true}
		}
		number, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, nil, Error{fmt.Sprintf("bad atomic number in [Atoms] line %q: %s", line, err.Error()), name, []string{"parseAtoms"}, true}
		}
		mass, err := MassOf(number)
		if err != nil {
			return nil, nil, errDecorate(err, "parseAtoms")
		}
		for _, v := range fields[3:6] {
			c, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("bad coordinate in [Atoms] line %q: %s", line, err.Error()), name, []string{"parseAtoms"}, true}
			}
			if bohr {
				c *= Bohr2A
			}
			raw = append(raw, c)
		}
		atoms = append(atoms, &Atom{Symbol: fields[0], Number: number, Mass: mass})
	}
	return atoms, mat.NewDense(len(atoms), 3, raw), nil
}

//parseFRCoord recovers the atoms from a [FR-COORD] section, which lacks
//atomic numbers and is always in Bohr.
func parseFRCoord(lines []string, name string) ([]*Atom, *mat.Dense, error) {
	if len(lines) == 0 {
		return nil, nil, Error{"[FR-COORD] section is empty", name, []string{"parseFRCoord"}, true}
	}
	atoms := make([]*Atom, 0, len(lines))
	raw := make([]float64, 0, 3*len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, Error{fmt.Sprintf("ill-formed [FR-COORD] line %q", line), name, []string{"parseFRCoord"}, true}
		}
		number, err := AtomicNumber(fields[0])
		if err != nil {
			return nil, nil, errDecorate(err, "parseFRCoord")
		}
		mass, err := MassOf(number)
		if err != nil {
			return nil, nil, errDecorate(err, "parseFRCoord")
		}
		for _, v := range fields[1:4] {
			c, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("bad coordinate in [FR-COORD] line %q: %s", line, err.Error()), name, []string{"parseFRCoord"}, true}
			}
			raw = append(raw, c*Bohr2A)
		}
		atoms = append(atoms, &Atom{Symbol: fields[0], Number: number, Mass: mass})
	}
	return atoms, mat.NewDense(len(atoms), 3, raw), nil
}

func parseFreqs(secs map[string][]string, name string) ([]float64, error) {
	lines, ok := secs["[FREQ]"]
	if !ok {
		return nil, Error{"no [FREQ] section", name, []string{"parseFreqs"}, true}
	}
	if len(lines) == 0 {
		return nil, Error{"[FREQ] section is empty", name, []string{"parseFreqs"}, true}
	}
	freqs := make([]float64, 0, len(lines))
	for _, line := range lines {
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, Error{fmt.Sprintf("bad frequency %q: %s", line, err.Error()), name, []string{"parseFreqs"}, true}
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}

func parseModes(secs map[string][]string, natoms int, name string) ([]*mat.Dense, error) {
	lines, ok := secs["[FR-NORM-COORD]"]
	if !ok {
		return nil, Error{"no [FR-NORM-COORD] section", name, []string{"parseModes"}, true}
	}
	var modes []*mat.Dense
	var current []float64
	flush := func() error {
		if current == nil {
			return nil
		}
		if len(current) != 3*natoms {
			return Error{fmt.Sprintf("mode %d has %d displacement values, want %d (3 per atom)", len(modes)+1, len(current), 3*natoms), name, []string{"parseModes"}, true}
		}
		modes = append(modes, mat.NewDense(natoms, 3, current))
		current = nil
		return nil
	}
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "vibration") {
			if err := flush(); err != nil {
				return nil, err
			}
			current = make([]float64, 0, 3*natoms)
			continue
		}
		if current == nil {
			return nil, Error{fmt.Sprintf("displacement row %q before the first vibration header", line), name, []string{"parseModes"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, Error{fmt.Sprintf("ill-formed displacement row %q", line), name, []string{"parseModes"}, true}
		}
		for _, v := range fields[:3] {
			d, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("bad displacement in row %q: %s", line, err.Error()), name, []string{"parseModes"}, true}
			}
			current = append(current, d)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(modes) == 0 {
		return nil, Error{"[FR-NORM-COORD] section holds no vibrations", name, []string{"parseModes"}, true}
	}
	return modes, nil
}
