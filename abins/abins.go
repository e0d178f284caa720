/*
 * abins.go, part of molden2abins.
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

//Package abins serializes vibrational data to the JSON document read by
//the Abins and Abins2D algorithms in Mantid 6.10 and later. The schema
//is fixed by the consumer; this package only reshapes and writes.
package abins

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ajjackson/molden-to-abins/molden"
)

const (
	className     = "AbinsData"
	mantidVersion = "6.10"
)

//AtomData is a ready-to-serialize container for one atom. Coordinates
//are in Angstrom; Sort is the zero-based position of the atom in the
//input file.
type AtomData struct {
	Coord  []float64 `json:"coord"`
	Mass   float64   `json:"mass"`
	Sort   int       `json:"sort"`
	Symbol string    `json:"symbol"`
}

//KPoints holds the per-k-point arrays. A Molden file carries a single
//(Gamma) k-point and no unit cell, so KVectors, Weights and UnitCell
//are fixed. AtomicDisplacements indices are (kpt, atom, mode, axis);
//the axis dimension alternates real and imaginary components, and the
//imaginary ones are always zero here. This ordering is what Abins
//wants for iterating over incoherent atom contributions, not the
//(mode, atom, axis) ordering eigenvectors usually come in.
type KPoints struct {
	AtomicDisplacements [][][][]float64 `json:"atomic_displacements"`
	Frequencies         [][]float64     `json:"frequencies"`
	KVectors            [][]float64     `json:"k_vectors"`
	UnitCell            [][]float64     `json:"unit_cell"`
	Weights             []float64       `json:"weights"`
}

//Data is the full document. Atoms is keyed "atom_0", "atom_1", ...
type Data struct {
	KPoints       KPoints             `json:"k_points_data"`
	Atoms         map[string]AtomData `json:"atoms_data"`
	Class         string              `json:"__abins_class__"`
	MantidVersion string              `json:"__mantid_version__"`
}

//NAtoms returns the number of atoms in the document.
func (D *Data) NAtoms() int {
	return len(D.Atoms)
}

//NModes returns the number of vibrational modes in the document.
func (D *Data) NModes() int {
	if len(D.KPoints.Frequencies) == 0 {
		return 0
	}
	return len(D.KPoints.Frequencies[0])
}

//FromVibrations reshapes parsed Molden data into an Abins document.
//Frequencies and displacements are copied untouched.
func FromVibrations(v *molden.Vibrations) (*Data, error) {
	if v == nil || v.Len() == 0 {
		return nil, fmt.Errorf("abins: no atoms to convert")
	}
	natoms := v.Len()
	nmodes := v.NModes()
	if nmodes == 0 {
		return nil, fmt.Errorf("abins: no vibrational modes to convert")
	}
	if nmodes != len(v.Freqs) {
		return nil, fmt.Errorf("abins: %d modes but %d frequencies", nmodes, len(v.Freqs))
	}

	atoms := make(map[string]AtomData, natoms)
	for i, at := range v.Atoms {
		atoms[fmt.Sprintf("atom_%d", i)] = AtomData{
			Coord:  []float64{v.Coords.At(i, 0), v.Coords.At(i, 1), v.Coords.At(i, 2)},
			Mass:   at.Mass,
			Sort:   i,
			Symbol: at.Symbol,
		}
	}

	//Swap the (mode, atom) indices and interleave zeros for the
	//imaginary components.
	displacements := make([][][]float64, natoms)
	for i := 0; i < natoms; i++ {
		rows := make([][]float64, nmodes)
		for m, mode := range v.Modes {
			rows[m] = []float64{mode.At(i, 0), 0, mode.At(i, 1), 0, mode.At(i, 2), 0}
		}
		displacements[i] = rows
	}

	freqs := append([]float64(nil), v.Freqs...)
	return &Data{
		KPoints: KPoints{
			AtomicDisplacements: [][][][]float64{displacements},
			Frequencies:         [][]float64{freqs},
			KVectors:            [][]float64{{0, 0, 0}},
			UnitCell:            [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			Weights:             []float64{1},
		},
		Atoms:         atoms,
		Class:         className,
		MantidVersion: mantidVersion,
	}, nil
}

//Encode writes the document to out as indented JSON. The output is
//byte-deterministic: map keys are emitted sorted and struct fields in
//declaration order.
func (D *Data) Encode(out io.Writer) error {
	b, err := json.MarshalIndent(D, "", "    ")
	if err != nil {
		return fmt.Errorf("abins: encode: %w", err)
	}
	b = append(b, '\n')
	if _, err := out.Write(b); err != nil {
		return fmt.Errorf("abins: write: %w", err)
	}
	return nil
}

//WriteFile writes the document to the named file, which is created or
//truncated.
func (D *Data) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("abins: %w", err)
	}
	if err := D.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
