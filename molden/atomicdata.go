/*
 * atomicdata.go, part of molden2abins.
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

import "fmt"

//Unit conversions. Molden atomic-unit geometries are in Bohr,
//the Abins schema wants Angstrom.
const (
	A2Bohr = 1.889725989
	Bohr2A = 1 / 1.889725989
)

//Element symbols indexed by atomic number. Index 0 is a placeholder,
//as proton numbers start from 1.
var atomicSymbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
	"Es", "Fm", "Md", "No", "Lr",
}

//Standard atomic weights indexed by atomic number. For the elements
//without a stable isotope the mass of the longest-lived one is used.
var atomicMasses = [...]float64{0,
	1.008, 4.002602,
	6.94, 9.0121831, 10.81, 12.011, 14.007, 15.999, 18.998403163, 20.1797,
	22.98976928, 24.305, 26.9815385, 28.085, 30.973761998, 32.06, 35.45, 39.948,
	39.0983, 40.078, 44.955908, 47.867, 50.9415, 51.9961, 54.938044, 55.845,
	58.933194, 58.6934, 63.546, 65.38,
	69.723, 72.63, 74.921595, 78.971, 79.904, 83.798,
	85.4678, 87.62, 88.90584, 91.224, 92.90637, 95.95, 97.90721, 101.07,
	102.9055, 106.42, 107.8682, 112.414,
	114.818, 118.71, 121.76, 127.6, 126.90447, 131.293,
	132.90545196, 137.327, 138.90547, 140.116, 140.90766, 144.242, 144.91276,
	150.36, 151.964, 157.25, 158.92535, 162.5,
	164.93033, 167.259, 168.93422, 173.054, 174.9668, 178.49, 180.94788, 183.84,
	186.207, 190.23, 192.217, 195.084,
	196.966569, 200.592, 204.38, 207.2, 208.9804, 208.98243, 209.98715, 222.01758,
	223.01974, 226.02541, 227.02775, 232.0377, 231.03588, 238.02891, 237.04817,
	244.06421, 243.06138, 247.07035, 247.07031, 251.07959,
	252.083, 257.09511, 258.09843, 259.101, 262.11,
}

var symbol2number = make(map[string]int, len(atomicSymbols))

func init() {
	for z := 1; z < len(atomicSymbols); z++ {
		symbol2number[atomicSymbols[z]] = z
	}
}

//MassOf returns the standard atomic weight for the element with the
//given atomic number, or an error if the number is out of range.
func MassOf(number int) (float64, error) {
	if number < 1 || number >= len(atomicMasses) {
		return 0, Error{fmt.Sprintf("no atomic mass for atomic number %d", number), "", []string{"MassOf"}, true}
	}
	return atomicMasses[number], nil
}

//AtomicNumber returns the atomic number for an element symbol, or an
//error if the symbol is not recognized.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbol2number[symbol]
	if !ok {
		return 0, Error{fmt.Sprintf("unknown element symbol %q", symbol), "", []string{"AtomicNumber"}, true}
	}
	return z, nil
}
