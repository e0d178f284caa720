/*
 * errors.go, part of molden2abins.
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

//Error is the general structure for Molden reading errors.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("molden error: %s", err.message)
	}
	return fmt.Sprintf("molden file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error and returns the
//accumulated decoration trail.
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error (always "molden").
func (err Error) Format() string { return "molden" }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that err is a molden.Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
