// This file is part of Hdlview.
//
// Hdlview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hdlview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hdlview.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// string and placeholder values in the same way as fmt.Errorf(), but the
// pattern is retained so that it can be tested for later with Is() and Has():
//
//	e := curated.Errorf("sdlscreen: %v", err)
//
//	if curated.Is(e, "sdlscreen: %v") {
//		fmt.Println("true")
//	}
//
// Has() looks for a pattern anywhere in the error chain, where a chain is
// formed by passing a curated error as a value to another Errorf() call.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. This means that a function does not need to know
// whether the error it received has already been tagged with the same
// prefix. For example:
//
//	simulation: simulation: present failed
//
// is reported as:
//
//	simulation: present failed
//
// Parts of a chain are separated by the sub-string ": ".
package curated
