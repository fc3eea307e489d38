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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes and allows
// different flags for each mode.
//
// The arguments are first given with NewArgs() and then processed with
// Parse(). Parse() only processes the flags added since the most recent call
// to NewMode(). If sub-modes have been added with AddSubModes() then the first
// non-flag argument is checked against the list. If it matches, the mode is
// selected and the argument is consumed. If it doesn't match, the first
// sub-mode in the list is selected.
//
// For example, the hdlview command line has two modes, RUN and PERFORMANCE:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 1, "window scaling")
//		p, err = md.Parse()
//		...
//	}
//
// All sub-mode comparisons are case insensitive. The -help flag is handled
// automatically for every mode. The help message lists the flags and the
// sub-modes of the mode.
package modalflag
