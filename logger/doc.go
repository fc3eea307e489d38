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

// Package logger is the central log for the application. Entries are tagged,
// normally with the name of the component making the entry, and repeated
// entries are collapsed into a single entry with a repeat count.
//
// Logging requests are accompanied by a Permission. The Allow value can be
// used when the entry should always be made.
//
//	logger.Log(logger.Allow, "simulation", "reset complete")
//	logger.Logf(logger.Allow, "sdlscreen", "window scale %d", scale)
//
// By default the log is not echoed anywhere. SetEcho() can be used to write
// new entries to an io.Writer as they are made.
package logger
