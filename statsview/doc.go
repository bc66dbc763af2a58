// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview runs a web server that shows live runtime statistics of
// the emulator: memory allocation, goroutines, GC pauses and so on.
//
// The server is only included when the program is built with the statsview
// build tag:
//
//	go build -tags statsview
//
// Without the tag Available() returns false and Launch() writes a short
// message to the output.
package statsview
