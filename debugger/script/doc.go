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

// Package script runs Lua scripts against the emulated hardware. Scripts are
// run with github.com/yuin/gopher-lua and have access to the following
// functions, in addition to the standard Lua libraries:
//
//	peek(address)		read memory without side effects
//	poke(address, value)	write memory without side effects
//	read(address)		read memory as the CPU would
//	write(address, value)	write memory as the CPU would
//	readword(address)	read a little-endian 16bit value as the CPU would
//	tick(cycles)		advance the hardware by the number of cycles
//	cycles()		the number of cycles advanced so far
//	press(key)		press a key. eg. press("start")
//	release(key)		release a key
//	print(...)		write values to the script output
//
// Addresses can be numbers or the names of hardware registers. For example,
// peek("LCDC") and peek(0xff40) are equivalent.
package script
