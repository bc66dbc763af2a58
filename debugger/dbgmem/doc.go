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

// Package dbgmem sits between the monitor and the emulated memory. In the
// context of the monitor it is more useful to address memory via this package
// rather than using the memory package directly.
//
// The key type provided by the package is the AddressInfo type. This type
// provides every detail about a memory address that you could want.
//
// Addresses can be given numerically or by the name of a hardware register.
// The Peek() and Poke() functions complement the Peek() and Poke() functions
// in the memory package, with the addition of symbolic addressing.
//
// Peek() and Poke() will return the sentinal errors PeekError and PokeError
// if the address cannot be resolved.
package dbgmem
