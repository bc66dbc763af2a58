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

// Package curated is a helper package for errors that we expect to happen
// and which we want to present to the user in a tidy way.
//
// Curated errors are created with Errorf(). The pattern argument is kept
// alongside the values and is used to identify the error later on:
//
//	const UnsupportedMapper = "cartridge: unsupported mapper (%#02x)"
//
//	err := curated.Errorf(UnsupportedMapper, 0xfc)
//	if curated.Is(err, UnsupportedMapper) {
//		fmt.Println("true")
//	}
//
// Has() is similar to Is() but searches the whole chain of wrapped curated
// errors:
//
//	f := curated.Errorf("memory: %v", err)
//	curated.Has(f, UnsupportedMapper) // true
//	curated.Is(f, UnsupportedMapper)  // false
//
// IsAny() answers whether an error was created by this package at all. A
// curated error is an expected error. Anything else reaching the top level of
// the program is unexpected and should be treated with suspicion.
//
// Error() normalises the message so that adjacent duplicate parts are
// removed. Parts are separated by the sub-string ": ". So that wrapping an
// error in the same context twice:
//
//	curated.Errorf("cartridge: %v", curated.Errorf("cartridge: rom too short"))
//
// produces the message "cartridge: rom too short".
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library see through them to any wrapped error value.
package curated
