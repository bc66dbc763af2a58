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

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect functions report failures with t.Errorf() and allow the test to
// continue. The Demand functions report failures with t.Fatalf() and should
// be used when subsequent tests depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret values according to their
// type. A bool is successful if it is true. An error is successful if it is
// nil. An untyped nil is always considered a success, because that is how
// functions returning only an error indicate that nothing went wrong.
//
// RingWriter and CompareWriter are implementations of io.Writer that are
// useful for capturing output.
package test
