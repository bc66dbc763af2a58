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

// Package serial implements enough of the serial port for the output of test
// ROMs to be seen. A transfer is started by the CPU writing 0x81 to SC. The
// byte in SB is then sent immediately to the output writer and SC is cleared.
//
// There is no link partner. The serial interrupt is not requested and the
// value in SB is not replaced by incoming data.
package serial
