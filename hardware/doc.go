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

// Package hardware is the base package for the DMG emulation. It and its
// sub-packages contain everything required for the memory side of the
// emulation.
//
// The DMG type collects the memory, timer, input and serial port together.
// There is no CPU and no display. An external CPU emulation executes an
// instruction through the memory's CPUBus and then calls DMG.Step() with the
// number of cycles the instruction took. An external display emulation reads
// memory through the DisplayBus.
package hardware
