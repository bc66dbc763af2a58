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

// Package debugger implements the monitor for the emulated DMG hardware. The
// monitor is a command line interface that can inspect and modify memory,
// advance the timer and serial port, press keys and run Lua scripts.
//
// There is no CPU in this emulation. The monitor takes the place of the CPU,
// driving the address bus with READ and WRITE commands and advancing the
// hardware with the TICK command.
//
// The Debugger type is created with NewDebugger() and started with Start().
// Start() will return when the QUIT command is entered or when the terminal
// reaches the end of its input.
//
// Interaction with the user happens through the terminal.Terminal interface.
// Implementations are found in the plainterm and colorterm packages.
package debugger
