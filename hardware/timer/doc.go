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

// Package timer implements the programmable timer of the DMG. The timer is
// driven by the 16bit divider, which is owned by the memory. TIMA is
// incremented whenever the divider bit selected by TAC changes from one to
// zero. When TIMA overflows it is reloaded from TMA and the timer interrupt
// is requested.
//
// The timer has no memory of its own. All state is read from and written to
// the memory through the bus.TimerBus interface on every call to Tick(), so
// changes made by the CPU are seen immediately.
package timer
