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

// Package bus defines the interfaces through which the different parts of the
// emulation see the memory subsystem. Each bus exposes only what the
// collaborator needs. The CPU sees the CPUBus, the display sees the
// DisplayBus, the timer sees the TimerBus and so on. The memory package
// documentation has a diagram of how the buses fit together.
package bus
