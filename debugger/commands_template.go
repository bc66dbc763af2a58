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

package debugger

// monitor keywords
const (
	cmdQuit = "QUIT"
	cmdHelp = "HELP"

	cmdPeek  = "PEEK"
	cmdPoke  = "POKE"
	cmdRead  = "READ"
	cmdWrite = "WRITE"
	cmdWord  = "WORD"
	cmdDMA   = "DMA"

	cmdTick  = "TICK"
	cmdTimer = "TIMER"
	cmdRegs  = "REGS"
	cmdKey   = "KEY"
	cmdMode  = "MODE"
	cmdOAM   = "OAM"
	cmdTile  = "TILE"
	cmdCart  = "CART"

	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdScript = "SCRIPT"
)

var commandTemplate = []string{
	cmdQuit,

	cmdPeek + " %<address>S {%<address>S}",
	cmdPoke + " %<address>S %<value>N",
	cmdRead + " %<address>S",
	cmdWrite + " %<address>S %<value>N",
	cmdWord + " %<address>S [%<value>N]",
	cmdDMA + " %<page>N",

	cmdTick + " [%<cycles>N]",
	cmdTimer,
	cmdRegs,
	cmdKey + " [(RIGHT|LEFT|UP|DOWN|A|B|SELECT|START) (PRESS|RELEASE)]",
	cmdMode + " [%<mode>N]",
	cmdOAM + " [%<index>N]",
	cmdTile + " %<address>S [(UNSIGNED|SIGNED)]",
	cmdCart + " [(HEADER|BANKS)]",

	cmdLog + " [(RECENT|CLEAR)]",
	cmdMemviz + " [%<file>F]",
	cmdScript + " %<file>F",
}

var help = map[string]string{
	cmdQuit: "Leave the monitor",
	cmdHelp: "Lists commands and provides help for individual commands",

	cmdPeek:  "Inspect memory addresses without side effects. Addresses can be numeric or the name of a register",
	cmdPoke:  "Modify a memory address without side effects. The cartridge ROM cannot be poked",
	cmdRead:  "Read a memory address as the CPU would. Reads may be blocked by the display mode",
	cmdWrite: "Write to a memory address as the CPU would. Writes to registers have their usual side effects",
	cmdWord:  "Read or write a little-endian 16bit value as the CPU would",
	cmdDMA:   "Start a DMA transfer from the page to OAM. The same as writing the page to the DMA register",

	cmdTick:  "Advance the timer, serial port and input by the number of cycles",
	cmdTimer: "Display the current state of the timer",
	cmdRegs:  "Display the hardware registers",
	cmdKey:   "Press or release a key. Without arguments the currently pressed keys are listed",
	cmdMode:  "Set the display mode in the STAT register. Without arguments the current mode is displayed",
	cmdOAM:   "Display the attributes of a sprite. Without arguments all 40 sprites are displayed",
	cmdTile:  "Display a tile. With an addressing mode the address is an entry in a tile map",
	cmdCart:  "Display information about the cartridge",

	cmdLog:    "Display the log. RECENT shows entries added since the last LOG RECENT",
	cmdMemviz: "Write a graph of the hardware state to a file in the DOT format",
	cmdScript: "Run a Lua script",
}
