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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/dbgmem"
	"github.com/gopherdmg/gopherdmg/debugger/script"
	"github.com/gopherdmg/gopherdmg/debugger/terminal"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/commandline"
	"github.com/gopherdmg/gopherdmg/hardware/input"
	"github.com/gopherdmg/gopherdmg/hardware/memory"
	"github.com/gopherdmg/gopherdmg/hardware/memory/addresses"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/hardware/memory/cartridge"
	"github.com/gopherdmg/gopherdmg/logger"
)

// parse a numeric token that must fit in the number of bits
func parseValue(tok string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(tok, 0, bits)
	if err != nil {
		return 0, curated.Errorf("value out of range (%s)", tok)
	}
	return v, nil
}

func (dbg *Debugger) addressInfo(tok string) (*dbgmem.AddressInfo, error) {
	ai := dbg.dbgmem.GetAddressInfo(tok)
	if ai == nil {
		return nil, curated.Errorf("unrecognised address (%s)", tok)
	}
	return ai, nil
}

// processTokens assumes the tokens have been validated.
func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, _ := tokens.Get()

	switch command {
	case cmdQuit:
		dbg.running = false

	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, dbg.cmds.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, dbg.cmds.HelpOverview())
		}

	case cmdPeek:
		for tok, ok := tokens.Get(); ok; tok, ok = tokens.Get() {
			ai, err := dbg.dbgmem.Peek(tok)
			if err != nil {
				return err
			}
			dbg.printLine(terminal.StyleInstrument, ai.String())
		}

	case cmdPoke:
		tok, _ := tokens.Get()
		v, _ := tokens.Get()
		data, err := parseValue(v, 8)
		if err != nil {
			return err
		}
		ai, err := dbg.dbgmem.Poke(tok, uint8(data))
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, ai.String())

	case cmdRead:
		tok, _ := tokens.Get()
		ai, err := dbg.addressInfo(tok)
		if err != nil {
			return err
		}
		ai.Data = dbg.dmg.Mem.Read(ai.Address)
		ai.Peeked = true
		dbg.printLine(terminal.StyleInstrument, ai.String())

	case cmdWrite:
		tok, _ := tokens.Get()
		v, _ := tokens.Get()
		ai, err := dbg.addressInfo(tok)
		if err != nil {
			return err
		}
		data, err := parseValue(v, 8)
		if err != nil {
			return err
		}
		dbg.dmg.Mem.Write(ai.Address, uint8(data))
		ai.Data = uint8(data)
		ai.Peeked = true
		dbg.printLine(terminal.StyleInstrument, ai.String())

	case cmdWord:
		tok, _ := tokens.Get()
		ai, err := dbg.addressInfo(tok)
		if err != nil {
			return err
		}
		if v, ok := tokens.Get(); ok {
			data, err := parseValue(v, 16)
			if err != nil {
				return err
			}
			dbg.dmg.Mem.WriteWord(ai.Address, uint16(data))
		}
		dbg.printLine(terminal.StyleInstrument, "%#04x -> %#04x", ai.Address, dbg.dmg.Mem.ReadWord(ai.Address))

	case cmdDMA:
		v, _ := tokens.Get()
		page, err := parseValue(v, 8)
		if err != nil {
			return err
		}
		dbg.dmg.Mem.Write(addresses.DMA, uint8(page))
		dbg.printLine(terminal.StyleFeedback, "copied %#04x to OAM", page<<8)

	case cmdTick:
		cycles := dbg.prefs.TickCycles.Get().(int)
		if v, ok := tokens.Get(); ok {
			n, err := parseValue(v, 31)
			if err != nil {
				return err
			}
			cycles = int(n)
		}
		if err := dbg.dmg.Step(cycles); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.Timer.String())

	case cmdTimer:
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.Timer.String())

	case cmdRegs:
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.Mem.String())

	case cmdKey:
		if k, ok := tokens.Get(); ok {
			key, err := input.ParseKey(k)
			if err != nil {
				return err
			}
			action, _ := tokens.Get()
			if action == "RELEASE" {
				dbg.dmg.Input.Release(key)
			} else {
				dbg.dmg.Input.Press(key)
			}
		}
		dbg.printLine(terminal.StyleInstrument, dbg.dmg.Input.String())

	case cmdMode:
		if v, ok := tokens.Get(); ok {
			mode, err := parseValue(v, 2)
			if err != nil {
				return err
			}
			dbg.dmg.Mem.SetDisplayMode(uint8(mode))
		}
		dbg.printLine(terminal.StyleInstrument, "mode %d", dbg.dmg.Mem.ChipRead(addresses.STAT)&0x03)

	case cmdOAM:
		if v, ok := tokens.Get(); ok {
			idx, err := parseValue(v, 8)
			if err != nil {
				return err
			}
			if idx >= memory.NumOAMEntries {
				return curated.Errorf("sprite index out of range (%d)", idx)
			}
			dbg.printLine(terminal.StyleInstrument, dbg.sprite(uint8(idx)))
		} else {
			s := strings.Builder{}
			for i := 0; i < memory.NumOAMEntries; i++ {
				s.WriteString(dbg.sprite(uint8(i)))
				s.WriteString("\n")
			}
			dbg.printLine(terminal.StyleInstrument, s.String())
		}

	case cmdTile:
		tok, _ := tokens.Get()
		ai, err := dbg.addressInfo(tok)
		if err != nil {
			return err
		}
		var tile [8]uint16
		switch mode, _ := tokens.Get(); mode {
		case "UNSIGNED":
			tile = dbg.dmg.Mem.ReadBGTile(ai.Address, bus.TileAddressingUnsigned)
		case "SIGNED":
			tile = dbg.dmg.Mem.ReadBGTile(ai.Address, bus.TileAddressingSigned)
		default:
			tile = dbg.dmg.Mem.ReadTile(ai.Address)
		}
		dbg.printLine(terminal.StyleInstrument, tileString(tile))

	case cmdCart:
		option, _ := tokens.Get()
		cart := dbg.dmg.Mem.Cartridge()
		switch option {
		case "HEADER":
			dbg.printLine(terminal.StyleInstrument, dbg.dmg.Header.String())
		case "BANKS":
			dbg.printLine(terminal.StyleInstrument, mappedBanks(cart))
		default:
			dbg.printLine(terminal.StyleInstrument, "%s [%s]", cart.ID(), mappedBanks(cart))
			dbg.printLine(terminal.StyleFeedback, dbg.dmg.Header.String())
		}

	case cmdLog:
		option, _ := tokens.Get()
		switch option {
		case "RECENT":
			logger.WriteRecent(dbg.printStyle(terminal.StyleLog))
		case "CLEAR":
			logger.Clear()
		default:
			logger.Write(dbg.printStyle(terminal.StyleLog))
		}

	case cmdMemviz:
		filename, _ := tokens.Get()
		filename, err := dbg.memviz(filename)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "hardware state written to %s", filename)

	case cmdScript:
		filename, _ := tokens.Get()
		return dbg.runScript(filename)

	default:
		return curated.Errorf("%s is not yet implemented", command)
	}

	return nil
}

func (dbg *Debugger) sprite(idx uint8) string {
	e := dbg.dmg.Mem.OAMSearch(idx)
	return fmt.Sprintf("%02d: y=%d x=%d tile=%#02x flags=%#02x", idx, e[0], e[1], e[2], e[3])
}

// tileString draws the tile with one character per pixel. pixel 7 is the
// leftmost pixel
func tileString(tile [8]uint16) string {
	s := strings.Builder{}
	for _, row := range tile {
		for j := 7; j >= 0; j-- {
			s.WriteByte(".123"[(row>>(j*2))&0x03])
		}
		s.WriteString("\n")
	}
	return s.String()
}

func mappedBanks(cart cartridge.Mapper) string {
	if b, ok := cart.(cartridge.BankInfo); ok {
		return b.MappedBanks()
	}
	return "no bank information"
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.script == nil {
		dbg.script = script.NewScript(dbg.dmg, dbg.printStyle(terminal.StyleFeedback))
	}
	return dbg.script.RunFile(filename)
}
