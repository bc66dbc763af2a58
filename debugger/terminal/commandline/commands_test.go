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

package commandline_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/debugger/terminal/commandline"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestParser(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"tick [%N]",
		"peek %<address>S {%<address>S}",
		"timer [(on|off)]",
		"poke %S %N",
		"regs",
	})
	test.DemandSuccess(t, err)

	// commands are sorted and normalised
	test.ExpectEquality(t, cmds.String(), "PEEK %<address>S {%<address>S}\nPOKE %S %N\nREGS\nTICK [%N]\nTIMER [(ON|OFF)]")
	test.ExpectEquality(t, cmds.Len(), 5)
}

func TestParserErrors(t *testing.T) {
	var err error

	_, err = commandline.ParseCommandTemplate([]string{"TEST [%N"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"TEST %N]"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"TEST [%N] %S"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"TEST {%N} %S"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"TEST %X"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"TEST (A|B"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"TEST", "test"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{"%N"})
	test.ExpectFailure(t, err)

	_, err = commandline.ParseCommandTemplate([]string{""})
	test.ExpectFailure(t, err)

	// multiple optional arguments in one group are fine
	_, err = commandline.ParseCommandTemplate([]string{"TEST %S [%N %N]"})
	test.ExpectSuccess(t, err)
}

func TestValidation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"TICK [%N]",
		"PEEK %<address>S {%<address>S}",
		"TIMER [(ON|OFF)]",
		"POKE %S %N",
		"REGS",
	})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmds.Validate(""))
	test.ExpectSuccess(t, cmds.Validate("regs"))
	test.ExpectFailure(t, cmds.Validate("regs 10"))
	test.ExpectFailure(t, cmds.Validate("foo"))

	test.ExpectSuccess(t, cmds.Validate("tick"))
	test.ExpectSuccess(t, cmds.Validate("tick 100"))
	test.ExpectSuccess(t, cmds.Validate("tick $ff"))
	test.ExpectFailure(t, cmds.Validate("tick many"))
	test.ExpectFailure(t, cmds.Validate("tick 1 2"))

	test.ExpectFailure(t, cmds.Validate("peek"))
	test.ExpectSuccess(t, cmds.Validate("peek lcdc"))
	test.ExpectSuccess(t, cmds.Validate("peek lcdc stat 0xff00"))

	test.ExpectSuccess(t, cmds.Validate("timer"))
	test.ExpectSuccess(t, cmds.Validate("timer on"))
	test.ExpectFailure(t, cmds.Validate("timer maybe"))

	test.ExpectFailure(t, cmds.Validate("poke lcdc"))
	test.ExpectFailure(t, cmds.Validate("poke lcdc x"))
	test.ExpectSuccess(t, cmds.Validate("poke lcdc 0x91"))
}

func TestNormalisation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"TIMER [(ON|OFF)]",
		"PEEK %S",
	})
	test.DemandSuccess(t, err)

	toks := commandline.TokeniseInput("  timer   off ")
	test.DemandSuccess(t, cmds.ValidateTokens(toks))
	test.ExpectEquality(t, toks.String(), "TIMER OFF")

	// the token list has been reset
	tok, ok := toks.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tok, "TIMER")

	// string arguments are not normalised except for hex notation
	toks = commandline.TokeniseInput("peek $ff40")
	test.DemandSuccess(t, cmds.ValidateTokens(toks))
	test.ExpectEquality(t, toks.String(), "PEEK 0xff40")

	toks = commandline.TokeniseInput("peek lcdc")
	test.DemandSuccess(t, cmds.ValidateTokens(toks))
	test.ExpectEquality(t, toks.String(), "PEEK lcdc")
}

func TestHelp(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate([]string{
		"PEEK %<address>S",
		"REGS",
	})
	test.DemandSuccess(t, err)

	err = cmds.AddHelp("HELP", map[string]string{
		"PEEK": "Read memory without side effects",
	})
	test.DemandSuccess(t, err)

	// help can't be added twice
	test.ExpectFailure(t, cmds.AddHelp("HELP", nil))

	test.ExpectSuccess(t, cmds.Validate("help"))
	test.ExpectSuccess(t, cmds.Validate("help peek"))
	test.ExpectSuccess(t, cmds.Validate("help help"))
	test.ExpectFailure(t, cmds.Validate("help foo"))

	test.ExpectEquality(t, cmds.Help("peek"), "Read memory without side effects\n\n  Usage: PEEK <address>")
	test.ExpectEquality(t, cmds.Help("regs"), "no help for REGS")
	test.ExpectEquality(t, cmds.HelpOverview(), "   PEEK   REGS   HELP")
}
