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

func TestTokens(t *testing.T) {
	toks := commandline.TokeniseInput("  poke $c000   10 ")
	test.ExpectEquality(t, toks.Len(), 3)
	test.ExpectEquality(t, toks.Remaining(), 3)

	tok, ok := toks.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tok, "poke")

	tok, _ = toks.Get()
	test.ExpectEquality(t, tok, "poke")
	tok, _ = toks.Get()
	test.ExpectEquality(t, tok, "0xc000")
	test.ExpectEquality(t, toks.Remainder(), "10")

	toks.Unget()
	test.ExpectEquality(t, toks.Remainder(), "0xc000 10")

	toks.End()
	test.ExpectSuccess(t, toks.IsEnd())
	_, ok = toks.Get()
	test.ExpectFailure(t, ok)

	toks.Reset()
	test.ExpectEquality(t, toks.Remaining(), 3)
}
