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

package commandline

import (
	"strconv"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

// Validate input string against command definitions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens is like Validate() but works on tokens rather than an input
// string. Keyword tokens are normalised to upper case. The token list is
// reset to the beginning on return.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()

	tok, ok := tokens.Get()
	if !ok {
		return nil
	}
	tok = strings.ToUpper(tok)

	c, ok := cmds.index[tok]
	if !ok {
		return curated.Errorf("unrecognised command (%s)", tok)
	}
	tokens.Update(tok)

	for _, a := range c.args {
		if a.repeat {
			for tokens.Remaining() > 0 {
				if err := a.validate(tokens); err != nil {
					return err
				}
			}
			break
		}

		if tokens.IsEnd() {
			if a.optional {
				break
			}
			return curated.Errorf("%s required", a.verbose())
		}

		if err := a.validate(tokens); err != nil {
			return err
		}
	}

	// outstanding tokens in the queue means there are too many arguments
	if tokens.Remaining() > 0 {
		arg, _ := tokens.Get()
		if tok == cmds.helpCommand {
			return curated.Errorf("no help for %s", strings.ToUpper(arg))
		}
		return curated.Errorf("unrecognised argument (%s) for %s", arg, tok)
	}

	return nil
}

func (a arg) validate(tokens *Tokens) error {
	tok, _ := tokens.Get()

	switch a.typ {
	case argNumeric:
		if _, err := strconv.ParseInt(tok, 0, 32); err != nil {
			return curated.Errorf("%s is not a number", tok)
		}

	case argKeyword:
		t := strings.ToUpper(tok)
		for _, k := range a.keywords {
			if t == k {
				tokens.Update(t)
				return nil
			}
		}
		return curated.Errorf("unrecognised argument (%s)", tok)
	}

	return nil
}
