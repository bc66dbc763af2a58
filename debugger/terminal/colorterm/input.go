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

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/terminal"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/colorterm/easyterm"
	"github.com/gopherdmg/gopherdmg/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	p := prompt.String()

	// line editing works on runes. the input buffer is filled at the end
	line := make([]rune, 0, len(input))
	cursor := 0

	history := len(ct.commandHistory)

	// the most recent input when we scroll through history. we don't want to
	// lose what has been typed in case the user returns to it
	var buffLine []rune

	redraw := func() {
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(p)
		start, end := visible(len(line), cursor, int(ct.Geometry().Cols)-utf8.RuneCountInString(p)-1)
		ct.TermPrint(string(line[start:end]))
		ct.TermPrint(ansi.CursorMove(cursor - end))
	}

	for {
		redraw()

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return 0, err
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(line[:cursor]))
				line = append([]rune(s), line[cursor:]...)
				cursor = len([]rune(s))
			}

		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(line) == 0 {
				ct.TermPrint("\r\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.TermPrint("\r\n")

			if len(line) > 0 {
				b := []byte(string(line))
				n := len(ct.commandHistory)
				if n == 0 || string(ct.commandHistory[n-1]) != string(b) {
					ct.commandHistory = append(ct.commandHistory, b)
				}
			}

			n := copy(input, string(line))
			return n, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return 0, err
			}
			if r != easyterm.EscCursor {
				break
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return 0, err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						buffLine = append(buffLine[:0], line...)
					}
					history--
					line = []rune(string(ct.commandHistory[history]))
					cursor = len(line)
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					line = []rune(string(ct.commandHistory[history]))
					cursor = len(line)
				} else if history == len(ct.commandHistory)-1 {
					history++
					line = append(line[:0], buffLine...)
					cursor = len(line)
				}

			case easyterm.CursorForward:
				if cursor < len(line) {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}

			case easyterm.CursorHome:
				cursor = 0

			case easyterm.CursorEnd:
				cursor = len(line)

			case easyterm.EscDelete:
				r, _, err = ct.reader.ReadRune()
				if err != nil {
					return 0, err
				}
				if r == easyterm.EscTilde && cursor < len(line) {
					line = append(line[:cursor], line[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyCtrlH:
			if cursor > 0 {
				line = append(line[:cursor-1], line[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) && len(string(line))+utf8.RuneLen(r) < cap(input) {
				line = append(line, 0)
				copy(line[cursor+1:], line[cursor:])
				line[cursor] = r
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}

// visible returns the part of a line of length n that fits in the width and
// contains the cursor. A width of zero or less means the width is unknown
// and the whole line is visible
func visible(n int, cursor int, width int) (int, int) {
	if width <= 0 || n <= width {
		return 0, n
	}
	start := 0
	if cursor > width {
		start = cursor - width
	}
	return start, start + width
}
