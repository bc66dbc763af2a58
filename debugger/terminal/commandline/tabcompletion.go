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
	"path/filepath"
	"sort"
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	options    []string
	lastOption int

	// the string most recently returned by Complete(). used to decide whether
	// to start a new completion session
	lastGuess string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{
		cmds:    cmds,
		options: make([]string, 0, len(cmds.cmds)),
	}
}

// Reset the tab completion session.
func (tc *TabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.lastOption = 0
	tc.lastGuess = ""
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the command template.
// Repeated calls with the returned string cycle through the possible
// completions.
func (tc *TabCompletion) Complete(input string) string {
	p := tokeniseInput(input)
	if len(p) == 0 {
		return input
	}

	if input == tc.lastGuess && len(tc.options) > 0 {
		// there's nothing to cycle through if there's only one option
		if len(tc.options) == 1 {
			return input
		}

		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		// trailing space means the last word is complete
		if strings.HasSuffix(input, " ") {
			return input
		}

		tc.options = tc.options[:0]
		tc.lastOption = 0

		trigger := p[len(p)-1]

		if len(p) == 1 {
			tc.addKeywords(tc.cmds.Keywords(), trigger)
		} else if c, ok := tc.cmds.index[strings.ToUpper(p[0])]; ok && len(c.args) > 0 {
			idx := len(p) - 2
			if idx >= len(c.args) {
				if !c.args[len(c.args)-1].repeat {
					return input
				}
				idx = len(c.args) - 1
			}

			switch c.args[idx].typ {
			case argKeyword:
				tc.addKeywords(c.args[idx].keywords, trigger)
			case argFile:
				m, _ := filepath.Glob(trigger + "*")
				tc.options = append(tc.options, m...)
			}
		}

		if len(tc.options) == 0 {
			return input
		}
		sort.Strings(tc.options)
	}

	p[len(p)-1] = tc.options[tc.lastOption]
	tc.lastGuess = strings.Join(p, " ") + " "
	return tc.lastGuess
}

func (tc *TabCompletion) addKeywords(keywords []string, trigger string) {
	trigger = strings.ToUpper(trigger)
	for _, k := range keywords {
		if strings.HasPrefix(k, trigger) {
			tc.options = append(tc.options, k)
		}
	}
}
