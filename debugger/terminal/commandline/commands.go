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
	"fmt"
	"sort"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

type argType int

const (
	argKeyword argType = iota
	argNumeric
	argString
	argFile
)

// a single argument in a command definition
type arg struct {
	typ argType

	// the list of keywords accepted by an argKeyword argument
	keywords []string

	// optional label for placeholder arguments
	label string

	optional bool
	repeat   bool
}

func (a arg) String() string {
	return a.string(false)
}

func (a arg) string(useLabels bool) string {
	var s string
	switch a.typ {
	case argKeyword:
		s = strings.Join(a.keywords, "|")
		if len(a.keywords) > 1 {
			s = fmt.Sprintf("(%s)", s)
		}
	default:
		var c byte
		switch a.typ {
		case argNumeric:
			c = 'N'
		case argString:
			c = 'S'
		case argFile:
			c = 'F'
		}
		if a.label != "" {
			if useLabels {
				s = fmt.Sprintf("<%s>", a.label)
			} else {
				s = fmt.Sprintf("%%<%s>%c", a.label, c)
			}
		} else {
			s = fmt.Sprintf("%%%c", c)
		}
	}

	if a.repeat {
		return fmt.Sprintf("{%s}", s)
	}
	if a.optional {
		return fmt.Sprintf("[%s]", s)
	}
	return s
}

// verbose returns a readable description of the argument for use in error
// messages.
func (a arg) verbose() string {
	if a.label != "" {
		return a.label
	}
	switch a.typ {
	case argKeyword:
		return strings.Join(a.keywords, " or ")
	case argNumeric:
		return "numeric argument"
	case argString:
		return "string argument"
	case argFile:
		return "filename argument"
	}
	return "argument"
}

type command struct {
	tag  string
	args []arg
}

func (c command) String() string {
	return c.string(false)
}

func (c command) string(useLabels bool) string {
	s := strings.Builder{}
	s.WriteString(c.tag)
	for _, a := range c.args {
		s.WriteString(" ")
		s.WriteString(a.string(useLabels))
	}
	return s.String()
}

// Commands is the result of parsing a command template.
type Commands struct {
	cmds  []*command
	index map[string]*command

	helpCommand string
	helpCols    int
	helpColFmt  string
	helps       map[string]string
}

// Len implements the sort.Interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements the sort.Interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].tag < cmds.cmds[j].tag
}

// Swap implements the sort.Interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

// String returns the parsed template, one command per line.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Keywords returns the list of command keywords in the order they were
// defined in the template.
func (cmds Commands) Keywords() []string {
	k := make([]string, 0, len(cmds.cmds))
	for _, c := range cmds.cmds {
		k = append(k, c.tag)
	}
	return k
}

// ParseCommandTemplate turns a list of template strings into an instance of
// Commands. See the package documentation for the template syntax.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		cmds:  make([]*command, 0, len(template)),
		index: make(map[string]*command),
	}

	for _, defn := range template {
		c, err := parseDefinition(defn)
		if err != nil {
			return nil, curated.Errorf("parser: %v", err)
		}
		if _, ok := cmds.index[c.tag]; ok {
			return nil, curated.Errorf("parser: %s already defined", c.tag)
		}
		cmds.cmds = append(cmds.cmds, c)
		cmds.index[c.tag] = c
	}

	sort.Stable(cmds)

	return cmds, nil
}

func parseDefinition(defn string) (*command, error) {
	flds := strings.Fields(defn)
	if len(flds) == 0 {
		return nil, fmt.Errorf("empty definition")
	}

	c := &command{
		tag: strings.ToUpper(flds[0]),
	}
	if !isKeyword(c.tag) {
		return nil, fmt.Errorf("%s: command must be a keyword", defn)
	}

	var optional bool
	var repeat bool

	for _, f := range flds[1:] {
		var a arg
		var closeOptional bool

		if strings.HasPrefix(f, "{") {
			if !strings.HasSuffix(f, "}") || optional {
				return nil, fmt.Errorf("%s: malformed repeat group", defn)
			}
			a.repeat = true
			f = f[1 : len(f)-1]
		} else {
			if strings.HasPrefix(f, "[") {
				if optional {
					return nil, fmt.Errorf("%s: nested optional group", defn)
				}
				optional = true
				f = f[1:]
			}
			if strings.HasSuffix(f, "]") {
				if !optional {
					return nil, fmt.Errorf("%s: unopened optional group", defn)
				}
				closeOptional = true
				f = f[:len(f)-1]
			}
			a.optional = optional
		}

		if repeat {
			return nil, fmt.Errorf("%s: argument after repeat group", defn)
		}
		repeat = a.repeat

		if len(c.args) > 0 && !a.optional && !a.repeat && c.args[len(c.args)-1].optional {
			return nil, fmt.Errorf("%s: required argument after optional argument", defn)
		}

		if err := parseArg(f, &a); err != nil {
			return nil, fmt.Errorf("%s: %v", defn, err)
		}
		c.args = append(c.args, a)

		if closeOptional {
			optional = false
		}
	}

	if optional {
		return nil, fmt.Errorf("%s: unclosed optional group", defn)
	}

	return c, nil
}

func parseArg(f string, a *arg) error {
	if f == "" {
		return fmt.Errorf("empty argument")
	}

	if f[0] == '%' {
		f = f[1:]
		if strings.HasPrefix(f, "<") {
			i := strings.Index(f, ">")
			if i < 0 {
				return fmt.Errorf("unclosed placeholder label")
			}
			a.label = f[1:i]
			f = f[i+1:]
		}
		switch f {
		case "N":
			a.typ = argNumeric
		case "S":
			a.typ = argString
		case "F":
			a.typ = argFile
		default:
			return fmt.Errorf("unknown placeholder (%%%s)", f)
		}
		return nil
	}

	a.typ = argKeyword
	if strings.HasPrefix(f, "(") {
		if !strings.HasSuffix(f, ")") {
			return fmt.Errorf("unclosed keyword group")
		}
		f = f[1 : len(f)-1]
	}
	for _, k := range strings.Split(f, "|") {
		k = strings.ToUpper(k)
		if !isKeyword(k) {
			return fmt.Errorf("illegal keyword (%s)", k)
		}
		a.keywords = append(a.keywords, k)
	}

	return nil
}

func isKeyword(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '.') {
			return false
		}
	}
	return true
}

// AddHelp adds a help command to an already prepared Commands type. The
// help command takes one optional argument: any of the other top-level
// commands.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	helpCommand = strings.ToUpper(helpCommand)

	if _, ok := cmds.index[helpCommand]; ok {
		return curated.Errorf("%s: already defined", helpCommand)
	}

	cmds.helps = helps

	longest := len(helpCommand)
	keywords := make([]string, 0, len(cmds.cmds)+1)
	for _, c := range cmds.cmds {
		keywords = append(keywords, c.tag)
		if len(c.tag) > longest {
			longest = len(c.tag)
		}
	}
	keywords = append(keywords, helpCommand)

	c := &command{
		tag: helpCommand,
		args: []arg{{
			typ:      argKeyword,
			keywords: keywords,
			optional: true,
		}},
	}
	cmds.cmds = append(cmds.cmds, c)
	cmds.index[c.tag] = c

	cmds.helpCommand = helpCommand
	cmds.helpCols = 80 / (longest + 3)
	cmds.helpColFmt = fmt.Sprintf("%%%ds", longest+3)

	return nil
}

// HelpOverview returns a columnised list of all commands.
func (cmds Commands) HelpOverview() string {
	if cmds.helpCols == 0 {
		return ""
	}
	s := strings.Builder{}
	for c := range cmds.cmds {
		s.WriteString(fmt.Sprintf(cmds.helpColFmt, cmds.cmds[c].tag))
		if c%cmds.helpCols == cmds.helpCols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}

// Help returns the help text and usage for the command.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	s := strings.Builder{}

	if helpTxt, ok := cmds.helps[keyword]; !ok {
		s.WriteString(fmt.Sprintf("no help for %s", keyword))
	} else {
		s.WriteString(helpTxt)
		if cmd, ok := cmds.index[keyword]; ok {
			s.WriteString("\n\n  Usage: ")
			s.WriteString(cmd.string(true))
		}
	}

	return s.String()
}
