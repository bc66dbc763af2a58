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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. An
// example template would be:
//
//	template := []string {
//		"REGS",
//		"PEEK %<address>S {%<address>S}",
//		"TIMER [(ON|OFF)]",
//	}
//
// Each entry begins with the command keyword. The arguments that follow can
// be:
//
//	KEYWORD		a literal keyword
//	(A|B|C)		one of a list of keywords
//	%N		a numeric argument
//	%S		a string argument
//	%F		a filename argument
//	[...]		the arguments inside the brackets are optional
//	{...}		the argument inside the braces can be repeated zero or more times
//
// Placeholders can be given a label for use in help messages by placing the
// label in angle brackets between the percent sign and the placeholder type.
// For example, %<address>S. Optional and repeated arguments must come at the
// end of a template entry.
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("peek lcdc")
//	err := cmds.ValidateTokens(toks)
//
// Validation is case-insensitive. Keywords in the token list are normalised to
// upper case by the validation process so that, once validated, the tokens
// can be processed with a simple switch:
//
//	toks.Reset()
//	cmd, _ := toks.Get()
//	switch cmd {
//	case "REGS":
//	case "PEEK":
//	}
//
// The TabCompletion type is used to transform input such that it more closely
// resembles a valid command according to the template.
//
//	tbc := NewTabCompletion(cmds)
//	inp = tbc.Complete("RE")
//
// In this instance the value of inp will be "REGS " (note the trailing space).
// Given a number of options to use for the completion, the first option will
// be returned first followed by the second, third, etc. on subsequent calls to
// Complete(). A tab completion session can be terminated with a call to
// Reset().
package commandline
