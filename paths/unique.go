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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that should not collide with any
// existing file. The function does not check this.
//
// Format of returned string is:
//
//	prepend_title_YYYYMMDD_HHMMSS
//
// Where title is normally the cartridge title with spaces replaced by
// underscores. If the title is empty the returned string is:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, title string) string {
	return uniqueFilename(prepend, title, time.Now())
}

func uniqueFilename(prepend string, title string, n time.Time) string {
	timestamp := n.Format("20060102_150405")

	c := strings.Join(strings.Fields(title), "_")
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
