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

// Package paths prepares paths to files used by gopherdmg: the preferences
// file, scripts and output from the monitor.
//
// The ResourcePath() function joins the supplied path with the base path.
// The base path depends on how the program was built. A development build
// uses the ".gopherdmg" directory in the current working directory. A build
// with the release tag uses the "gopherdmg" directory in the user's config
// directory, as returned by os.UserConfigDir(). For example, on a modern
// Linux system:
//
//	/home/user/.config/gopherdmg/prefs
//
// The GOPHERDMG_HOME environment variable overrides the base path for both
// kinds of build.
//
// The directory part of the returned path is created if it does not exist.
package paths
