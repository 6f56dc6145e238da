// This file is part of bk2gbi.
//
// bk2gbi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bk2gbi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bk2gbi.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags and arguments for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "INFO")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. The first mode given to AddSubModes() is the
// default mode and is selected when the first argument is not a mode. Mode
// comparisons are case insensitive.
//
// Once the mode is known a new layer of flags and arguments is started with
// NewMode():
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		md.Arguments("ROM", "MOVIE")
//		bios := md.AddString("bios", "gbc_bios.bin", "boot ROM")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		if err := md.ExpectArgs(); err != nil {
//			return err
//		}
//		convert(*bios, md.GetArg(0), md.GetArg(1))
//	}
//
// The names given to Arguments() are shown in the help message for the mode
// and are used by ExpectArgs() to check the number of arguments.
package modalflag
