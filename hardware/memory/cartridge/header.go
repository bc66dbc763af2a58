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

package cartridge

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

// addresses of fields in the cartridge header
const (
	addrLogo           = uint16(0x0104)
	addrTitle          = uint16(0x0134)
	addrCGBFlag        = uint16(0x0143)
	addrNewLicensee    = uint16(0x0144)
	addrCartType       = uint16(0x0147)
	addrROMSize        = uint16(0x0148)
	addrRAMSize        = uint16(0x0149)
	addrDestination    = uint16(0x014a)
	addrOldLicensee    = uint16(0x014b)
	addrVersion        = uint16(0x014c)
	addrHeaderChecksum = uint16(0x014d)
	addrGlobalChecksum = uint16(0x014e)
	headerEnd          = 0x0150
)

// LogoAddress is the address of the logo in the cartridge header.
const LogoAddress = addrLogo

// Logo is the bitmap that every cartridge must have at LogoAddress.
var Logo = [48]uint8{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0c, 0x00, 0x0d, 0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e,
	0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99, 0xbb, 0xbb, 0x67, 0x63,
	0x6e, 0x0e, 0xec, 0xcc, 0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}

var typeNames = map[uint8]string{
	0x00: "ROM",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0b: "MMM01",
	0x0c: "MMM01+RAM",
	0x0d: "MMM01+RAM+BATTERY",
	0x0f: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1a: "MBC5+RAM",
	0x1b: "MBC5+RAM+BATTERY",
	0x1c: "MBC5+RUMBLE",
	0x1d: "MBC5+RUMBLE+RAM",
	0x1e: "MBC5+RUMBLE+RAM+BATTERY",
	0xfc: "POCKET CAMERA",
	0xfd: "BANDAI TAMA5",
	0xfe: "HuC3",
	0xff: "HuC1+RAM+BATTERY",
}

// TypeName returns the name of the cartridge type.
func TypeName(cartType uint8) string {
	if n, ok := typeNames[cartType]; ok {
		return n
	}
	return fmt.Sprintf("unknown (%#02x)", cartType)
}

// ram size codes at addrRAMSize
var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 0x0800,
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
	0x05: 0x10000,
}

// headerRAMSize returns the size of cartridge RAM indicated by the header.
// Zero if the header is too short or the code is not recognised
func headerRAMSize(rom []uint8) int {
	if len(rom) <= int(addrRAMSize) {
		return 0
	}
	return ramSizes[rom[addrRAMSize]]
}

var oldLicensees = map[uint8]string{
	0x00: "none",
	0x01: "Nintendo",
	0x08: "Capcom",
	0x13: "Electronic Arts",
	0x18: "Hudson Soft",
	0x31: "Nintendo",
	0x34: "Konami",
	0x41: "Ubisoft",
	0x51: "Acclaim",
	0x52: "Activision",
	0x67: "Ocean",
	0x78: "THQ",
	0xa4: "Konami",
	0xaf: "Namco",
	0xb4: "Square Enix",
	0xc0: "Taito",
}

// Header is the information stored in the cartridge header area.
type Header struct {
	Title          string
	CGB            bool
	CartType       uint8
	ROMSize        int
	RAMSize        int
	Destination    uint8
	Licensee       string
	Version        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16

	// the header checksum calculated from the ROM data
	CalculatedChecksum uint8

	// whether the logo at LogoAddress is correct
	LogoValid bool
}

// ParseHeader reads the cartridge header from the ROM data.
func ParseHeader(rom []uint8) (Header, error) {
	var h Header

	if len(rom) < headerEnd {
		return h, curated.Errorf(InvalidROM, len(rom))
	}

	h.CGB = rom[addrCGBFlag]&0x80 == 0x80
	title := rom[addrTitle:addrCGBFlag]
	if !h.CGB {
		title = rom[addrTitle : addrCGBFlag+1]
	}
	h.Title = strings.TrimSpace(strings.ReplaceAll(string(title), "\x00", ""))

	h.CartType = rom[addrCartType]
	h.ROMSize = 0x8000 << rom[addrROMSize]
	h.RAMSize = headerRAMSize(rom)
	h.Destination = rom[addrDestination]
	h.Version = rom[addrVersion]
	h.HeaderChecksum = rom[addrHeaderChecksum]
	h.GlobalChecksum = binary.BigEndian.Uint16(rom[addrGlobalChecksum:])

	if rom[addrOldLicensee] == 0x33 {
		h.Licensee = fmt.Sprintf("new licensee %s", string(rom[addrNewLicensee:addrNewLicensee+2]))
	} else if l, ok := oldLicensees[rom[addrOldLicensee]]; ok {
		h.Licensee = l
	} else {
		h.Licensee = fmt.Sprintf("%#02x", rom[addrOldLicensee])
	}

	for i := addrTitle; i <= addrVersion; i++ {
		h.CalculatedChecksum = h.CalculatedChecksum - rom[i] - 1
	}

	h.LogoValid = true
	for i, b := range Logo {
		if rom[int(addrLogo)+i] != b {
			h.LogoValid = false
			break
		}
	}

	return h, nil
}

// ChecksumValid returns true if the header checksum stored in the header is
// the same as the checksum calculated from the header data.
func (h Header) ChecksumValid() bool {
	return h.HeaderChecksum == h.CalculatedChecksum
}

// Japanese returns true if the cartridge is intended for the Japanese market.
func (h Header) Japanese() bool {
	return h.Destination == 0x00
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title: %s\n", h.Title))
	s.WriteString(fmt.Sprintf("type: %s\n", TypeName(h.CartType)))
	s.WriteString(fmt.Sprintf("rom: %dk\n", h.ROMSize/1024))
	s.WriteString(fmt.Sprintf("ram: %dk\n", h.RAMSize/1024))
	s.WriteString(fmt.Sprintf("licensee: %s\n", h.Licensee))
	if h.Japanese() {
		s.WriteString("destination: japan\n")
	} else {
		s.WriteString("destination: overseas\n")
	}
	s.WriteString(fmt.Sprintf("version: %d\n", h.Version))
	if h.ChecksumValid() {
		s.WriteString(fmt.Sprintf("header checksum: %#02x\n", h.HeaderChecksum))
	} else {
		s.WriteString(fmt.Sprintf("header checksum: %#02x (expected %#02x)\n", h.HeaderChecksum, h.CalculatedChecksum))
	}
	if !h.LogoValid {
		s.WriteString("logo: invalid\n")
	}
	return s.String()
}
