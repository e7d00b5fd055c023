// Package cartridge parses the header every Game Boy ROM carries at
// 0x0100 - 0x014F. The header is informational only: ROMs are mapped
// flat into memory, so no bank controller is selected from it.
package cartridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thelolagemann/gbcore/internal/types"
)

// ErrHeaderTooShort is returned for ROM images that end before the
// header does.
var ErrHeaderTooShort = errors.New("rom too short to hold a cartridge header")

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var ramMap = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Type is the memory bank controller, and any extra hardware,
// the cartridge was built with.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	POCKETCAMERA      Type = 0x1F
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM ONLY",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x013F-0x0142 - ManufacturerCode of the game
	ManufacturerCode string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	// 0x0144-0x0145 - NewLicenseeCode of the game, used when the
	// OldLicenseeCode is 0x33.
	NewLicenseeCode string
	SGBFlag         bool
	CartridgeType   Type
	ROMSize         uint
	RAMSize         uint
	DestinationCode uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	raw [0x50]byte
}

// NewHeader parses the header of the given ROM image.
func NewHeader(rom []byte) (*Header, error) {
	if len(rom) < int(types.HeaderEnd) {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(rom))
	}

	h := &Header{}
	copy(h.raw[:], rom[types.EntryPoint:types.HeaderEnd])
	h.parse()
	return h, nil
}

// at returns the header byte at the given ROM address.
func (h *Header) at(address types.HeaderAddress) uint8 {
	return h.raw[address-types.EntryPoint]
}

// slice returns the header bytes in [start, end).
func (h *Header) slice(start, end types.HeaderAddress) []byte {
	return h.raw[start-types.EntryPoint : end-types.EntryPoint]
}

func (h *Header) parse() {
	// parse the mode of the cartridge and parse the header accordingly
	switch h.at(types.CGBFlag) {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// the CGB flag shortens the title by a byte
	titleEnd := types.TitleEnd
	if h.CartridgeGBMode != FlagOnlyDMG {
		titleEnd = types.CGBFlag
	}
	h.Title = strings.TrimRight(string(h.slice(types.TitleStart, titleEnd)), "\x00 ")

	h.ManufacturerCode = string(h.slice(0x013F, 0x0143))
	h.NewLicenseeCode = string(h.slice(0x0144, 0x0146))
	h.SGBFlag = h.at(0x0146) == 0x03
	h.CartridgeType = Type(h.at(types.CartridgeType))

	// 32 KiB << n
	h.ROMSize = (32 * 1024) << h.at(types.ROMSize)
	h.RAMSize = ramMap[h.at(types.RAMSize)]

	h.DestinationCode = h.at(0x014A)
	h.OldLicenseeCode = h.at(0x014B)
	h.MaskROMVersion = h.at(0x014C)
	h.HeaderChecksum = h.at(types.HeaderChecksum)

	// the global checksum is stored big-endian
	h.GlobalChecksum = uint16(h.at(0x014E))<<8 | uint16(h.at(0x014F))
}

// Checksum computes the header checksum over 0x0134 - 0x014C, the
// way the boot ROM does.
func (h *Header) Checksum() uint8 {
	var x uint8
	for _, b := range h.slice(types.TitleStart, types.HeaderChecksum) {
		x = x - b - 1
	}
	return x
}

// Valid reports whether the stored header checksum matches.
func (h *Header) Valid() bool {
	return h.Checksum() == h.HeaderChecksum
}

func (h *Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | Mode: %s | Type: %s | ROM Size: %dkB | RAM Size: %dkB",
		h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
