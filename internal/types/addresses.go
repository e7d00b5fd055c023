package types

// AddressSpaceSize is the number of addressable bytes
// seen by the CPU, 0x0000 - 0xFFFF inclusive.
const AddressSpaceSize = 0x10000

// ROMBase is the address a ROM image is placed at when
// no other load address has been configured.
const ROMBase uint16 = 0x0000

// HeaderAddress is an offset into a ROM image that holds
// part of the cartridge header. The header lives in the
// address space 0x0100 - 0x014F.
type HeaderAddress = uint16

const (
	// EntryPoint is where execution begins after the boot ROM
	// hands over control, usually a NOP followed by a JP.
	EntryPoint HeaderAddress = 0x0100
	// TitleStart is the first byte of the upper case ASCII title.
	TitleStart HeaderAddress = 0x0134
	// TitleEnd is one past the last byte of the title. On newer
	// cartridges the final byte doubles as the CGB flag.
	TitleEnd HeaderAddress = 0x0144
	// CGBFlag indicates whether the cartridge supports or requires CGB mode.
	CGBFlag HeaderAddress = 0x0143
	// CartridgeType identifies the memory bank controller.
	CartridgeType HeaderAddress = 0x0147
	// ROMSize encodes the ROM size as 32 KiB << n.
	ROMSize HeaderAddress = 0x0148
	// RAMSize encodes the external RAM size.
	RAMSize HeaderAddress = 0x0149
	// HeaderChecksum holds the checksum over 0x0134 - 0x014C.
	HeaderChecksum HeaderAddress = 0x014D
	// HeaderEnd is one past the last byte of the header.
	HeaderEnd HeaderAddress = 0x0150
)
