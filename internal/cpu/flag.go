package cpu

import (
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Flag is the bit position of a condition flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// FlagMask selects a subset of the four flags, using the
// same bit positions as the F register.
type FlagMask = uint8

const (
	MaskZero      FlagMask = 1 << FlagZero
	MaskSubtract  FlagMask = 1 << FlagSubtract
	MaskHalfCarry FlagMask = 1 << FlagHalfCarry
	MaskCarry     FlagMask = 1 << FlagCarry

	// MaskAll selects every flag.
	MaskAll = MaskZero | MaskSubtract | MaskHalfCarry | MaskCarry
)

// Flags is the unpacked form of the F register. Only the upper
// nibble of F carries meaning, the lower nibble always reads 0.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromUint8 unpacks b into Flags. Bits 3-0 are ignored.
func FlagsFromUint8(b uint8) Flags {
	return Flags{
		Zero:      utils.TestBit(b, FlagZero),
		Subtract:  utils.TestBit(b, FlagSubtract),
		HalfCarry: utils.TestBit(b, FlagHalfCarry),
		Carry:     utils.TestBit(b, FlagCarry),
	}
}

// Uint8 packs the flags into the layout of the F register.
func (f Flags) Uint8() uint8 {
	var b uint8
	if f.Zero {
		b = utils.SetBit(b, FlagZero)
	}
	if f.Subtract {
		b = utils.SetBit(b, FlagSubtract)
	}
	if f.HalfCarry {
		b = utils.SetBit(b, FlagHalfCarry)
	}
	if f.Carry {
		b = utils.SetBit(b, FlagCarry)
	}
	return b
}

// String renders the flags as ZNHC, with a dash for each clear flag.
func (f Flags) String() string {
	return string([]byte{
		utils.If(f.Zero, byte('Z'), '-'),
		utils.If(f.Subtract, byte('N'), '-'),
		utils.If(f.HalfCarry, byte('H'), '-'),
		utils.If(f.Carry, byte('C'), '-'),
	})
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.SetFlags(Flags{zero, subtract, halfCarry, carry}, MaskAll)
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.Registers[F] = utils.ClearBit(c.Registers[F], flag)
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.Registers[F] = utils.SetBit(c.Registers[F], flag)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return utils.TestBit(c.Registers[F], flag)
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	return utils.GetBit(c.Registers[F], FlagCarry)
}
