package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Register is a single 8-bit CPU register.
type Register = uint8

// Index of each register within Registers. The order follows the 3-bit
// register operand encoding used by the opcodes (B, C, D, E, H, L, (HL), A),
// with slot 6 holding the F register since (HL) is a memory operand.
const (
	B uint8 = iota
	C
	D
	E
	H
	L
	F
	A
)

// Registers is the register file: the 7 general registers and the
// F register, which holds the flags. Any two registers can be read
// as a little-endian 16-bit pair.
type Registers [8]Register

// RegisterPair names two registers that are treated as
// one 16-bit register.
type RegisterPair struct {
	Low  uint8
	High uint8
}

var (
	BC = RegisterPair{Low: C, High: B}
	DE = RegisterPair{Low: E, High: D}
	HL = RegisterPair{Low: L, High: H}
	AF = RegisterPair{Low: F, High: A}
)

// registerNames maps register operand codes to their mnemonic.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// checkIndex panics if index does not name a register. Opcode decoding
// only ever produces valid indices, so this is a programming error.
func checkIndex(index uint8) {
	if index > A {
		panic(fmt.Sprintf("invalid register index: %d", index))
	}
}

// Get returns the register at the given index.
func (r *Registers) Get(index uint8) Register {
	checkIndex(index)
	return r[index]
}

// Set sets the register at the given index. Writes to F
// only keep the upper nibble.
func (r *Registers) Set(index uint8, value Register) {
	checkIndex(index)
	if index == F {
		value &= 0xF0
	}
	r[index] = value
}

// Pair returns low + high*256.
func (r *Registers) Pair(low, high uint8) uint16 {
	return utils.BytesToUint16(r.Get(high), r.Get(low))
}

// SetPair writes the low byte of value to low and the
// high byte to high.
func (r *Registers) SetPair(low, high uint8, value uint16) {
	upper, lower := utils.Uint16ToBytes(value)
	r.Set(low, lower)
	r.Set(high, upper)
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *Registers) Uint16(p RegisterPair) uint16 {
	return r.Pair(p.Low, p.High)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *Registers) SetUint16(p RegisterPair, value uint16) {
	r.SetPair(p.Low, p.High, value)
}

// Flags decodes the F register.
func (r *Registers) Flags() Flags {
	return FlagsFromUint8(r[F])
}

// SetFlags updates the flags selected by mask to their value in
// flags, leaving the others untouched.
func (r *Registers) SetFlags(flags Flags, mask FlagMask) {
	mask &= MaskAll
	r[F] = r[F]&^mask | flags.Uint8()&mask
}
