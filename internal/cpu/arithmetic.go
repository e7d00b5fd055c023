package cpu

import (
	"fmt"
)

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.SetFlags(Flags{
		Zero:      incremented == 0,
		HalfCarry: value&0xF == 0xF,
	}, MaskZero|MaskSubtract|MaskHalfCarry)
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.SetFlags(Flags{
		Zero:      decremented == 0,
		Subtract:  true,
		HalfCarry: value&0xF == 0x0,
	}, MaskZero|MaskSubtract|MaskHalfCarry)
	return decremented
}

// add is a helper function for adding n to the A Register,
// optionally with the carry flag, and setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, shouldCarry bool) {
	var carry uint8
	if shouldCarry {
		carry = c.carryBit()
	}
	a := c.Registers[A]
	sum := uint16(a) + uint16(n) + uint16(carry)
	sumHalf := a&0xF + n&0xF + carry

	c.Registers[A] = uint8(sum)
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
}

// sub is a helper function for subtracting n from the A Register,
// optionally with the carry flag, and setting the flags accordingly.
//
// Used by:
//
//	SUB n
//	SBC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, shouldCarry bool) {
	c.Registers[A] = c.subtract(n, shouldCarry)
}

// subtract computes A - n (- carry) and sets the flags, without
// storing the result.
func (c *CPU) subtract(n uint8, shouldCarry bool) uint8 {
	var carry int16
	if shouldCarry {
		carry = int16(c.carryBit())
	}
	a := c.Registers[A]
	diff := int16(a) - int16(n) - carry
	diffHalf := int16(a&0xF) - int16(n&0xF) - carry

	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// addHLRR adds the given value to the HL RegisterPair.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR(value uint16) {
	hl := c.Uint16(HL)
	sum := uint32(hl) + uint32(value)
	c.SetFlags(Flags{
		HalfCarry: hl&0xFFF+value&0xFFF > 0xFFF,
		Carry:     sum > 0xFFFF,
	}, MaskSubtract|MaskHalfCarry|MaskCarry)
	c.SetUint16(HL, uint16(sum))
}

// addSPSigned returns SP plus the signed immediate operand. The
// half carry and carry flags are computed on the low byte, as an
// unsigned 8-bit addition.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.operand8()
	result := uint16(int32(c.SP) + int32(int8(value)))

	c.setFlags(
		false,
		false,
		c.SP&0xF+uint16(value)&0xF > 0xF,
		c.SP&0xFF+uint16(value) > 0xFF,
	)
	return result
}

// aluOps are the 8 accumulator operations, in opcode order.
var aluOps = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", func(c *CPU, n uint8) { c.and(n) }},
	{"XOR", func(c *CPU, n uint8) { c.xor(n) }},
	{"OR", func(c *CPU, n uint8) { c.or(n) }},
	{"CP", func(c *CPU, n uint8) { c.compare(n) }},
}

func init() {
	// 0x04 - 0x3D - INC r, DEC r
	for code := uint8(0); code < 8; code++ {
		register := code
		cycles := uint8(1)
		if register == 6 {
			cycles = 3
		}
		DefineInstruction(0x04|register<<3, fmt.Sprintf("INC %s", registerNames[register]), func(c *CPU) {
			c.writeRegister(register, c.increment(c.readRegister(register)))
		}, Cycles(cycles))
		DefineInstruction(0x05|register<<3, fmt.Sprintf("DEC %s", registerNames[register]), func(c *CPU) {
			c.writeRegister(register, c.decrement(c.readRegister(register)))
		}, Cycles(cycles))
	}

	// 0x03 - 0x3B - INC rr, DEC rr, ADD HL, rr
	for code := uint8(0); code < 4; code++ {
		pair := code
		DefineInstruction(0x03|pair<<4, fmt.Sprintf("INC %s", pairNames[pair]), func(c *CPU) {
			c.setRegisterPair16(pair, c.registerPair16(pair)+1)
		}, Cycles(2))
		DefineInstruction(0x0B|pair<<4, fmt.Sprintf("DEC %s", pairNames[pair]), func(c *CPU) {
			c.setRegisterPair16(pair, c.registerPair16(pair)-1)
		}, Cycles(2))
		DefineInstruction(0x09|pair<<4, fmt.Sprintf("ADD HL, %s", pairNames[pair]), func(c *CPU) {
			c.addHLRR(c.registerPair16(pair))
		}, Cycles(2))
	}

	// 0x80 - 0xBF - ALU A, r
	// 0xC6 - 0xFE - ALU A, d8
	for op := uint8(0); op < 8; op++ {
		alu := aluOps[op]
		for code := uint8(0); code < 8; code++ {
			register := code
			cycles := uint8(1)
			if register == 6 {
				cycles = 2
			}
			DefineInstruction(0x80|op<<3|register, fmt.Sprintf("%s %s", alu.name, registerNames[register]), func(c *CPU) {
				alu.fn(c, c.readRegister(register))
			}, Cycles(cycles))
		}
		DefineInstruction(0xC6|op<<3, fmt.Sprintf("%s d8", alu.name), func(c *CPU) {
			alu.fn(c, c.operand8())
		}, Length(2), Cycles(2))
	}

	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPSigned()
	}, Length(2), Cycles(4))
}
