package cpu

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.Registers[A] &= n
	c.setFlags(c.Registers[A] == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.Registers[A] |= n
	c.setFlags(c.Registers[A] == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.Registers[A] ^= n
	c.setFlags(c.Registers[A] == 0, false, false, false)
}

// compare compares n to the A Register. This is a subtraction
// whose result is thrown away.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

// decimalAdjust corrects the A Register after a BCD addition or
// subtraction, using the N, H and C flags left by that operation.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	a := c.Registers[A]
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.Registers[A] = a
	c.SetFlags(Flags{Zero: a == 0, Carry: carry}, MaskZero|MaskHalfCarry|MaskCarry)
}

func init() {
	DefineInstruction(0x27, "DAA", func(c *CPU) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.Registers[A] = 0xFF ^ c.Registers[A]
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.SetFlags(Flags{Carry: true}, MaskSubtract|MaskHalfCarry|MaskCarry)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		c.SetFlags(Flags{Carry: !c.isFlagSet(FlagCarry)}, MaskSubtract|MaskHalfCarry|MaskCarry)
	})
}
