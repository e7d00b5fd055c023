package cpu

import (
	"fmt"
)

// pushStack pushes a 16 bit value onto the stack.
func (c *CPU) pushStack(value uint16) {
	c.SP -= 2
	c.mmu.Write16(c.SP, value)
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	value := c.mmu.Read16(c.SP)
	c.SP += 2
	return value
}

// next returns the address of the instruction following
// the one currently executing.
func (c *CPU) next() uint16 {
	return c.PC + uint16(InstructionSet[c.lastOpcode].length)
}

// jumpAbsolute jumps to the given address. The program counter
// is not advanced past the current instruction afterwards.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
	c.branched = true
}

// jumpAbsoluteConditional jumps to the given address if the given condition is
// true.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if condition {
		c.jumpAbsolute(address)
		c.extraCycles++
	}
}

// jumpRelative jumps to the address relative to the next instruction.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.jumpAbsolute(uint16(int32(c.next()) + int32(int8(offset))))
}

// jumpRelativeConditional jumps to the address relative to the next
// instruction if the given condition is true.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if condition {
		c.jumpRelative(offset)
		c.extraCycles++
	}
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.next())
	c.jumpAbsolute(address)
}

// callConditional pushes the address of the next instruction onto the stack and
// jumps to the given address if the given condition is true.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool, address uint16) {
	if condition {
		c.call(address)
		c.extraCycles += 3
	}
}

// ret pops the return address off the stack and jumps to it.
//
//	RET
func (c *CPU) ret() {
	c.jumpAbsolute(c.popStack())
}

// retConditional returns if the given condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.ret()
		c.extraCycles += 3
	}
}

// retInterrupt returns and enables interrupts.
//
//	RETI
func (c *CPU) retInterrupt() {
	c.ret()
	c.IME = true
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU) { c.jumpRelative(c.operand8()) }, Length(2), Cycles(3))
	DefineInstruction(0xC3, "JP a16", func(c *CPU) { c.jumpAbsolute(c.operand16()) }, Length(3), Cycles(4))
	DefineInstruction(0xE9, "JP HL", func(c *CPU) { c.jumpAbsolute(c.Uint16(HL)) })
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) { c.call(c.operand16()) }, Length(3), Cycles(6))
	DefineInstruction(0xC9, "RET", func(c *CPU) { c.ret() }, Cycles(4))
	DefineInstruction(0xD9, "RETI", func(c *CPU) { c.retInterrupt() }, Cycles(4))

	// conditional branches
	for code := uint8(0); code < 4; code++ {
		cc := code
		name := conditionName[cc]
		DefineInstruction(0x20|cc<<3, fmt.Sprintf("JR %s, r8", name), func(c *CPU) {
			c.jumpRelativeConditional(c.condition(cc), c.operand8())
		}, Length(2), Cycles(2))
		DefineInstruction(0xC2|cc<<3, fmt.Sprintf("JP %s, a16", name), func(c *CPU) {
			c.jumpAbsoluteConditional(c.condition(cc), c.operand16())
		}, Length(3), Cycles(3))
		DefineInstruction(0xC4|cc<<3, fmt.Sprintf("CALL %s, a16", name), func(c *CPU) {
			c.callConditional(c.condition(cc), c.operand16())
		}, Length(3), Cycles(3))
		DefineInstruction(0xC0|cc<<3, fmt.Sprintf("RET %s", name), func(c *CPU) {
			c.retConditional(c.condition(cc))
		}, Cycles(2))
	}

	// PUSH rr, POP rr
	for code := uint8(0); code < 4; code++ {
		pair := stackPairs[code]
		DefineInstruction(0xC5|code<<4, fmt.Sprintf("PUSH %s", stackNames[code]), func(c *CPU) {
			c.pushStack(c.Uint16(pair))
		}, Cycles(4))
		DefineInstruction(0xC1|code<<4, fmt.Sprintf("POP %s", stackNames[code]), func(c *CPU) {
			c.SetUint16(pair, c.popStack())
		}, Cycles(3))
	}

	generateRSTInstructions()
}

// generateRSTInstructions generates the 8 RST instructions.
func generateRSTInstructions() {
	for i := uint8(0); i < 8; i++ {
		address := uint16(i) * 8
		DefineInstruction(0xC7+i*8, fmt.Sprintf("RST %02XH", address), func(c *CPU) {
			c.call(address)
		}, Cycles(4))
	}
}
