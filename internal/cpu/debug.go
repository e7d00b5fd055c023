package cpu

import "fmt"

// Dump returns a single line describing the register pairs, stack
// pointer, program counter, last executed opcode and flags. It does
// not modify the CPU.
//
//	AF: 01B0 BC: 0013 DE: 00D8 HL: 014D SP: FFFE PC: 0100 OP: 40 F: Z-HC
func (c *CPU) Dump() string {
	return fmt.Sprintf("AF: %04X BC: %04X DE: %04X HL: %04X SP: %04X PC: %04X OP: %02X F: %s",
		c.Uint16(AF),
		c.Uint16(BC),
		c.Uint16(DE),
		c.Uint16(HL),
		c.SP,
		c.PC,
		c.lastOpcode,
		c.Flags(),
	)
}

// Disassemble returns the mnemonic of the instruction at the given
// address, resolving CB prefixed instructions.
func (c *CPU) Disassemble(address uint16) string {
	opcode := c.mmu.Read(address)
	if opcode == 0xCB {
		return InstructionSetCB[c.mmu.Read(address+1)].name
	}
	return InstructionSet[opcode].name
}
