package cpu

import (
	"fmt"
)

// loadRegisterToMemory stores the given Register value at the given address.
//
//	LD (nn), r
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.mmu.Write(address, reg)
}

// loadMemoryToRegister loads the byte at the given address into the
// Register with the given index.
//
//	LD r, (nn)
func (c *CPU) loadMemoryToRegister(index uint8, address uint16) {
	c.Set(index, c.mmu.Read(address))
}

// loadRegisterToHardware stores the A Register in the 0xFF00 page.
//
//	LDH (n), A
//	LD (C), A
func (c *CPU) loadRegisterToHardware(offset uint8) {
	c.loadRegisterToMemory(c.Registers[A], 0xFF00+uint16(offset))
}

// loadHardwareToRegister loads the A Register from the 0xFF00 page.
//
//	LDH A, (n)
//	LD A, (C)
func (c *CPU) loadHardwareToRegister(offset uint8) {
	c.loadMemoryToRegister(A, 0xFF00+uint16(offset))
}

// loadStackPointerToMemory stores SP at the 16-bit immediate address,
// low byte first. SP itself is unchanged.
//
//	LD (a16), SP
func (c *CPU) loadStackPointerToMemory() {
	c.mmu.Write16(c.operand16(), c.SP)
}

// indirectPairs are the address sources of LD (rr), A and LD A, (rr),
// where HL is post-incremented (HL+) or post-decremented (HL-).
var indirectPairs = [4]struct {
	name string
	step uint16
	pair RegisterPair
}{
	{"BC", 0, BC},
	{"DE", 0, DE},
	{"HL+", 1, HL},
	{"HL-", 0xFFFF, HL},
}

func init() {
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) { c.loadStackPointerToMemory() }, Length(3), Cycles(5))
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) { c.loadRegisterToHardware(c.operand8()) }, Length(2), Cycles(3))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) { c.loadHardwareToRegister(c.operand8()) }, Length(2), Cycles(3))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.loadRegisterToHardware(c.Registers[C]) }, Cycles(2))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.loadHardwareToRegister(c.Registers[C]) }, Cycles(2))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) {
		c.loadRegisterToMemory(c.Registers[A], c.operand16())
	}, Length(3), Cycles(4))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) {
		c.loadMemoryToRegister(A, c.operand16())
	}, Length(3), Cycles(4))
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) { c.SetUint16(HL, c.addSPSigned()) }, Length(2), Cycles(3))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) { c.SP = c.Uint16(HL) }, Cycles(2))

	// 0x01 - 0x31 - LD rr, d16
	for code := uint8(0); code < 4; code++ {
		pair := code
		DefineInstruction(0x01|pair<<4, fmt.Sprintf("LD %s, d16", pairNames[pair]), func(c *CPU) {
			c.setRegisterPair16(pair, c.operand16())
		}, Length(3), Cycles(3))
	}

	// 0x02 - 0x3A - LD (rr), A and LD A, (rr)
	for code := uint8(0); code < 4; code++ {
		indirect := indirectPairs[code]
		DefineInstruction(0x02|code<<4, fmt.Sprintf("LD (%s), A", indirect.name), func(c *CPU) {
			address := c.Uint16(indirect.pair)
			c.loadRegisterToMemory(c.Registers[A], address)
			c.SetUint16(indirect.pair, address+indirect.step)
		}, Cycles(2))
		DefineInstruction(0x0A|code<<4, fmt.Sprintf("LD A, (%s)", indirect.name), func(c *CPU) {
			address := c.Uint16(indirect.pair)
			c.loadMemoryToRegister(A, address)
			c.SetUint16(indirect.pair, address+indirect.step)
		}, Cycles(2))
	}

	// 0x06 - 0x3E - LD r, d8
	for code := uint8(0); code < 8; code++ {
		register := code
		cycles := uint8(2)
		if register == 6 {
			cycles = 3
		}
		DefineInstruction(0x06|register<<3, fmt.Sprintf("LD %s, d8", registerNames[register]), func(c *CPU) {
			c.writeRegister(register, c.operand8())
		}, Length(2), Cycles(cycles))
	}

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76, which would be LD (HL), (HL), is HALT.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		for j := uint8(0); j < 8; j++ {
			if i == 6 && j == 6 {
				continue
			}
			to, from := i, j
			cycles := uint8(1)
			if to == 6 || from == 6 {
				cycles = 2
			}
			DefineInstruction(0x40|to<<3|from, fmt.Sprintf("LD %s, %s", registerNames[to], registerNames[from]), func(c *CPU) {
				c.writeRegister(to, c.readRegister(from))
			}, Cycles(cycles))
		}
	}
}
