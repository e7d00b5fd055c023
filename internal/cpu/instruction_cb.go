package cpu

import "fmt"

// cbRotateOps are the 8 rotate and shift operations occupying
// 0x00 - 0x3F of the CB table, in opcode order.
var cbRotateOps = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// generateRotateInstructions generates the rotate, shift and swap
// instructions, 0x00 - 0x3F.
//
//	0x00 RLC B
//	0x01 RLC C
//	....
//	0x3F SRL A
func generateRotateInstructions() {
	for op := uint8(0); op < 8; op++ {
		rotate := cbRotateOps[op]
		for j := uint8(0); j < 8; j++ {
			register := j
			// (HL) reads and writes memory
			cycles := uint8(2)
			if register == 6 {
				cycles = 4
			}
			DefineInstructionCB(op<<3|register, fmt.Sprintf("%s %s", rotate.name, registerNames[register]), func(c *CPU) {
				c.writeRegister(register, rotate.fn(c, c.readRegister(register)))
			}, Cycles(cycles))
		}
	}
}

// generateBitInstructions generates the BIT, RES and SET
// instructions, 0x40 - 0xFF.
//
//	0x40 BIT 0, B
//	....
//	0x80 RES 0, B
//	....
//	0xFF SET 7, A
func generateBitInstructions() {
	for b := uint8(0); b < 8; b++ {
		position := b
		for j := uint8(0); j < 8; j++ {
			register := j
			testCycles, writeCycles := uint8(2), uint8(2)
			if register == 6 {
				testCycles, writeCycles = 3, 4
			}
			opcode := position<<3 | register

			DefineInstructionCB(0x40|opcode, fmt.Sprintf("BIT %d, %s", position, registerNames[register]), func(c *CPU) {
				c.testBit(c.readRegister(register), position)
			}, Cycles(testCycles))
			DefineInstructionCB(0x80|opcode, fmt.Sprintf("RES %d, %s", position, registerNames[register]), func(c *CPU) {
				c.writeRegister(register, c.clearBit(c.readRegister(register), position))
			}, Cycles(writeCycles))
			DefineInstructionCB(0xC0|opcode, fmt.Sprintf("SET %d, %s", position, registerNames[register]), func(c *CPU) {
				c.writeRegister(register, c.setBit(c.readRegister(register), position))
			}, Cycles(writeCycles))
		}
	}
}

func init() {
	generateRotateInstructions()
	generateBitInstructions()
}
