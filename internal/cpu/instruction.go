package cpu

import (
	"fmt"
)

// Instruction represents a single instruction of the CPU.
type Instruction struct {
	name   string     // name of the instruction
	length uint8      // length in bytes, including the opcode
	cycles uint8      // machine cycles taken when no branch is taken
	fn     func(*CPU) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the number of bytes the instruction occupies.
func (i Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the number of machine cycles the instruction takes,
// not counting any extra cycles of a taken branch.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// Recognized reports whether the instruction can be executed.
func (i Instruction) Recognized() bool {
	return i.fn != nil
}

// InstructionOpt modifies an Instruction as it is defined.
type InstructionOpt func(*Instruction)

// Length sets the length of the instruction in bytes.
func Length(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.length = n
	}
}

// Cycles sets the number of machine cycles the instruction takes.
func Cycles(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = n
	}
}

func newInstruction(name string, fn func(*CPU), opts ...InstructionOpt) Instruction {
	instruction := Instruction{
		name:   name,
		length: 1,
		cycles: 1,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&instruction)
	}
	return instruction
}

// DefineInstruction defines the instruction in the InstructionSet,
// with the provided opcode. Instructions are 1 byte and 1 machine
// cycle long unless told otherwise.
func DefineInstruction(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	InstructionSet[opcode] = newInstruction(name, fn, opts...)
}

// DefineInstructionCB defines the instruction in the InstructionSetCB.
// The length and cycles include the 0xCB prefix.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU), opts ...InstructionOpt) {
	opts = append([]InstructionOpt{Length(2), Cycles(2)}, opts...)
	InstructionSetCB[opcode] = newInstruction(name, fn, opts...)
}

// InstructionSet holds the 256 unprefixed instructions.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 instructions prefixed by 0xCB.
var InstructionSetCB [256]Instruction

// disallowedOpcodes have no instruction on the SM83. They are defined
// without a function, so executing one faults.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) { c.mode = ModeStop }, Length(2))
	DefineInstruction(0x76, "HALT", func(c *CPU) { c.mode = ModeHalt })
	DefineInstruction(0xF3, "DI", func(c *CPU) { c.IME = false })
	DefineInstruction(0xFB, "EI", func(c *CPU) { c.IME = true })
	DefineInstruction(0xCB, "PREFIX CB", func(c *CPU) {
		instruction := InstructionSetCB[c.operand8()]
		instruction.fn(c)
		c.extraCycles += instruction.cycles
	}, Length(2), Cycles(0))

	for _, opcode := range disallowedOpcodes {
		InstructionSet[opcode] = Instruction{name: fmt.Sprintf("disallowed opcode %02X", opcode)}
	}
}
