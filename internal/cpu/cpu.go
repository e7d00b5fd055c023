// Package cpu implements the SM83 instruction interpreter: the register
// file, the packed flags byte and the fetch/decode/execute cycle.
package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT.
	ModeHalt
	// ModeStop is entered by STOP.
	ModeStop
)

// ErrUnrecognizedOpcode is the cause of every OpcodeError.
var ErrUnrecognizedOpcode = errors.New("unrecognized opcode")

// OpcodeError reports an opcode that has no instruction, along
// with the address it was fetched from.
type OpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("unrecognized opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return ErrUnrecognizedOpcode
}

// Config holds the settings a CPU is constructed with.
type Config struct {
	// LoadAddress is where LoadROM places the ROM image.
	LoadAddress uint16
	// Dump enables the diagnostic dump after each execution of DumpOpcode.
	Dump bool
	// DumpOpcode is the opcode that triggers the dump, conventionally
	// 0x40 (LD B, B) which is otherwise a no-op.
	DumpOpcode uint8
	// Logger receives diagnostics. Defaults to a null logger.
	Logger log.Logger
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, which can also be accessed as 16-bit pairs.
	Registers

	// IME is the interrupt master enable flag. It is only toggled by
	// DI, EI and RETI, there is no interrupt controller to act on it.
	IME bool

	// Cycles is the number of clock cycles (T-cycles) executed since
	// power on. Each machine cycle is 4 clock cycles.
	Cycles uint64

	mmu *mmu.MMU
	cfg Config
	log log.Logger

	mode mode
	err  error

	// set by the executing instruction
	branched    bool
	extraCycles uint8
	lastOpcode  uint8
}

// NewCPU creates a new CPU, and the memory bus it owns, with all state zeroed.
func NewCPU(cfg Config) *CPU {
	if cfg.Logger == nil {
		cfg.Logger = log.NewNullLogger()
	}
	return &CPU{
		mmu: mmu.NewMMU(cfg.Logger),
		cfg: cfg,
		log: cfg.Logger,
	}
}

// LoadROM places rom in memory at the configured load address.
func (c *CPU) LoadROM(rom []byte) error {
	if err := c.mmu.Load(c.cfg.LoadAddress, rom); err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	return nil
}

// Peek returns the byte at the given address without affecting the CPU.
func (c *CPU) Peek(address uint16) uint8 {
	return c.mmu.Read(address)
}

// Halted reports whether the CPU is in HALT or STOP mode.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Resume returns a halted CPU to normal execution. With no interrupt
// controller this is the only way out of HALT or STOP.
func (c *CPU) Resume() {
	c.mode = ModeNormal
}

// Err returns the fault that stopped the CPU, if any.
func (c *CPU) Err() error {
	return c.err
}

// Step performs one fetch/decode/execute cycle. Once a fault has
// occurred, Step keeps returning it without executing anything.
func (c *CPU) Step() error {
	if c.err != nil {
		return c.err
	}

	if c.mode != ModeNormal {
		// the CPU idles, but the clock keeps running
		c.Cycles += 4
		return nil
	}

	opcode := c.mmu.Read(c.PC)
	length, err := c.execute(opcode)
	if err != nil {
		c.err = err
		c.log.Errorf("%v", err)
		return err
	}
	c.PC += uint16(length)

	if c.cfg.Dump && opcode == c.cfg.DumpOpcode {
		c.log.Infof("%s", c.Dump())
	}

	return nil
}

// execute runs the instruction for opcode and returns how far the program
// counter must advance: the instruction length, or 0 if the instruction
// moved the program counter itself. Nothing is mutated for an
// unrecognized opcode.
func (c *CPU) execute(opcode uint8) (uint8, error) {
	instruction := InstructionSet[opcode]
	if instruction.fn == nil {
		return 0, &OpcodeError{Opcode: opcode, PC: c.PC}
	}

	c.branched = false
	c.extraCycles = 0
	c.lastOpcode = opcode

	instruction.fn(c)

	c.Cycles += 4 * (uint64(instruction.cycles) + uint64(c.extraCycles))
	if c.branched {
		return 0, nil
	}
	return instruction.length, nil
}

// operand8 reads the byte following the opcode. The program
// counter is not moved.
func (c *CPU) operand8() uint8 {
	return c.mmu.Read(c.PC + 1)
}

// operand16 reads the little-endian word following the opcode.
func (c *CPU) operand16() uint16 {
	return c.mmu.Read16(c.PC + 1)
}

// readRegister returns the operand selected by a 3-bit register
// code, where code 6 is the byte in memory at HL.
func (c *CPU) readRegister(code uint8) uint8 {
	if code == 6 {
		return c.mmu.Read(c.Uint16(HL))
	}
	return c.Get(code)
}

// writeRegister writes the operand selected by a 3-bit register code.
func (c *CPU) writeRegister(code uint8, value uint8) {
	if code == 6 {
		c.mmu.Write(c.Uint16(HL), value)
		return
	}
	c.Set(code, value)
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}

