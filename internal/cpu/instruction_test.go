package cpu

import (
	"fmt"
	"testing"
)

// testPC is where testInstruction places the opcode under test.
const testPC uint16 = 0x0100

// testInstruction runs f against a fresh CPU, with the opcode
// placed at testPC and the program counter pointing at it.
func testInstruction(t *testing.T, name string, opcode uint8, f func(*testing.T, *CPU)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		c := NewCPU(Config{})
		c.PC = testPC
		c.mmu.Write(testPC, opcode)
		f(t, c)
	})
}

// testInstructionCB is testInstruction for 0xCB prefixed instructions.
func testInstructionCB(t *testing.T, name string, opcode uint8, f func(*testing.T, *CPU)) {
	t.Helper()
	testInstruction(t, name, 0xCB, func(t *testing.T, c *CPU) {
		c.mmu.Write(testPC+1, opcode)
		f(t, c)
	})
}

// newTestCPU returns a CPU with program loaded at address 0.
func newTestCPU(t *testing.T, program ...uint8) *CPU {
	t.Helper()
	c := NewCPU(Config{})
	if err := c.LoadROM(program); err != nil {
		t.Fatal(err)
	}
	return c
}

// mustStep executes a single instruction, failing the test on error.
func mustStep(t *testing.T, c *CPU) {
	t.Helper()
	if err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// expectFlags fails the test if the F register does not hold want.
func expectFlags(t *testing.T, c *CPU, want Flags) {
	t.Helper()
	if got := c.Flags(); got != want {
		t.Errorf("expected flags %s, got %s", want, got)
	}
}

// expectPC fails the test if the program counter is not want.
func expectPC(t *testing.T, c *CPU, want uint16) {
	t.Helper()
	if c.PC != want {
		t.Errorf("expected PC to be 0x%04x, got 0x%04x", want, c.PC)
	}
}

func TestInstructionSet_Complete(t *testing.T) {
	disallowed := make(map[uint8]bool)
	for _, opcode := range disallowedOpcodes {
		disallowed[opcode] = true
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		instruction := InstructionSet[opcode]
		if disallowed[opcode] {
			if instruction.Recognized() {
				t.Errorf("0x%02X: expected disallowed opcode to be unrecognized", opcode)
			}
			if instruction.Name() == "" {
				t.Errorf("0x%02X: expected disallowed opcode to be named", opcode)
			}
			continue
		}
		if !instruction.Recognized() {
			t.Errorf("0x%02X: missing instruction", opcode)
		}
		if instruction.Length() < 1 || instruction.Length() > 3 {
			t.Errorf("0x%02X %s: invalid length %d", opcode, instruction.Name(), instruction.Length())
		}
	}

	for i := 0; i < 256; i++ {
		instruction := InstructionSetCB[i]
		if !instruction.Recognized() {
			t.Errorf("CB 0x%02X: missing instruction", i)
		}
		if instruction.Length() != 2 {
			t.Errorf("CB 0x%02X %s: expected length 2, got %d", i, instruction.Name(), instruction.Length())
		}
	}
}

func TestInstructionSet_Reference(t *testing.T) {
	tests := []struct {
		opcode uint8
		name   string
		length uint8
	}{
		{0x00, "NOP", 1},
		{0x01, "LD BC, d16", 3},
		{0x02, "LD (BC), A", 1},
		{0x03, "INC BC", 1},
		{0x04, "INC B", 1},
		{0x05, "DEC B", 1},
		{0x06, "LD B, d8", 2},
		{0x07, "RLCA", 1},
		{0x08, "LD (a16), SP", 3},
		{0x10, "STOP", 2},
		{0x40, "LD B, B", 1},
		{0x76, "HALT", 1},
		{0xCB, "PREFIX CB", 2},
		{0xFE, "CP d8", 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X", tt.opcode), func(t *testing.T) {
			instruction := InstructionSet[tt.opcode]
			if instruction.Name() != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, instruction.Name())
			}
			if instruction.Length() != tt.length {
				t.Errorf("expected length %d, got %d", tt.length, instruction.Length())
			}
		})
	}
}

func TestInstruction_Control(t *testing.T) {
	// 0x00 - NOP
	testInstruction(t, "NOP", 0x00, func(t *testing.T, c *CPU) {
		c.Registers = Registers{B: 0x12, C: 0x34, F: 0xF0, A: 0x56}
		c.SP = 0xFFFE
		before := c.Registers

		mustStep(t, c)

		if c.Registers != before {
			t.Errorf("expected registers to be unchanged, got %v", c.Registers)
		}
		if c.SP != 0xFFFE {
			t.Errorf("expected SP to be unchanged, got 0x%04x", c.SP)
		}
		expectPC(t, c, testPC+1)
	})
	// 0x10 - STOP
	testInstruction(t, "STOP", 0x10, func(t *testing.T, c *CPU) {
		mustStep(t, c)
		if !c.Halted() {
			t.Errorf("expected CPU to be stopped, got running")
		}
		expectPC(t, c, testPC+2)
	})
	// 0x76 - HALT
	testInstruction(t, "HALT", 0x76, func(t *testing.T, c *CPU) {
		mustStep(t, c)
		if !c.Halted() {
			t.Fatalf("expected CPU to be halted, got running")
		}
		expectPC(t, c, testPC+1)

		// halted steps only burn cycles
		cycles := c.Cycles
		mustStep(t, c)
		expectPC(t, c, testPC+1)
		if c.Cycles != cycles+4 {
			t.Errorf("expected a halted step to take 4 cycles, took %d", c.Cycles-cycles)
		}

		c.Resume()
		if c.Halted() {
			t.Errorf("expected CPU to be running after Resume")
		}
	})
	// 0xF3 - DI
	testInstruction(t, "DI", 0xF3, func(t *testing.T, c *CPU) {
		c.IME = true
		mustStep(t, c)
		if c.IME {
			t.Errorf("expected IME to be disabled")
		}
	})
	// 0xFB - EI
	testInstruction(t, "EI", 0xFB, func(t *testing.T, c *CPU) {
		mustStep(t, c)
		if !c.IME {
			t.Errorf("expected IME to be enabled")
		}
	})
}
