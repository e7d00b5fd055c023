package cpu

import "testing"

var allFlags = []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

func TestFlag(t *testing.T) {
	cpu := NewCPU(Config{})
	t.Run("set", func(t *testing.T) {
		for _, flag := range allFlags {
			cpu.setFlag(flag)
			if !cpu.isFlagSet(flag) {
				t.Errorf("expected flag %d to be set, got unset", flag)
			}
		}
		if cpu.Registers[F] != 0xF0 {
			t.Errorf("expected F to be 0xF0, got 0x%02x", cpu.Registers[F])
		}
	})
	t.Run("clear", func(t *testing.T) {
		for _, flag := range allFlags {
			cpu.clearFlag(flag)
			if cpu.isFlagSet(flag) {
				t.Errorf("expected flag %d to be unset, got set", flag)
			}
		}
		if cpu.Registers[F] != 0x00 {
			t.Errorf("expected F to be 0x00, got 0x%02x", cpu.Registers[F])
		}
	})
	t.Run("carryBit", func(t *testing.T) {
		if cpu.carryBit() != 0 {
			t.Errorf("expected carry bit 0, got %d", cpu.carryBit())
		}
		cpu.setFlag(FlagCarry)
		if cpu.carryBit() != 1 {
			t.Errorf("expected carry bit 1, got %d", cpu.carryBit())
		}
	})
}

func TestFlags_Uint8(t *testing.T) {
	tests := []struct {
		flags Flags
		want  uint8
	}{
		{Flags{}, 0x00},
		{Flags{Zero: true}, 0x80},
		{Flags{Subtract: true}, 0x40},
		{Flags{HalfCarry: true}, 0x20},
		{Flags{Carry: true}, 0x10},
		{Flags{Zero: true, HalfCarry: true, Carry: true}, 0xB0},
		{Flags{true, true, true, true}, 0xF0},
	}
	for _, tt := range tests {
		t.Run(tt.flags.String(), func(t *testing.T) {
			if got := tt.flags.Uint8(); got != tt.want {
				t.Errorf("expected 0x%02x, got 0x%02x", tt.want, got)
			}
		})
	}
}

func TestFlags_RoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		flags := Flags{
			Zero:      i&8 != 0,
			Subtract:  i&4 != 0,
			HalfCarry: i&2 != 0,
			Carry:     i&1 != 0,
		}
		if got := FlagsFromUint8(flags.Uint8()); got != flags {
			t.Errorf("expected %s, got %s", flags, got)
		}
	}

	// the lower nibble never survives
	for i := 0; i < 256; i++ {
		b := uint8(i)
		if got := FlagsFromUint8(b).Uint8(); got != b&0xF0 {
			t.Errorf("0x%02x: expected 0x%02x, got 0x%02x", b, b&0xF0, got)
		}
	}
}

func TestFlags_String(t *testing.T) {
	if s := (Flags{Zero: true, Carry: true}).String(); s != "Z--C" {
		t.Errorf("expected Z--C, got %s", s)
	}
	if s := (Flags{}).String(); s != "----" {
		t.Errorf("expected ----, got %s", s)
	}
}

func TestRegisters_SetFlags(t *testing.T) {
	tests := []struct {
		name    string
		initial uint8
		flags   Flags
		mask    FlagMask
		want    uint8
	}{
		{"all", 0x00, Flags{true, true, true, true}, MaskAll, 0xF0},
		{"none", 0xA0, Flags{}, 0, 0xA0},
		{"carry only", 0xE0, Flags{Carry: true}, MaskCarry, 0xF0},
		{"clear zero keeps carry", 0x90, Flags{}, MaskZero, 0x10},
		{"masked out bits ignored", 0x00, Flags{Zero: true, Carry: true}, MaskSubtract | MaskHalfCarry, 0x00},
		{"lower mask bits ignored", 0x80, Flags{}, 0x0F, 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Registers
			r[F] = tt.initial
			r.SetFlags(tt.flags, tt.mask)
			if r[F] != tt.want {
				t.Errorf("expected F to be 0x%02x, got 0x%02x", tt.want, r[F])
			}
			if got := r.Flags(); got != FlagsFromUint8(tt.want) {
				t.Errorf("expected %s, got %s", FlagsFromUint8(tt.want), got)
			}
		})
	}
}
