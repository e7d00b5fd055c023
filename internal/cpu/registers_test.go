package cpu

import (
	"fmt"
	"testing"
)

func TestRegisters_GetSet(t *testing.T) {
	var r Registers
	for _, index := range []uint8{B, C, D, E, H, L, A} {
		r.Set(index, 0x5A+index)
		if got := r.Get(index); got != 0x5A+index {
			t.Errorf("register %d: expected 0x%02x, got 0x%02x", index, 0x5A+index, got)
		}
	}

	// only the upper nibble of F is kept
	for i := 0; i < 256; i++ {
		r.Set(F, uint8(i))
		if got := r.Get(F); got != uint8(i)&0xF0 {
			t.Errorf("F: expected 0x%02x, got 0x%02x", uint8(i)&0xF0, got)
		}
	}
}

func TestRegisters_InvalidIndex(t *testing.T) {
	for _, tt := range []struct {
		name string
		fn   func(r *Registers)
	}{
		{"Get", func(r *Registers) { r.Get(8) }},
		{"Set", func(r *Registers) { r.Set(8, 0) }},
		{"Pair", func(r *Registers) { r.Pair(B, 9) }},
		{"SetPair", func(r *Registers) { r.SetPair(0xFF, B, 0) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected %s to panic on an invalid index", tt.name)
				}
			}()
			var r Registers
			tt.fn(&r)
		})
	}
}

func TestRegisters_Pair(t *testing.T) {
	for _, p := range []struct {
		name string
		pair RegisterPair
	}{
		{"BC", BC},
		{"DE", DE},
		{"HL", HL},
	} {
		t.Run(p.name, func(t *testing.T) {
			var r Registers
			for v := 0; v <= 0xFFFF; v++ {
				r.SetUint16(p.pair, uint16(v))
				if got := r.Uint16(p.pair); got != uint16(v) {
					t.Fatalf("expected 0x%04x, got 0x%04x", v, got)
				}
				if r[p.pair.Low] != uint8(v) || r[p.pair.High] != uint8(v>>8) {
					t.Fatalf("0x%04x: expected low 0x%02x high 0x%02x, got 0x%02x 0x%02x",
						v, uint8(v), uint8(v>>8), r[p.pair.Low], r[p.pair.High])
				}
			}
		})
	}

	t.Run("AF", func(t *testing.T) {
		var r Registers
		r.SetUint16(AF, 0x12FF)
		if got := r.Uint16(AF); got != 0x12F0 {
			t.Errorf("expected 0x12F0, got 0x%04x", got)
		}
	})

	t.Run("any registers", func(t *testing.T) {
		var r Registers
		r.SetPair(A, E, 0xBEEF)
		if r[A] != 0xEF || r[E] != 0xBE {
			t.Errorf("expected A=0xEF E=0xBE, got A=0x%02x E=0x%02x", r[A], r[E])
		}
		if got := r.Pair(A, E); got != 0xBEEF {
			t.Errorf("expected 0xBEEF, got 0x%04x", got)
		}
	})
}

func ExampleRegisters_Pair() {
	var r Registers
	r.Set(C, 0x34)
	r.Set(B, 0x12)
	fmt.Printf("0x%04X\n", r.Pair(C, B))
	// Output: 0x1234
}
