package gameboy

import (
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before its CPU is created.
type Opt func(gb *GameBoy)

// Debug enables the register dump after every execution of opcode.
// 0x40 (LD B, B) is the conventional choice.
func Debug(opcode uint8) Opt {
	return func(gb *GameBoy) {
		gb.cfg.Dump = true
		gb.cfg.DumpOpcode = opcode
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithLoadAddress sets where in memory the ROM is placed.
func WithLoadAddress(address uint16) Opt {
	return func(gb *GameBoy) {
		gb.cfg.LoadAddress = address
	}
}

// NoBios starts execution at the cartridge entry point (0x0100),
// with the registers set to the values upon completion of the
// boot ROM.
func NoBios() Opt {
	return func(gb *GameBoy) {
		gb.noBios = true
	}
}
