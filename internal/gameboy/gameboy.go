// Package gameboy wires a ROM image to the CPU and drives it. There
// is no video, audio or input: the CPU sees a flat 64 KiB memory
// with the ROM loaded into it.
package gameboy

import (
	"errors"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
)

// GameBoy represents a Game Boy. It owns the CPU, which in turn
// owns the memory the ROM is loaded into.
type GameBoy struct {
	CPU    *cpu.CPU
	Header *cartridge.Header

	log.Logger

	cfg     cpu.Config
	romHash uint64
	noBios  bool
}

// NewGameBoy returns a new GameBoy with rom loaded into memory.
// A ROM without a readable cartridge header still loads; the header
// is informational only.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.cfg.Logger = g.Logger

	g.CPU = cpu.NewCPU(g.cfg)
	if err := g.CPU.LoadROM(rom); err != nil {
		return nil, err
	}
	g.romHash = xxhash.Sum64(rom)
	g.Debugf("loaded %d bytes at 0x%04X (xxhash %016x)", len(rom), g.cfg.LoadAddress, g.romHash)

	header, err := cartridge.NewHeader(rom)
	switch {
	case errors.Is(err, cartridge.ErrHeaderTooShort):
		g.Warnf("no cartridge header: %v", err)
	case err != nil:
		return nil, err
	default:
		g.Header = header
		g.Infof("cartridge: %s", header)
		if !header.Valid() {
			g.Warnf("header checksum mismatch: expected 0x%02X, got 0x%02X", header.Checksum(), header.HeaderChecksum)
		}
	}

	if g.noBios {
		g.skipBoot()
	}

	return g, nil
}

// skipBoot puts the CPU in the state the DMG boot ROM leaves it in
// when it hands over to the cartridge entry point.
func (g *GameBoy) skipBoot() {
	g.CPU.PC = 0x0100
	g.CPU.SP = 0xFFFE
	g.CPU.SetUint16(cpu.AF, 0x01B0)
	g.CPU.SetUint16(cpu.BC, 0x0013)
	g.CPU.SetUint16(cpu.DE, 0x00D8)
	g.CPU.SetUint16(cpu.HL, 0x014D)
}

// ROMHash returns the xxhash digest of the loaded ROM image.
func (g *GameBoy) ROMHash() uint64 {
	return g.romHash
}

// Step executes a single instruction.
func (g *GameBoy) Step() error {
	return g.CPU.Step()
}

// Run executes up to n instructions. It stops early when the CPU
// halts or faults, and returns the number of instructions executed.
func (g *GameBoy) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if g.CPU.Halted() {
			g.Debugf("cpu halted at 0x%04X after %d steps", g.CPU.PC, i)
			return i, nil
		}
		if err := g.CPU.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}
