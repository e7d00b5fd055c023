// Package mmu provides the memory bus seen by the CPU. The bus is a flat,
// unmapped 64kB address space: there are no banks, mirrors or memory-mapped
// I/O regions, every address 0x0000 - 0xFFFF is plain read/write storage.
package mmu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// ErrOutOfBounds is returned when a load would run past the
// end of the address space.
var ErrOutOfBounds = errors.New("load exceeds address space")

// IOBus is the interface that the CPU uses to access memory.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

var _ IOBus = (*MMU)(nil)

// MMU is the memory bus. It holds a byte for every
// address the CPU is able to generate.
type MMU struct {
	// 64kB address space
	raw [types.AddressSpaceSize]uint8

	Log log.Logger
}

// NewMMU returns a new MMU with every address zeroed.
func NewMMU(l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &MMU{Log: l}
}

// Load copies data into memory starting at start. The load fails without
// touching memory if data does not fit between start and the end of the
// address space.
func (m *MMU) Load(start uint16, data []byte) error {
	if int(start)+len(data) > types.AddressSpaceSize {
		return fmt.Errorf("%w: %d bytes at 0x%04X", ErrOutOfBounds, len(data), start)
	}

	copy(m.raw[start:], data)
	m.Log.Debugf("loaded %d bytes at 0x%04X", len(data), start)
	return nil
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Read16 reads a little-endian 16-bit value, the low byte
// at address and the high byte at address+1. The high
// byte address wraps from 0xFFFF to 0x0000.
func (m *MMU) Read16(address uint16) uint16 {
	return utils.BytesToUint16(m.raw[address+1], m.raw[address])
}

// Write16 writes a little-endian 16-bit value, mirroring Read16.
func (m *MMU) Write16(address uint16, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	m.raw[address] = low
	m.raw[address+1] = high
}
