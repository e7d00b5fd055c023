package cpu

// Operand fields shared by the regular blocks of the opcode table.
//
//	xx rrr zzz  - 8-bit register operands, r = B, C, D, E, H, L, (HL), A
//	xx pp  zzzz - 16-bit register operands, p = BC, DE, HL, SP (or AF for PUSH/POP)
//	xx x cc zzz - branch conditions, cc = NZ, Z, NC, C

var (
	pairs         = [3]RegisterPair{BC, DE, HL}
	pairNames     = [4]string{"BC", "DE", "HL", "SP"}
	stackPairs    = [4]RegisterPair{BC, DE, HL, AF}
	stackNames    = [4]string{"BC", "DE", "HL", "AF"}
	conditionName = [4]string{"NZ", "Z", "NC", "C"}
)

// registerPair16 returns the value of BC, DE, HL or SP for a 2-bit pair code.
func (c *CPU) registerPair16(code uint8) uint16 {
	if code == 3 {
		return c.SP
	}
	return c.Uint16(pairs[code])
}

// setRegisterPair16 sets BC, DE, HL or SP for a 2-bit pair code.
func (c *CPU) setRegisterPair16(code uint8, value uint16) {
	if code == 3 {
		c.SP = value
		return
	}
	c.SetUint16(pairs[code], value)
}

// condition evaluates a 2-bit branch condition code.
func (c *CPU) condition(code uint8) bool {
	switch code {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	default:
		return c.isFlagSet(FlagCarry)
	}
}
