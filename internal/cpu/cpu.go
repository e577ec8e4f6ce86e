// Package cpu provides the instruction decode/execute engine of the
// Game Boy's SM83 CPU: the register file, the flags, the decoder for
// the primary and extended opcode tables, the interpreter and the
// cycle cost of every instruction.
package cpu

import (
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Clock is advanced by the CPU after every instruction with the
// number of cycles the instruction took.
type Clock interface {
	Tick(cycles uint64)
}

// Hook is called after every executed instruction. For extended
// opcodes ins is the instruction from the extended table.
type Hook func(pc uint16, opcode uint8, ins Instruction, cycles int)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// Registers contains the 8-bit registers, the stack pointer and
	// the register pairs.
	Registers
	// Flags contains the zero, subtract, half carry and carry flags.
	Flags

	// IME is the interrupt master enable flag. It is only tracked,
	// interrupts are never dispatched by the CPU.
	IME bool

	Debug bool

	b    mmu.IOBus
	s    Clock
	log  log.Logger
	hook Hook

	halted   bool
	extended uint8 // the last opcode read from the extended table
}

var _ types.Stater = (*CPU)(nil)

// NewCPU creates a new CPU reading and writing memory through b and
// reporting elapsed cycles to s.
func NewCPU(b mmu.IOBus, s Clock) *CPU {
	c := &CPU{
		b:   b,
		s:   s,
		log: log.NewNullLogger(),
	}
	c.initPairs()
	return c
}

// SetLogger sets the logger used for debug tracing.
func (c *CPU) SetLogger(l log.Logger) {
	c.log = l
}

// SetHook sets the function called after every executed instruction.
func (c *CPU) SetHook(h Hook) {
	c.hook = h
}

// Halted reports whether the CPU is idling after a HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step fetches, decodes and executes one instruction, then reports
// its cycle cost to the clock. An *UnsupportedOpcodeError or
// *UnimplementedInstructionError is returned if the instruction
// could not be executed; the CPU state is then undefined.
func (c *CPU) Step() error {
	pc := c.PC

	if c.halted {
		// without interrupt dispatch a halted CPU only idles until
		// an enabled interrupt is requested
		if !c.hasInterrupts() {
			c.s.Tick(4)
			return nil
		}
		c.halted = false
	}

	opcode := c.readInstruction()
	ins, err := Decode(opcode)
	if err != nil {
		if e, ok := err.(*UnsupportedOpcodeError); ok {
			e.PC = pc
		}
		return err
	}

	if err := c.execute(ins); err != nil {
		if e, ok := err.(*UnimplementedInstructionError); ok {
			e.PC = pc
		}
		return err
	}

	cycles := Cycles(ins, opcode, c.Flags)
	if ins.Kind == KindPrefix {
		ins = DecodeExtended(c.extended)
		cycles += ExtendedCycles(ins, c.extended)
	}
	c.s.Tick(uint64(cycles))

	if c.hook != nil {
		c.hook(pc, opcode, ins, cycles)
	}
	if c.Debug {
		c.log.Debugf("%04X %-16s (%2d cycles) A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X",
			pc, ins, cycles, c.A, c.Pack(), c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
	}

	return nil
}

// ResetNoBoot sets registers to typical DMG post-boot state.
// Useful when running without a boot ROM.
func (c *CPU) ResetNoBoot() {
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.Unpack(c.F)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = false
	c.halted = false
}

func (c *CPU) hasInterrupts() bool {
	return c.b.Read(types.IE)&c.b.Read(types.IF)&0x1F != 0
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but will allow future optimizations.
func (c *CPU) readOperand() uint8 {
	value := c.b.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two operands as a little-endian word.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	return utils.BytesToUint16(c.readOperand(), low)
}

// skipOperands advances the PC past n operand bytes that are not
// read, e.g. the target of a branch not taken.
func (c *CPU) skipOperands(n uint16) {
	c.PC += n
}

func (c *CPU) read16(address uint16) uint16 {
	return utils.BytesToUint16(c.b.Read(address+1), c.b.Read(address))
}

func (c *CPU) write16(address uint16, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	c.b.Write(address, low)
	c.b.Write(address+1, high)
}

// readPair reads a register pair through the register file. AF is
// assembled from A and the packed flags.
func (c *CPU) readPair(p Pair) uint16 {
	if p == PairAF {
		c.F = c.Pack()
	}
	return c.ReadPair(p)
}

// writePair writes a register pair through the register file. The
// lower nibble of F can never be set.
func (c *CPU) writePair(p Pair, value uint16) {
	c.WritePair(p, value)
	if p == PairAF {
		c.F &= 0xF0
		c.Unpack(c.F)
	}
}

// Load restores the CPU from the state.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8()
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.Unpack(c.F)
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.halted = s.ReadBool()
}

// Save writes the CPU to the state.
func (c *CPU) Save(s *types.State) {
	c.F = c.Pack()
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.WriteBool(c.halted)
}
