package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOpcode matches any *UnsupportedOpcodeError.
	ErrUnsupportedOpcode = errors.New("cpu: unsupported opcode")
	// ErrUnimplementedInstruction matches any *UnimplementedInstructionError.
	ErrUnimplementedInstruction = errors.New("cpu: unimplemented instruction")
)

// UnsupportedOpcodeError is returned when the decoder meets a byte
// with no meaning on the hardware. It means the program stream is
// corrupt or was never meant for this CPU.
type UnsupportedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unsupported opcode %02X at %04X", e.Opcode, e.PC)
}

func (e *UnsupportedOpcodeError) Is(target error) bool {
	return target == ErrUnsupportedOpcode
}

// UnimplementedInstructionError is returned when a decoded
// Instruction has no execution routine.
type UnimplementedInstructionError struct {
	Instruction Instruction
	PC          uint16
}

func (e *UnimplementedInstructionError) Error() string {
	return fmt.Sprintf("cpu: unimplemented instruction %s at %04X", e.Instruction, e.PC)
}

func (e *UnimplementedInstructionError) Is(target error) bool {
	return target == ErrUnimplementedInstruction
}
