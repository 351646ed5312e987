package trace

import (
	"github.com/retroenv/chip8emu/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Tracer logs every executed instruction at debug level.
type Tracer struct {
	logger *log.Logger
	quirks machine.Quirks
	count  int
}

// New returns a tracer that writes to the given logger. The quirks must
// match the ones of the traced machine so operands show the registers
// that are actually used.
func New(logger *log.Logger, quirks machine.Quirks) *Tracer {
	return &Tracer{
		logger: logger,
		quirks: quirks,
	}
}

// Trace logs the instruction at the given address.
func (t *Tracer) Trace(address, opcode uint16) {
	t.count++

	instruction, ok := Lookup(opcode)
	fields := []log.Field{
		log.Int("step", t.count),
		log.Hex("address", address),
		log.Hex("opcode", opcode),
		log.String("instruction", format(instruction, ok, opcode, t.quirks)),
	}
	if flow := instruction.Flow(); flow != "" {
		fields = append(fields, log.String("flow", flow))
	}

	t.logger.Debug("Execute", fields...)
}

// Count returns the number of traced instructions.
func (t *Tracer) Count() int {
	return t.count
}
