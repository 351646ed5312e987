// Package trace provides the diagnostic instruction tracer of the emulator.
//
// The tracer receives every instruction word before the machine executes it
// and logs the address, the raw word and its assembly mnemonic at debug
// level. Mnemonics are resolved through the CHIP-8 opcode table of
// retrogolib, so they match the output of the retroenv disassembler:
//
//	tracer := trace.New(logger, quirks)
//	m, err := machine.New(rom, machine.WithQuirks(quirks), machine.WithTracer(tracer))
//
// Tracing is purely observational. The machine behaves identically with and
// without a tracer.
package trace
