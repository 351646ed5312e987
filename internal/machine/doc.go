// Package machine implements the CHIP-8 virtual machine core.
//
// # Machine Model
//
// The machine owns 4KB of memory, sixteen 8-bit registers V0-VF, the 16-bit
// address register I, a delay and a sound timer, a 16 entry call stack and a
// 64x32 monochrome framebuffer:
//   - 0x000-0x04F: built-in hexadecimal font, 16 sprites of 5 bytes
//   - 0x050-0x1FF: reserved interpreter area, never written by programs
//   - ProgramStart-0xFFF: program image and work memory
//
// The call stack and framebuffer are kept in their own containers and are not
// addressable through memory reads or writes.
//
// # Execution
//
// A host drives the machine by calling Step for every instruction, TickTimers
// at 60Hz and KeyDown/KeyUp for keypad edges:
//
//	m, err := machine.New(rom)
//	if err != nil {
//		return fmt.Errorf("creating machine: %w", err)
//	}
//	if m.Step() {
//		render(m.Framebuffer())
//	}
//
// The machine is not safe for concurrent use. Hosts that render or play audio
// from other goroutines must copy the state they need after calling Step.
//
// # Faults
//
// Stack overflows and underflows halt the machine. The faulting instruction
// has no effect, every further Step is a no-op and Fault returns a *Fault
// wrapping ErrStackOverflow or ErrStackUnderflow.
package machine
