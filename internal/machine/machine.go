package machine

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

// Tracer receives every instruction before it is executed.
type Tracer interface {
	Trace(address, opcode uint16)
}

// Machine is the CHIP-8 machine state together with its execute engine.
type Machine struct {
	logger *log.Logger
	tracer Tracer
	quirks Quirks
	random io.Reader

	memory [MemorySize]byte
	v      [RegisterCount]uint8
	i      uint16
	pc     uint16

	delayTimer uint8
	soundTimer uint8

	stack [StackSize]uint16
	sp    uint8

	display Framebuffer
	keys    [KeyCount]bool

	waitingForKey bool
	waitRegister  uint8

	fault        *Fault
	randomFailed bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for diagnostic messages.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithTracer sets a tracer that is called for every executed instruction.
func WithTracer(tracer Tracer) Option {
	return func(m *Machine) {
		m.tracer = tracer
	}
}

// WithQuirks sets the interpreter compatibility behavior.
func WithQuirks(quirks Quirks) Option {
	return func(m *Machine) {
		m.quirks = quirks
	}
}

// WithRandom sets the source of random bytes used by the RND instruction.
func WithRandom(random io.Reader) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// New returns a machine with the font and the given program image loaded
// and the program counter set to ProgramStart.
func New(program []byte, options ...Option) (*Machine, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	m := &Machine{
		random: rand.Reader,
		pc:     ProgramStart,
	}
	for _, option := range options {
		option(m)
	}
	if m.logger == nil {
		m.logger = log.NewWithConfig(log.DefaultConfig())
	}

	copy(m.memory[FontAddress:], font[:])
	copy(m.memory[ProgramStart:], program)
	return m, nil
}

// Framebuffer returns the display. The returned value must only be read.
func (m *Machine) Framebuffer() *Framebuffer {
	return &m.display
}

// Snapshot returns a copy of the display that is not affected by further
// execution.
func (m *Machine) Snapshot() Framebuffer {
	return m.display
}

// SoundTimer returns the current sound timer value. A tone should be played
// while it is not zero.
func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the address register.
func (m *Machine) I() uint16 {
	return m.i
}

// V returns the value of register VX. Only the low nibble of x is used.
func (m *Machine) V(x uint8) uint8 {
	return m.v[x&0xF]
}

// StackDepth returns the number of return addresses on the call stack.
func (m *Machine) StackDepth() int {
	return int(m.sp)
}

// Memory returns the byte at the given address, wrapped to the 4KB space.
func (m *Machine) Memory(address uint16) byte {
	return m.memory[address&addressMask]
}

// KeyPressed returns whether the key is currently held down.
func (m *Machine) KeyPressed(key uint8) bool {
	return key < KeyCount && m.keys[key]
}

// AwaitingKey returns whether execution is suspended until a key press.
func (m *Machine) AwaitingKey() bool {
	return m.waitingForKey
}

// Halted returns whether a fault stopped the machine.
func (m *Machine) Halted() bool {
	return m.fault != nil
}

// Fault returns the fault that halted the machine or nil.
func (m *Machine) Fault() error {
	if m.fault == nil {
		return nil
	}
	return m.fault
}

func (m *Machine) read(address uint16) byte {
	return m.memory[address&addressMask]
}

// write stores a byte in memory. Writes below ProgramStart are dropped to
// keep the font intact.
func (m *Machine) write(address uint16, value byte) {
	address &= addressMask
	if address < ProgramStart {
		m.logger.Debug("Ignoring write to interpreter memory",
			log.Hex("address", address),
			log.Hex("pc", m.pc))
		return
	}
	m.memory[address] = value
}

func (m *Machine) push(address uint16) error {
	if int(m.sp) >= StackSize {
		return ErrStackOverflow
	}
	m.stack[m.sp] = address
	m.sp++
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, ErrStackUnderflow
	}
	m.sp--
	return m.stack[m.sp], nil
}

func (m *Machine) setFlag(set bool) {
	if set {
		m.v[FlagRegister] = 1
	} else {
		m.v[FlagRegister] = 0
	}
}
