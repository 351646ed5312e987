package machine

import (
	"io"

	"github.com/retroenv/retrogolib/log"
)

// Step executes the instruction at the program counter and returns whether
// the framebuffer changed. It does nothing while the machine waits for a key
// or after a fault halted it.
func (m *Machine) Step() bool {
	if m.fault != nil || m.waitingForKey {
		return false
	}

	address := m.pc
	word := uint16(m.read(address))<<8 | uint16(m.read(address+1))
	if m.tracer != nil {
		m.tracer.Trace(address, word)
	}

	ins := Decode(word)
	m.pc += instructionSize

	var render bool
	var err error

	switch ins.Group {
	case 0x0:
		err = m.executeSystem(ins)
	case 0x1:
		m.pc = ins.NNN
	case 0x2:
		err = m.call(ins.NNN)
	case 0x3:
		m.skipIf(m.v[ins.X] == ins.NN)
	case 0x4:
		m.skipIf(m.v[ins.X] != ins.NN)
	case 0x5:
		if ins.N != 0 {
			m.unknownOpcode(address, word)
			break
		}
		m.skipIf(m.v[ins.X] == m.v[ins.Y])
	case 0x6:
		m.v[ins.X] = ins.NN
	case 0x7:
		m.v[ins.X] += ins.NN
	case 0x8:
		if !m.executeALU(ins) {
			m.unknownOpcode(address, word)
		}
	case 0x9:
		if ins.N != 0 {
			m.unknownOpcode(address, word)
			break
		}
		m.skipIf(m.v[ins.X] != m.v[ins.Y])
	case 0xA:
		m.i = ins.NNN
	case 0xB:
		m.jumpWithOffset(ins)
	case 0xC:
		m.v[ins.X] = m.randomByte() & ins.NN
	case 0xD:
		m.drawSprite(ins)
		render = true
	case 0xE:
		if !m.executeKeySkip(ins) {
			m.unknownOpcode(address, word)
		}
	case 0xF:
		if !m.executeMisc(ins) {
			m.unknownOpcode(address, word)
		}
	}

	if err != nil {
		m.halt(address, word, err)
		return false
	}
	return render
}

// executeSystem handles the 0NNN group. Machine code calls are ignored.
func (m *Machine) executeSystem(ins Instruction) error {
	switch ins.Word {
	case 0x00E0:
		m.display.clear()
	case 0x00EE:
		address, err := m.pop()
		if err != nil {
			return err
		}
		m.pc = address
	default:
		m.logger.Debug("Ignoring machine code routine call",
			log.Hex("address", ins.NNN),
			log.Hex("pc", m.pc-instructionSize))
	}
	return nil
}

func (m *Machine) call(address uint16) error {
	if err := m.push(m.pc); err != nil {
		return err
	}
	m.pc = address
	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += instructionSize
	}
}

func (m *Machine) jumpWithOffset(ins Instruction) {
	offset := m.v[0]
	if m.quirks.JumpUsesVX {
		offset = m.v[ins.X]
	}
	m.pc = ins.NNN + uint16(offset)
}

// executeALU handles the 8XYN register arithmetic group. The flag register
// is written after the result so that it wins when X is F.
func (m *Machine) executeALU(ins Instruction) bool {
	vx, vy := m.v[ins.X], m.v[ins.Y]

	switch ins.N {
	case 0x0:
		m.v[ins.X] = vy
	case 0x1:
		m.v[ins.X] = vx | vy
	case 0x2:
		m.v[ins.X] = vx & vy
	case 0x3:
		m.v[ins.X] = vx ^ vy
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		m.v[ins.X] = uint8(sum)
		m.setFlag(sum > 0xFF)
	case 0x5:
		m.v[ins.X] = vx - vy
		m.setFlag(vx >= vy)
	case 0x6:
		value := m.shiftSource(ins)
		m.v[ins.X] = value >> 1
		m.setFlag(value&0x01 != 0)
	case 0x7:
		m.v[ins.X] = vy - vx
		m.setFlag(vy >= vx)
	case 0xE:
		value := m.shiftSource(ins)
		m.v[ins.X] = value << 1
		m.setFlag(value&0x80 != 0)
	default:
		return false
	}
	return true
}

func (m *Machine) shiftSource(ins Instruction) uint8 {
	if m.quirks.ShiftUsesVY {
		return m.v[ins.Y]
	}
	return m.v[ins.X]
}

// randomByte returns a byte from the random source. A failing source yields
// zero and is reported once.
func (m *Machine) randomByte() uint8 {
	var buf [1]byte
	if _, err := io.ReadFull(m.random, buf[:]); err != nil {
		if !m.randomFailed {
			m.randomFailed = true
			m.logger.Warn("Random source failed, using zero", log.Err(err))
		}
		return 0
	}
	return buf[0]
}

// drawSprite XORs N rows of 8 pixels from memory at I onto the display.
// Every pixel wraps around the display edges on its own.
func (m *Machine) drawSprite(ins Instruction) {
	originX := int(m.v[ins.X])
	originY := int(m.v[ins.Y])
	collision := false

	for row := range int(ins.N) {
		data := m.read(m.i + uint16(row))
		y := (originY + row) % DisplayHeight

		for bit := range 8 {
			if data&(0x80>>bit) == 0 {
				continue
			}
			x := (originX + bit) % DisplayWidth
			if m.display.toggle(x, y) {
				collision = true
			}
		}
	}

	m.setFlag(collision)
}

// executeKeySkip handles EX9E and EXA1. Register values above 0xF count as
// a key that is not pressed.
func (m *Machine) executeKeySkip(ins Instruction) bool {
	pressed := m.KeyPressed(m.v[ins.X])

	switch ins.NN {
	case 0x9E:
		m.skipIf(pressed)
	case 0xA1:
		m.skipIf(!pressed)
	default:
		return false
	}
	return true
}

// executeMisc handles the FXNN group of timer, key wait and memory
// transfer instructions.
func (m *Machine) executeMisc(ins Instruction) bool {
	vx := m.v[ins.X]

	switch ins.NN {
	case 0x07:
		m.v[ins.X] = m.delayTimer
	case 0x0A:
		m.waitingForKey = true
		m.waitRegister = ins.X
	case 0x15:
		m.delayTimer = vx
	case 0x18:
		m.soundTimer = vx
	case 0x1E:
		m.i += uint16(vx)
	case 0x29:
		m.i = FontAddress + uint16(vx&0xF)*FontSpriteSize
	case 0x33:
		m.write(m.i, vx/100)
		m.write(m.i+1, vx/10%10)
		m.write(m.i+2, vx%10)
	case 0x55:
		for r := range uint16(ins.X) + 1 {
			m.write(m.i+r, m.v[r])
		}
	case 0x65:
		for r := range uint16(ins.X) + 1 {
			m.v[r] = m.read(m.i + r)
		}
	default:
		return false
	}
	return true
}

func (m *Machine) unknownOpcode(address, word uint16) {
	m.logger.Debug("Skipping unknown opcode",
		log.Hex("address", address),
		log.Hex("opcode", word))
}

// halt stops the machine. The program counter is left pointing at the
// faulting instruction.
func (m *Machine) halt(address, word uint16, err error) {
	m.pc = address
	m.fault = &Fault{
		Address: address,
		Opcode:  word,
		Err:     err,
	}
	m.logger.Debug("Machine halted",
		log.Hex("address", address),
		log.Hex("opcode", word),
		log.Err(err))
}
