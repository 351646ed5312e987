package machine

import "fmt"

// KeyDown marks the key as pressed. A machine waiting for a key stores the
// key index in the waiting register and resumes execution.
func (m *Machine) KeyDown(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}

	m.keys[key] = true
	if m.waitingForKey {
		m.v[m.waitRegister] = key
		m.waitingForKey = false
	}
	return nil
}

// KeyUp marks the key as released.
func (m *Machine) KeyUp(key uint8) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}

	m.keys[key] = false
	return nil
}

// TickTimers decrements the delay and sound timers that are not zero. It is
// meant to be called at 60Hz independent of the instruction rate.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}
