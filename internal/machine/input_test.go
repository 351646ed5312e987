package machine

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyDownUp(t *testing.T) {
	m := newTestMachine(t)

	assert.NoError(t, m.KeyDown(0xC))
	assert.True(t, m.KeyPressed(0xC))
	assert.False(t, m.KeyPressed(0xD))

	assert.NoError(t, m.KeyUp(0xC))
	assert.False(t, m.KeyPressed(0xC))
}

func TestKey_InvalidIndex(t *testing.T) {
	m := newTestMachine(t)

	assert.True(t, errors.Is(m.KeyDown(KeyCount), ErrInvalidKey))
	assert.True(t, errors.Is(m.KeyUp(0xFF), ErrInvalidKey))
	assert.False(t, m.KeyPressed(KeyCount))
}

func TestKeyDown_ResolvesWait(t *testing.T) {
	m := newTestMachine(t,
		0xF30A, // ld V3, K
		0x6101, // ld V1, $01
	)

	m.Step()
	assert.True(t, m.AwaitingKey())

	assert.NoError(t, m.KeyDown(0x7))
	assert.False(t, m.AwaitingKey())
	assert.Equal(t, uint8(0x7), m.V(3))

	// a second key press without a new wait only updates the key state
	assert.NoError(t, m.KeyDown(0x9))
	assert.Equal(t, uint8(0x7), m.V(3))
	assert.True(t, m.KeyPressed(0x9))

	m.Step()
	assert.Equal(t, uint8(1), m.V(1))
	assert.Equal(t, uint16(ProgramStart+4), m.PC())
}

func TestKeyUp_DoesNotResolveWait(t *testing.T) {
	m := newTestMachine(t, 0xF30A)
	assert.NoError(t, m.KeyDown(0x2))

	m.Step()
	assert.True(t, m.AwaitingKey())

	assert.NoError(t, m.KeyUp(0x2))
	assert.True(t, m.AwaitingKey())
	assert.Equal(t, uint8(0), m.V(3))
}

func TestKeyDown_WithoutWait(t *testing.T) {
	m := newTestMachine(t)
	m.v[0] = 0x33

	assert.NoError(t, m.KeyDown(0x5))
	assert.Equal(t, uint8(0x33), m.V(0))
	assert.False(t, m.AwaitingKey())
}

func TestTickTimers(t *testing.T) {
	m := newTestMachine(t)

	m.TickTimers()
	assert.Equal(t, uint8(0), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())

	m.delayTimer = 2
	m.soundTimer = 1

	m.TickTimers()
	assert.Equal(t, uint8(1), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())

	m.TickTimers()
	m.TickTimers()
	assert.Equal(t, uint8(0), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())
}
