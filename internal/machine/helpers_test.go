package machine

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestMachine creates a machine running the given instruction words.
func newTestMachine(t *testing.T, words ...uint16) *Machine {
	t.Helper()
	return newTestMachineWithOptions(t, nil, words...)
}

func newTestMachineWithOptions(t *testing.T, options []Option, words ...uint16) *Machine {
	t.Helper()

	program := make([]byte, 0, len(words)*instructionSize)
	for _, word := range words {
		program = append(program, byte(word>>8), byte(word))
	}

	options = append([]Option{WithLogger(log.NewTestLogger(t))}, options...)
	m, err := New(program, options...)
	assert.NoError(t, err)
	return m
}

// stepN executes count instructions.
func stepN(m *Machine, count int) {
	for range count {
		m.Step()
	}
}
