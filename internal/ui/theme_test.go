package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hunterline/internal/engine"
)

func TestDelta(t *testing.T) {
	assert.Equal(t, "", Delta(0))
	assert.Contains(t, Delta(3), "+3")
	assert.Contains(t, Delta(-1), "-1")
}

func TestExpBarClampsToWidth(t *testing.T) {
	full := ExpBar(500, 100, 10)
	assert.Equal(t, 10, strings.Count(full, "█"))
	assert.Equal(t, 0, strings.Count(full, "░"))

	half := ExpBar(50, 100, 10)
	assert.Equal(t, 5, strings.Count(half, "█"))
	assert.Equal(t, 5, strings.Count(half, "░"))

	assert.Equal(t, 20, strings.Count(ExpBar(0, 0, 0), "░"))
}

func TestEventLineKeepsMessage(t *testing.T) {
	e := engine.Event{Kind: engine.EventQuestFailed, Message: `You failed to complete "Run". Agility -1.`}
	assert.Contains(t, EventLine(e), e.Message)
}
