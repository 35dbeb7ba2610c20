package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer

	quiet := New(&buf, false)
	assert.Equal(t, log.InfoLevel, quiet.GetLevel())
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	loud := New(&buf, true)
	assert.Equal(t, log.DebugLevel, loud.GetLevel())
	loud.Debug("shown", "id", "ARM::CMSIS")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "ARM::CMSIS")
}
