package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(&out, &errOut, "repro", false)

	logger.Debugf("hidden %d", 1)
	logger.Infof("adapter %s", "ready")
	logger.Warnf("slow frame")
	logger.Errorf("pass %q failed", "quad_rpass")

	assert.Equal(t, "[repro] INFO: adapter ready\n", out.String())
	assert.Equal(t, "[repro] WARN: slow frame\n[repro] ERROR: pass \"quad_rpass\" failed\n", errOut.String())
}

func TestDefaultLogger_SetDebug(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(&out, &errOut, "", false)
	assert.False(t, logger.DebugEnabled())

	logger.SetDebug(true)
	assert.True(t, logger.DebugEnabled())
	logger.Debugf("frame %d", 3)

	assert.Equal(t, "DEBUG: frame 3\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestOrNop(t *testing.T) {
	l := orNop(nil)
	assert.NotNil(t, l)
	assert.False(t, l.DebugEnabled())
	l.Errorf("dropped")

	d := NewLogger(&bytes.Buffer{}, &bytes.Buffer{}, "", true)
	assert.Same(t, d, orNop(d))
}
