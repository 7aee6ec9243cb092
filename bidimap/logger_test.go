package bidimap

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Trace,
	}))
	t.Cleanup(func() { SetLogger(nil) })

	m := New(P("a", 1))
	m.Delete("a")
	m.Clear()

	out := buf.String()
	assert.Contains(t, out, "bidimap")
	assert.Contains(t, out, "Set a -> 1")
	assert.Contains(t, out, "Deleted a (was 1)")
	assert.Contains(t, out, "Cleared map")
}

func TestSetLogger_InvariantViolation(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Error,
	}))
	t.Cleanup(func() { SetLogger(nil) })

	m := New(P("a", 1))
	delete(m.reverse, 1)

	assert.Panics(t, func() { m.Delete("a") })
	assert.Contains(t, buf.String(), "BUG: delete")
	assert.NotContains(t, buf.String(), "Set a -> 1")
}

func TestSetLogger_ValidateDoesNotLog(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Error,
	}))
	t.Cleanup(func() { SetLogger(nil) })

	m := New(P("a", 1))
	delete(m.reverse, 1)

	assert.Error(t, m.Validate())
	assert.Empty(t, buf.String())
}
