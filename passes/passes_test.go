package passes

import (
	"testing"

	"github.com/gomlx/hlo2tf/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPass struct{ name string }

func (p nopPass) Name() string           { return p.name }
func (p nopPass) Description() string    { return "does nothing" }
func (p nopPass) Run(m *ir.Module) error { return nil }

func TestRegisterAndGet(t *testing.T) {
	Register(Registration{
		Name:        "test-nop",
		Description: "does nothing",
		New:         func() Pass { return nopPass{name: "test-nop"} },
	})

	reg, found := Get("test-nop")
	require.True(t, found)
	assert.Equal(t, "test-nop", reg.Name)
	require.NoError(t, reg.New().Run(ir.NewModule("empty")))

	_, found = Get("no-such-pass")
	assert.False(t, found)
	assert.Contains(t, Names(), "test-nop")
}

func TestRegisterTwicePanics(t *testing.T) {
	Register(Registration{
		Name: "test-dup",
		New:  func() Pass { return nopPass{name: "test-dup"} },
	})
	require.Panics(t, func() {
		Register(Registration{
			Name: "test-dup",
			New:  func() Pass { return nopPass{name: "test-dup"} },
		})
	})
}
