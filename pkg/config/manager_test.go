package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetString(t *testing.T) {
	m := NewManager()

	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("MINTTERM_TEST_KEY", "value")
		v, err := m.GetString("MINTTERM_TEST_KEY")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})

	t.Run("errors when missing", func(t *testing.T) {
		_, err := m.GetString("MINTTERM_MISSING_KEY")
		assert.Error(t, err)
	})
}

func TestGetStringWithDefault(t *testing.T) {
	m := NewManager()

	assert.Equal(t, "fallback", m.GetStringWithDefault("MINTTERM_MISSING_KEY", "fallback"))

	t.Setenv("MINTTERM_TEST_KEY", "set")
	assert.Equal(t, "set", m.GetStringWithDefault("MINTTERM_TEST_KEY", "fallback"))
}

func TestGetIntWithDefault(t *testing.T) {
	m := NewManager()

	assert.Equal(t, 42, m.GetIntWithDefault("MINTTERM_MISSING_KEY", 42))

	t.Setenv("MINTTERM_TEST_INT", "7")
	assert.Equal(t, 7, m.GetIntWithDefault("MINTTERM_TEST_INT", 42))

	t.Setenv("MINTTERM_TEST_INT", "not-a-number")
	assert.Equal(t, 42, m.GetIntWithDefault("MINTTERM_TEST_INT", 42))
}

func TestGetBoolWithDefault(t *testing.T) {
	m := NewManager()

	assert.True(t, m.GetBoolWithDefault("MINTTERM_MISSING_KEY", true))
	assert.False(t, m.GetBoolWithDefault("MINTTERM_MISSING_KEY", false))

	t.Setenv("MINTTERM_TEST_BOOL", "true")
	assert.True(t, m.GetBoolWithDefault("MINTTERM_TEST_BOOL", false))

	t.Setenv("MINTTERM_TEST_BOOL", "garbage")
	assert.False(t, m.GetBoolWithDefault("MINTTERM_TEST_BOOL", false))
}
