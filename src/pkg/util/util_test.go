package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, SplitList(" a@example.com, ,b@example.com,"))
	assert.Empty(t, SplitList(""))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 6.0, Clamp(2.0, 6.0, 12.0))
	assert.Equal(t, 12.0, Clamp(40.0, 6.0, 12.0))
	assert.Equal(t, 7, Clamp(7, 1, 10))
}

func TestNormalizeFlagName(t *testing.T) {
	assert.Equal(t, "--sender", normalizeFlagName("sender"))
	assert.Equal(t, "--sender", normalizeFlagName("-sender"))
	assert.Equal(t, "--sender", normalizeFlagName("--sender"))
}
