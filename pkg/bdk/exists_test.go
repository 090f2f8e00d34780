package bdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExists(t *testing.T) {
	t.Parallel()

	assert.False(t, Exists(""))
	assert.True(t, Exists(" "))
	assert.True(t, Exists("testnet"))
}

func TestExistsInt(t *testing.T) {
	t.Parallel()

	assert.False(t, ExistsInt(nil))
	assert.True(t, ExistsInt(intPtr(0)))
	assert.True(t, ExistsInt(intPtr(-1)))
}
