package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Run("IsValid", func(t *testing.T) {
		assert.True(t, StatusPending.IsValid())
		assert.True(t, StatusCompleted.IsValid())
		assert.False(t, Status("cancelled").IsValid())
		assert.False(t, Status("").IsValid())
	})

	t.Run("CanComplete", func(t *testing.T) {
		assert.True(t, StatusPending.CanComplete())
		assert.False(t, StatusCompleted.CanComplete())
	})
}
