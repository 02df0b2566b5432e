package syncgateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_DoublesUpToCap(t *testing.T) {
	assert.Equal(t, 5*time.Second, backoff(0))
	assert.Equal(t, 10*time.Second, backoff(1))
	assert.Equal(t, 40*time.Second, backoff(3))
	assert.Equal(t, 10*time.Minute, backoff(7))

	// Runaway attempt counts never overflow the shift.
	assert.Equal(t, 10*time.Minute, backoff(500))
}
