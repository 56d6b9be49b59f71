package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("0s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("-1s", time.Minute))
}
