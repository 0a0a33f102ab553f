package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	ts := time.Date(2024, 5, 1, 16, 20, 30, 123456789, loc)

	assert.Equal(t, "2024-05-01T10:20:30.123Z", ISOTimestamp(ts))
}
