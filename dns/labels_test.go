package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelRegistryFirstWriteWins(t *testing.T) {
	assert := assert.New(t)

	r := NewLabelRegistry()
	r.Register("example.com", 12)
	r.Register("example.com", 99)

	off, ok := r.LookupOffset("EXAMPLE.COM")
	assert.True(ok)
	assert.Equal(12, off)
}

func TestLabelRegistryOffsetBeyondPointerRangeIsMiss(t *testing.T) {
	r := NewLabelRegistry()
	r.Register("example.com", maxPointerOffset)

	_, ok := r.LookupOffset("example.com")
	assert.False(t, ok)
}

func TestLabelRegistryLookupSuffix(t *testing.T) {
	r := NewLabelRegistry()
	r.Register("www.example.com", 20)

	suffix, ok := r.LookupSuffix(20)
	assert.True(t, ok)
	assert.Equal(t, "www.example.com", suffix)
}
