package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacketWriteAndRead(t *testing.T) {
	assert := assert.New(t)

	p := NewPacket()
	off := p.Write([]byte{1, 2, 3})
	assert.Equal(0, off)
	assert.Equal(3, p.Length())

	b, err := p.Read(2)
	if err != nil {
		t.Error(err)
	}
	assert.Equal([]byte{1, 2}, b)
	assert.Equal(1, p.Remaining())
}

func TestPacketReadShort(t *testing.T) {
	p := NewPacketFromBytes([]byte{1, 2})
	_, err := p.Read(3)
	var ce *CodecError
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, ShortRead, ce.Kind)
	}
}

func TestPacketReadAtDoesNotMoveCursor(t *testing.T) {
	assert := assert.New(t)

	p := NewPacketFromBytes([]byte{1, 2, 3, 4})
	b, err := p.ReadAt(2, 2)
	if err != nil {
		t.Error(err)
	}
	assert.Equal([]byte{3, 4}, b)
	assert.Equal(0, p.Pos())
}

func TestPacketByteAtOutOfBounds(t *testing.T) {
	p := NewPacketFromBytes([]byte{1})
	_, err := p.ByteAt(5)
	assert.Error(t, err)
}
