package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCharRange(t *testing.T) {
	assert := assert.New(t)

	v, err := NewChar(255)
	if err != nil {
		t.Error(err)
	}
	assert.Equal(uint8(255), v.Value())

	_, err = NewChar(256)
	assert.EqualError(err, "dns: new char: field value out of range: value 256 out of range [0,255]")

	_, err = NewChar(-1)
	assert.Error(err)
}

func TestNewShortRange(t *testing.T) {
	assert := assert.New(t)

	v, err := NewShort(65535)
	if err != nil {
		t.Error(err)
	}
	assert.Equal(uint16(65535), v.Value())

	_, err = NewShort(65536)
	assert.Error(err)
}

func TestNewLongRange(t *testing.T) {
	assert := assert.New(t)

	v, err := NewLong(4294967295)
	if err != nil {
		t.Error(err)
	}
	assert.Equal(uint32(4294967295), v.Value())

	_, err = NewLong(4294967296)
	assert.Error(err)

	_, err = NewLong(-1)
	assert.Error(err)
}

func TestNewCharacterStringTooLong(t *testing.T) {
	b := make([]byte, 256)
	_, err := NewCharacterString(b)
	assert.EqualError(t, err, "dns: new character-string: field value out of range: length 256 exceeds 255 octets")
}

func TestNewIPv4AddressFromString(t *testing.T) {
	v, err := NewIPv4Address("192.168.0.1")
	if err != nil {
		t.Error(err)
	}
	assert.Equal(t, [4]byte{192, 168, 0, 1}, v.Value())
	assert.Equal(t, "192.168.0.1", v.String())
}

func TestNewIPv4AddressFromOctets(t *testing.T) {
	v, err := NewIPv4Address([]byte{10, 0, 0, 1})
	if err != nil {
		t.Error(err)
	}
	assert.Equal(t, [4]byte{10, 0, 0, 1}, v.Value())
}

func TestNewIPv4AddressFromPackedUint32(t *testing.T) {
	v, err := NewIPv4Address(uint32(0xC0A80001))
	if err != nil {
		t.Error(err)
	}
	assert.Equal(t, "192.168.0.1", v.String())
}

func TestNewIPv6AddressRoundTrip(t *testing.T) {
	v, err := NewIPv6Address("2001:db8::1")
	if err != nil {
		t.Error(err)
	}
	assert.Equal(t, "2001:db8::1", v.String())

	groups := v.Value()
	v2, err := NewIPv6Address(groups)
	if err != nil {
		t.Error(err)
	}
	assert.Equal(t, v.String(), v2.String())
}

func TestNewIPv6AddressAcceptsIPv4MappedForm(t *testing.T) {
	v, err := NewIPv6Address("::ffff:192.168.1.1")
	if err != nil {
		t.Error(err)
	}
	groups := v.Value()
	assert.Equal(t, uint16(0), groups[0])
	assert.Equal(t, uint16(0xffff), groups[5])
	assert.Equal(t, uint16(0xc0a8), groups[6])
	assert.Equal(t, uint16(0x0101), groups[7])
}

func TestNewIPv6AddressRejectsPlainIPv4String(t *testing.T) {
	_, err := NewIPv6Address("192.168.1.1")
	var ce *CodecError
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, FieldValueOutOfRange, ce.Kind)
	}
}

func TestNewDomainNameTrailingDot(t *testing.T) {
	assert := assert.New(t)

	v, err := NewDomainName("example.com.")
	if err != nil {
		t.Error(err)
	}
	assert.Equal([]string{"example", "com"}, v.Labels())
	assert.Equal("example.com.", v.String())
}

func TestNewDomainNameRoot(t *testing.T) {
	v, err := NewDomainName(".")
	if err != nil {
		t.Error(err)
	}
	assert.Empty(t, v.Labels())
	assert.Equal(t, ".", v.String())
}

func TestNewDomainNameLabelTooLong(t *testing.T) {
	label := make([]byte, 64)
	for i := range label {
		label[i] = 'a'
	}
	_, err := NewDomainName(string(label) + ".com")
	var ce *CodecError
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, FieldValueOutOfRange, ce.Kind)
	}
}

func TestNewDomainNameEqualIsCaseInsensitive(t *testing.T) {
	a, err := NewDomainName("Example.COM")
	if err != nil {
		t.Error(err)
	}
	b, err := NewDomainName("example.com")
	if err != nil {
		t.Error(err)
	}
	assert.True(t, a.Equal(b))
}

func TestBitMapTest(t *testing.T) {
	// Bit 0 and bit 9 set: byte 0 = 0x80, byte 1 = 0x40.
	bm := NewBitMap([]byte{0x80, 0x40})
	assert.True(t, bm.Test(0))
	assert.False(t, bm.Test(1))
	assert.True(t, bm.Test(9))
	assert.Equal(t, []byte{0x80, 0x40}, bm.Value())
}
