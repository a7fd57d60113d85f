package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldDeclBare(t *testing.T) {
	assert := assert.New(t)

	name, multi, min, err := parseFieldDecl("address", true)
	if err != nil {
		t.Error(err)
	}
	assert.Equal("address", name)
	assert.False(multi)
	assert.Equal(uint32(1), min)
}

func TestParseFieldDeclLowercases(t *testing.T) {
	name, _, _, err := parseFieldDecl("NsdName", true)
	if err != nil {
		t.Error(err)
	}
	assert.Equal(t, "nsdname", name)
}

func TestParseFieldDeclPlus(t *testing.T) {
	assert := assert.New(t)

	name, multi, min, err := parseFieldDecl("txt+", true)
	if err != nil {
		t.Error(err)
	}
	assert.Equal("txt", name)
	assert.True(multi)
	assert.Equal(uint32(1), min)
}

func TestParseFieldDeclPlusN(t *testing.T) {
	_, multi, min, err := parseFieldDecl("txt+3", true)
	if err != nil {
		t.Error(err)
	}
	assert.True(t, multi)
	assert.Equal(t, uint32(3), min)
}

func TestParseFieldDeclStar(t *testing.T) {
	_, multi, min, err := parseFieldDecl("opt*", true)
	if err != nil {
		t.Error(err)
	}
	assert.True(t, multi)
	assert.Equal(t, uint32(0), min)
}

func TestParseFieldDeclStarN(t *testing.T) {
	_, multi, min, err := parseFieldDecl("opt*2", true)
	if err != nil {
		t.Error(err)
	}
	assert.True(t, multi)
	assert.Equal(t, uint32(2), min)
}

func TestParseFieldDeclQuantifierOnNonFinalRejected(t *testing.T) {
	_, _, _, err := parseFieldDecl("txt+", false)
	var ce *CodecError
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, InvalidFieldDefinition, ce.Kind)
	}
}

func TestParseFieldDeclInvalidName(t *testing.T) {
	_, _, _, err := parseFieldDecl("bad name!", true)
	assert.Error(t, err)
}
