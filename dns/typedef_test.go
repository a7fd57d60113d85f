package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTypeDefDuplicateName(t *testing.T) {
	_, err := NewTypeDef([]FieldDecl{
		{Name: "address", Kind: KindIPv4Address},
		{Name: "Address", Kind: KindIPv4Address},
	})
	var ce *CodecError
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, InvalidFieldDefinition, ce.Kind)
	}
}

func TestNewTypeDefFieldByName(t *testing.T) {
	assert := assert.New(t)

	def, err := NewTypeDef([]FieldDecl{
		{Name: "preference", Kind: KindShort},
		{Name: "exchange", Kind: KindDomainName},
	})
	if err != nil {
		t.Error(err)
	}

	f, ok := def.FieldByName("EXCHANGE")
	assert.True(ok)
	assert.Equal(1, f.Index)
	assert.Equal(KindDomainName, f.Kind)

	_, ok = def.FieldByName("missing")
	assert.False(ok)
}

func TestTypeDefDefaultStringJoinsValues(t *testing.T) {
	def, err := NewTypeDef([]FieldDecl{
		{Name: "preference", Kind: KindShort},
		{Name: "exchange", Kind: KindDomainName},
	})
	if err != nil {
		t.Error(err)
	}

	data := NewRData(def)
	pref, err := NewShort(10)
	if err != nil {
		t.Error(err)
	}
	name, err := NewDomainName("mail.example.com")
	if err != nil {
		t.Error(err)
	}
	if err := data.Append(0, pref); err != nil {
		t.Error(err)
	}
	if err := data.Append(1, name); err != nil {
		t.Error(err)
	}

	assert.Equal(t, "10 mail.example.com.", data.String())
}

func TestTypeDefWithStringer(t *testing.T) {
	def, err := NewTypeDef([]FieldDecl{
		{Name: "address", Kind: KindIPv4Address},
	}, WithStringer(func(r *RData) string {
		return "custom"
	}))
	if err != nil {
		t.Error(err)
	}
	assert.Equal(t, "custom", def.String(NewRData(def)))
}
