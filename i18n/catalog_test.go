package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogsCoverSameKeys(t *testing.T) {
	for key := range persian {
		_, ok := english[key]
		assert.True(t, ok, "missing english message for %s", key)
	}
	for key := range english {
		_, ok := persian[key]
		assert.True(t, ok, "missing persian message for %s", key)
	}
}

func TestNegotiate(t *testing.T) {
	c := NewCatalog("")
	assert.Equal(t, Persian, c.Default())

	tests := []struct {
		header string
		want   string
	}{
		{"", Persian},
		{"en", English},
		{"en-US,en;q=0.9", English},
		{"fa-IR", Persian},
		{"de-DE", Persian},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Negotiate(tt.header), "header %q", tt.header)
	}

	assert.Equal(t, English, NewCatalog(English).Negotiate("de"))
}

func TestT(t *testing.T) {
	c := NewCatalog(Persian)
	assert.Equal(t, "ایمیل یا رمز عبور اشتباه است.", c.T(Persian, InvalidCredentials))
	assert.Equal(t, "Incorrect email or password.", c.T(English, InvalidCredentials))
	assert.Equal(t, "ایمیل یا رمز عبور اشتباه است.", c.T("xx", InvalidCredentials))
	assert.Equal(t, "unknown.key", c.T(English, Key("unknown.key")))
}
