package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginRoundTrips(t *testing.T) {
	for _, o := range Origins() {
		assert.True(t, o.IsValid())
		assert.Equal(t, o, FromCode(o.Code()), "origin %s", o)
		assert.Equal(t, o, Parse(o.String()), "origin %s", o)
	}
}

func TestOriginString(t *testing.T) {
	assert.Equal(t, "xml", XML.String())
	assert.Equal(t, "scan", OpticalScan.String())
	assert.Equal(t, "freetext", FreeText.String())
	assert.Equal(t, "derived", Derived.String())
	assert.Equal(t, "manual", Manual.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Origin(99).String())
}

func TestParse(t *testing.T) {
	assert.Equal(t, OpticalScan, Parse("ocr"))
	assert.Equal(t, FreeText, Parse("docx"))
	assert.Equal(t, XML, Parse("  XML  "))
	assert.Equal(t, Unknown, Parse("garbage"))
	assert.Equal(t, Unknown, Parse(""))
}

func TestInvalidOrigin(t *testing.T) {
	assert.False(t, Origin(99).IsValid())
	assert.False(t, Origin(-1).IsValid())
	assert.Equal(t, Unknown, FromCode(99))
}
