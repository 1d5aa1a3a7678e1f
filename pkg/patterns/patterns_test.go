package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRFC(t *testing.T) {
	va := Default()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"individual", "GODE561231GR8", true},
		{"corporate", "NFI010203AB1", true},
		{"individual with enye", "ÑODE561231GR8", true},
		{"too short", "GOD123", false},
		{"lowercase", "gode561231gr8", false},
		{"letters in date", "GODEAB1231GR8", false},
		{"empty", "", false},
		{"curp is not an rfc", "GODE561231HDFRNN08", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, va.ValidRFC(tt.in))
		})
	}

	assert.True(t, va.ValidRFCIndividual("GODE561231GR8"))
	assert.False(t, va.ValidRFCIndividual("NFI010203AB1"))
	assert.True(t, va.ValidRFCCorporate("NFI010203AB1"))
	assert.False(t, va.ValidRFCCorporate("GODE561231GR8"))
}

func TestValidCURP(t *testing.T) {
	va := Default()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid 1900s", "GODE561231HDFRNN08", true},
		{"valid 2000s leap day", "GODE040229HDFRNNA8", true},
		{"leap day in non-leap year", "GODE030229HDFRNNA8", false},
		{"impossible day", "GODE560231HDFRNN08", false},
		{"impossible month", "GODE561331HDFRNN08", false},
		{"bad sex marker", "GODE561231XDFRNN08", false},
		{"too short", "GODE561231HDF", false},
		{"empty", "", false},
		{"rfc is not a curp", "GODE561231GR8", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, va.ValidCURP(tt.in))
		})
	}
}

func TestValidExpediente(t *testing.T) {
	va := Default()

	tests := []struct {
		in   string
		want bool
	}{
		{"A54/2023/ASEGURAMIENTO", true},
		{"SAT-A54/2023/ASEG", true},
		{"B2/1/x multa", true},
		{"A54/2023/", false},
		{"a54/2023/aseg", false},
		{"sin formato", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, va.ValidExpediente(tt.in), "expediente %q", tt.in)
	}
}

func TestValidCLABE(t *testing.T) {
	va := Default()

	assert.True(t, va.ValidCLABE("012345678901234567"))
	assert.False(t, va.ValidCLABE("01234567890123456"))
	assert.False(t, va.ValidCLABE("0123456789012345678"))
	assert.False(t, va.ValidCLABE("01234567890123456A"))
	assert.False(t, va.ValidCLABE(""))
}

func TestValidDate(t *testing.T) {
	va := Default()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"ordinary date", "15032023", true},
		{"leap day in leap year", "29022024", true},
		{"leap day in common year", "29022023", false},
		{"thirty-first of april", "31042024", false},
		{"zero date", "00000000", false},
		{"iso layout", "2024-01-01", false},
		{"too short", "1503202", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, va.ValidDate(tt.in))
		})
	}
}

func TestValidAmount(t *testing.T) {
	va := Default()

	tests := []struct {
		in   string
		want bool
	}{
		{"236570", true},
		{"0", true},
		{"1234.00", true},
		{"12.5", false},
		{"1,234", false},
		{"$1234", false},
		{"-3", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, va.ValidAmount(tt.in), "amount %q", tt.in)
	}
}

func TestValidBoundedText(t *testing.T) {
	va := New(map[string]int{"nombre": 10}, 20)

	assert.True(t, va.ValidBoundedText("Juan Pérez", "nombre"))
	assert.False(t, va.ValidBoundedText("Juan Pérez García", "nombre"))
	assert.True(t, va.ValidBoundedText("Juan Pérez García", "causa"), "unknown field uses the default limit")
	assert.False(t, va.ValidBoundedText("", "nombre"))
}

func TestPredicatesNeverPanic(t *testing.T) {
	va := Default()

	garbage := []string{"", "   ", "\x00\x01", "���", "ñÑ&&&", "𝟙𝟚𝟛"}
	for _, v := range garbage {
		assert.NotPanics(t, func() {
			va.ValidRFC(v)
			va.ValidCURP(v)
			va.ValidExpediente(v)
			va.ValidCLABE(v)
			va.ValidDate(v)
			va.ValidAmount(v)
			va.ValidBoundedText(v, "nombre")
			va.MatchesAnyIdentifier(v)
		})
	}
}

func TestMatchesAnyIdentifier(t *testing.T) {
	va := Default()

	matching := []string{
		"GODE561231GR8",
		"NFI010203AB1",
		"GODE561231HDFRNN08",
		"012345678901234567",
		"29022024",
		"236570",
		"A54/2023/ASEG",
	}
	for _, v := range matching {
		assert.True(t, va.MatchesAnyIdentifier(v), "identifier %q", v)
	}

	assert.False(t, va.MatchesAnyIdentifier("Juan Pérez García"))
	assert.False(t, va.MatchesAnyIdentifier(""))
}
