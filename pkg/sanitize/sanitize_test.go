package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	s := Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain value", "Juan Pérez", "Juan Pérez"},
		{"surrounding whitespace", "  Juan   Pérez  ", "Juan Pérez"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"underscore filler", "____", ""},
		{"spaced filler", "_ _ _", ""},
		{"nbsp entities", "&nbsp;&nbsp;", ""},
		{"entity inside value", "Juan&nbsp;Pérez", "Juan Pérez"},
		{"break tag", "Dato<br/>partido", "Dato partido"},
		{"literal newline", "linea\notra", "linea otra"},
		{"null phrase exact", "NO SE CUENTA", ""},
		{"null phrase lowercase", "no se cuenta", ""},
		{"null phrase padded", "  sin datos  ", ""},
		{"null phrase slash", "N/A", ""},
		{"crossed out", "XXX", ""},
		{"value containing null word", "CUENTA 1234", "CUENTA 1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Clean(tt.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	s := Default()

	inputs := []string{
		"  Juan   Pérez  ",
		"&nbsp;Juan<br/>Pérez&nbsp;",
		"NO SE CUENTA",
		"____",
		"",
		"$236,569.68",
		"ya limpio",
		"\t\n mixto \r\n",
	}
	for _, in := range inputs {
		once := s.Clean(in)
		assert.Equal(t, once, s.Clean(once), "Clean must be idempotent for %q", in)
	}
}

func TestCleanNeverPanics(t *testing.T) {
	s := Default()

	// Garbage in, empty or cleaned string out. Never a panic.
	garbage := []string{
		"\x00\x01\x02",
		"���",
		string(rune(0xD800)),
		"ñÑáÁ&&&<<>>",
	}
	for _, in := range garbage {
		require.NotPanics(t, func() { s.Clean(in) })
		require.NotPanics(t, func() { s.CleanAmount(in) })
	}
}

func TestCleanAmount(t *testing.T) {
	s := Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"symbol and separators", "$236,569.68", "236570"},
		{"bare integer", "236569", "236569"},
		{"zero fraction", "1234.00", "1234"},
		{"half rounds up", "0.5", "1"},
		{"national currency suffix", "$ 1,000,000 M.N.", "1000000"},
		{"code prefix", "MXN 500.49", "500"},
		{"negative rejected", "-42", ""},
		{"not a number", "abc", ""},
		{"empty", "", ""},
		{"null phrase", "NO SE CUENTA", ""},
		{"symbol only", "$", ""},
		{"zero", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CleanAmount(tt.in))
		})
	}
}

func TestNewCustomPhrases(t *testing.T) {
	s := New([]string{"vacío"})

	assert.Equal(t, "", s.Clean("VACÍO"))
	assert.Equal(t, "NO SE CUENTA", s.Clean("NO SE CUENTA"), "custom list replaces the default list")
}
