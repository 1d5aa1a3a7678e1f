package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normafin/fieldfusion/pkg/patterns"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "fieldfusion")
}

func TestReconcileCommand(t *testing.T) {
	input := `documents:
  - origin: xml
    fields:
      expediente: SAT-A54/2023/ASEG
      nombre: Pérez López Juan
      cuenta: "012345678901234567"
      accion: Aseguramiento de cuentas
      importe: $236,569.68
  - origin: scan
    confidence: 0.9
    text: |
      EXPEDIENTE: SAT-A54/2023/ASEG
      NOMBRE: Perez Lopez Juan
      CUENTA: 012345678901234567
      IMPORTE: $236,569.68
      SOLICITUD: Aseguramiento de cuentas
`
	path := filepath.Join(t.TempDir(), "documents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	out, err := execute(t, "reconcile", path)

	require.NoError(t, err)
	assert.Contains(t, out, "expediente")
	assert.Contains(t, out, "SAT-A54/2023/ASEG")
	assert.Contains(t, out, "fuzzy_agreement")
	assert.Contains(t, out, "mandatory_review: false")
}

func TestReconcileCommandMissingFile(t *testing.T) {
	_, err := execute(t, "reconcile", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	input := `rfc: GODE561231GR8
cuenta: "0123"
importe: $236,569.68
`
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	out, err := execute(t, "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "field: rfc")
	assert.Contains(t, out, "valid: true")
	assert.Contains(t, out, "valid: false")
}

func TestCheckField(t *testing.T) {
	pats := patterns.Default()

	tests := []struct {
		field string
		value string
		want  bool
	}{
		{"rfc", "GODE561231GR8", true},
		{"rfc", "NOVALIDO", false},
		{"curp", "GODE561231HDFRNN08", true},
		{"cuenta", "012345678901234567", true},
		{"cuenta", "0123", false},
		{"fecha", "29022024", true},
		{"fecha", "29022023", false},
		{"importe", "236570", true},
		{"importe", "$236,569.68", false},
		{"expediente", "A54/2023/ASEG", true},
		{"nombre", "Juan Pérez", true},
		{"nombre", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, checkField(pats, tt.field, tt.value), "%s=%q", tt.field, tt.value)
	}
}
