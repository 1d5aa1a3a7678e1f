package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalField(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"EXPEDIENTE", FieldExpediente},
		{"No. de Expediente", FieldExpediente},
		{"expediente", FieldExpediente},
		{"Razón Social", FieldNombre},
		{"TITULAR", FieldNombre},
		{"CLABE Interbancaria", FieldCuenta},
		{"MONTO", FieldImporte},
		{"  IMPORTE: ", FieldImporte},
		{"FOOBAR", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalField(tt.label), "label %q", tt.label)
	}
}

func TestFieldsSetGet(t *testing.T) {
	f := NewFields()

	f.Set(FieldExpediente, "A54/2023/ASEG")
	f.Set(FieldExpediente, "B99/2024/OTRO")
	assert.Equal(t, "A54/2023/ASEG", f.Get(FieldExpediente), "first value wins")

	f.Set(FieldImporte, "100")
	f.Set(FieldImporte, "200")
	assert.Equal(t, []string{"100", "200"}, f.Amounts, "amounts accumulate")
	assert.Equal(t, "100", f.Get(FieldImporte))

	f.Set(FieldRFC, "GODE561231GR8")
	assert.Equal(t, "GODE561231GR8", f.Get(FieldRFC))

	f.Set(FieldCausa, "   ")
	assert.Equal(t, "", f.Get(FieldCausa), "blank values are ignored")
}

func TestFieldsMap(t *testing.T) {
	f := NewFields()
	f.Set(FieldExpediente, "A54/2023/ASEG")
	f.Set(FieldImporte, "100")
	f.Set(FieldImporte, "200")
	f.Set(FieldNombre, "Juan Pérez")

	m := f.Map()
	assert.Equal(t, map[string]string{
		FieldExpediente: "A54/2023/ASEG",
		FieldImporte:    "100",
		FieldNombre:     "Juan Pérez",
	}, m)
}

func TestFieldsMergeAndOverlay(t *testing.T) {
	base := NewFields()
	base.Set(FieldExpediente, "A54/2023/ASEG")
	base.Set(FieldImporte, "100")

	other := NewFields()
	other.Set(FieldExpediente, "B99/2024/OTRO")
	other.Set(FieldCausa, "Crédito fiscal")
	other.Set(FieldImporte, "100")
	other.Set(FieldImporte, "200")

	merged := NewFields()
	merged.Merge(base)
	merged.Merge(other)
	assert.Equal(t, "A54/2023/ASEG", merged.CaseRef, "merge never overwrites")
	assert.Equal(t, "Crédito fiscal", merged.Cause)
	assert.Equal(t, []string{"100", "200"}, merged.Amounts, "merge deduplicates amounts")

	base.Overlay(other)
	assert.Equal(t, "B99/2024/OTRO", base.CaseRef, "overlay overwrites")
	assert.Equal(t, []string{"100", "200"}, base.Amounts)
}

func TestFieldsEmpty(t *testing.T) {
	f := NewFields()
	assert.True(t, f.Empty())

	f.Set(FieldAutoridad, "SAT")
	assert.False(t, f.Empty())
}
