package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/normafin/fieldfusion/pkg/extract"
	"github.com/normafin/fieldfusion/pkg/patterns"
	"github.com/normafin/fieldfusion/pkg/sanitize"
)

var validateCmd = &cobra.Command{
	Use:   "validate <fields.yaml>",
	Short: "Check field values against their format predicates",
	Long: `Validate sanitizes each value in a yaml map of field name to raw
value and reports whether the cleaned value passes the format predicate
for that field. A failed predicate is a warning, never an error: the
exit status stays zero for messy data.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading fields: %w", err)
		}

		var fields map[string]string
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("parsing fields: %w", err)
		}

		san := sanitize.Default()
		pats := patterns.Default()

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		type check struct {
			Field string `yaml:"field"`
			Value string `yaml:"value,omitempty"`
			Valid bool   `yaml:"valid"`
		}
		var report []check
		for _, name := range names {
			var value string
			if name == extract.FieldImporte {
				value = san.CleanAmount(fields[name])
			} else {
				value = san.Clean(fields[name])
			}
			report = append(report, check{
				Field: name,
				Value: value,
				Valid: checkField(pats, name, value),
			})
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// checkField applies the predicate matching a canonical field name;
// fields without a dedicated format fall back to the bounded-text rule.
func checkField(pats *patterns.Validator, field, value string) bool {
	switch field {
	case extract.FieldRFC:
		return pats.ValidRFC(value)
	case extract.FieldCURP:
		return pats.ValidCURP(value)
	case extract.FieldCuenta:
		return pats.ValidCLABE(value)
	case extract.FieldFecha:
		return pats.ValidDate(value)
	case extract.FieldImporte:
		return pats.ValidAmount(value)
	case extract.FieldExpediente:
		return pats.ValidExpediente(value)
	default:
		return pats.ValidBoundedText(value, field)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
