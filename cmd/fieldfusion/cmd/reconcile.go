package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	fieldfusion "github.com/normafin/fieldfusion"
	"github.com/normafin/fieldfusion/pkg/logging"
	"github.com/normafin/fieldfusion/pkg/source"
)

// documentSet is the yaml input shape: one order, three channels.
type documentSet struct {
	Documents []documentInput `yaml:"documents"`
}

type documentInput struct {
	Origin     string            `yaml:"origin"`
	Text       string            `yaml:"text,omitempty"`
	Fields     map[string]string `yaml:"fields,omitempty"`
	Confidence float64           `yaml:"confidence,omitempty"`
}

// fieldOutput is one fused field in the yaml report.
type fieldOutput struct {
	Field      string   `yaml:"field"`
	Value      string   `yaml:"value,omitempty"`
	Decision   string   `yaml:"decision"`
	Confidence float64  `yaml:"confidence"`
	Origins    []string `yaml:"origins,omitempty"`
}

type reconcileReport struct {
	Fields          []fieldOutput `yaml:"fields"`
	Warnings        []string      `yaml:"warnings,omitempty"`
	MandatoryReview bool          `yaml:"mandatory_review"`
	Review          bool          `yaml:"review"`
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <documents.yaml>",
	Short: "Reconcile one order's documents into canonical field values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading document set: %w", err)
		}

		var set documentSet
		if err := yaml.Unmarshal(data, &set); err != nil {
			return fmt.Errorf("parsing document set: %w", err)
		}

		var opts []fieldfusion.Option
		if configFile != "" {
			opts = append(opts, fieldfusion.WithConfigFile(configFile))
		}
		reconciler, err := fieldfusion.New(opts...)
		if err != nil {
			return err
		}

		docs := make([]fieldfusion.Document, 0, len(set.Documents))
		for _, d := range set.Documents {
			docs = append(docs, fieldfusion.Document{
				Origin:     source.Parse(d.Origin),
				Text:       d.Text,
				Fields:     d.Fields,
				Confidence: d.Confidence,
			})
		}

		outcome, err := reconciler.Reconcile(cmd.Context(), docs)
		if err != nil {
			return err
		}

		report := reconcileReport{
			Warnings:        outcome.Record.Warnings(),
			MandatoryReview: outcome.NeedsMandatoryReview(),
			Review:          outcome.NeedsReview(),
		}

		names := make([]string, 0, len(outcome.Fields))
		for name := range outcome.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			result := outcome.Fields[name]
			origins := make([]string, 0, len(result.Origins))
			for _, o := range result.Origins {
				origins = append(origins, o.String())
			}
			report.Fields = append(report.Fields, fieldOutput{
				Field:      name,
				Value:      result.Value,
				Decision:   result.Decision.String(),
				Confidence: result.Confidence,
				Origins:    origins,
			})
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))

		logging.Info().
			Int("fields", len(report.Fields)).
			Bool("mandatory_review", report.MandatoryReview).
			Msg("reconciliation complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
