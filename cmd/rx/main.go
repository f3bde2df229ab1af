// Command rx validates JSON and YAML documents against Rx schemas.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	rx "github.com/codesimply/rx"
	"github.com/codesimply/rx/format"
	"github.com/codesimply/rx/i18n"
	rxjson "github.com/codesimply/rx/source/json"
	rxyaml "github.com/codesimply/rx/source/yaml"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var lang string
	root := &cobra.Command{
		Use:           "rx",
		Short:         "Validate JSON and YAML documents against Rx schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			i18n.SetLanguage(lang)
		},
	}
	root.PersistentFlags().StringVar(&lang, "lang", "en", "failure message language (en, ja)")
	root.AddCommand(newValidateCmd())
	root.AddCommand(newCheckSchemaCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var schemaPath string
	cmd := &cobra.Command{
		Use:   "validate --schema SCHEMA FILE...",
		Short: "Validate data files against a schema",
		Long: `Validate decodes each FILE (JSON or YAML by extension), checks it
against the schema and prints one line per failure:

  <path> failed <expected-type>: <message>

A decode error in one file does not stop the remaining files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}
			bad := 0
			for _, name := range args {
				if !validateFile(cmd, schema, name) {
					bad++
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d documents failed validation", bad, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func newCheckSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-schema FILE...",
		Short: "Compile schema files and report structural defects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, name := range args {
				if _, err := loadSchema(name); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
					bad++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d schemas are invalid", bad, len(args))
			}
			return nil
		},
	}
}

func loadSchema(path string) (*rx.Schema, error) {
	doc, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	reg := rx.NewRegistry()
	if err := format.Register(reg); err != nil {
		return nil, err
	}
	return rx.Compile(doc, reg)
}

func decodeFile(path string) (rx.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rx.Value{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return rxyaml.DecodeValue(data)
	case ".json":
		return rxjson.DecodeValue(data)
	default:
		return rx.Value{}, fmt.Errorf("%s: unsupported extension (want .json, .yaml or .yml)", path)
	}
}

// validateFile reports whether name decoded and validated cleanly.
func validateFile(cmd *cobra.Command, schema *rx.Schema, name string) bool {
	doc, err := decodeFile(name)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
		return false
	}
	res := schema.Validate(doc)
	if res.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
		return true
	}
	for _, f := range res.Failures {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, f)
	}
	return false
}
