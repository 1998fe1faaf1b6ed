package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AnickaBurova/regex-parsers/schema"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		path      string
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a schema file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.LoadFile(path)
			if err != nil {
				return err
			}

			res := f.Validate()
			out := cmd.OutOrStdout()

			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			a.logger.Debug("schema checked",
				zap.String("schema", path),
				zap.Int("errors", len(res.Errors)),
				zap.Int("warnings", len(res.Warnings)))

			if res.HasErrors() {
				return fmt.Errorf("%s: %d errors", path, len(res.Errors))
			}

			if normalize {
				data, err := schema.Marshal(f)
				if err != nil {
					return err
				}

				_, err = out.Write(data)

				return err
			}

			fmt.Fprintf(out, "ok: %d parsers\n", len(f.Parsers))

			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "schema", "s", "", "schema file")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "print the schema with its defaults filled in")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
