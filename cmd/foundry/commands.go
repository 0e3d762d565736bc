/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openehr-go/foundation/pkg/basetypes"
	"github.com/openehr-go/foundation/pkg/goutils/logger"
	"github.com/openehr-go/foundation/pkg/jsonits"
	"github.com/openehr-go/foundation/pkg/schemas"
)

const version = "0.1.0"

func execRootCmd(args []string, ver string) error {
	rootCmd := &cobra.Command{
		Use:   "foundry",
		Short: "Inspection tool for the foundation type system",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if ok, _ := cmd.Flags().GetBool("verbose"); ok {
				logger.SetLogLevel(logger.LogLevelVerbose)
			}
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.SilenceUsage = true
	rootCmd.SetArgs(args[1:])
	rootCmd.AddCommand(newKindsCmd(), newSchemasCmd(), newCheckCmd(), newVersionCmd(ver))
	return rootCmd.Execute()
}

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "foundry version %s\n", ver)
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the primitive kinds, their widths and capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tWIDTH\tORDERED\tNUMERIC")
			for k := basetypes.PrimitiveKind_null + 1; k < basetypes.PrimitiveKind_Count; k++ {
				width := "var"
				if k.IsFixed() {
					width = fmt.Sprintf("%d bit", k.Width())
				}
				fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", k.TrimString(), width, k.IsOrdered(), k.IsNumeric())
			}
			return w.Flush()
		},
	}
}

func newSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas <dir>",
		Short: "Load schema bindings from a directory and list them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := schemas.NewRegistry()
			n, err := schemas.LoadDir(os.DirFS(args[0]), reg)
			if err != nil {
				return err
			}
			logger.Verbose("loaded", n, "binding(s) from", args[0])
			for _, t := range reg.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), t.String())
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir> <doc.json>",
		Short: "Report the type identity of a serialized document and its schema coverage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := schemas.NewRegistry()
			if _, err := schemas.LoadDir(os.DirFS(args[0]), reg); err != nil {
				return err
			}
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			t, err := documentType(raw)
			if err != nil {
				return err
			}
			if _, bound := reg.Lookup(t); bound {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: schema-backed\n", t)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t, jsonits.ReasonNoSchemaBinding)
			}
			return nil
		},
	}
}

// documentType extracts the "_type" discriminator of a serialized form.
func documentType(raw []byte) (basetypes.QName, error) {
	doc := map[string]any{}
	if err := jsonits.JSONUnmarshal(raw, &doc); err != nil {
		return basetypes.NullQName, err
	}
	s, ok := doc[jsonits.TypeAttr].(string)
	if !ok {
		return basetypes.NullQName, basetypes.ErrNotFound("«%s» attribute in document", jsonits.TypeAttr)
	}
	return basetypes.ParseQName(s)
}
