package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/ppinterpreter/internal/lang"
	"github.com/msto63/ppinterpreter/internal/lang/ast"
)

var astFormats = []string{"tree", "yaml", "json"}

func (a *app) astCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a source file",
		Long: `Parses the file and prints its syntax tree: function definitions in
name order, then the program body.

Formats:
  tree  indented outline with source lines (default)
  yaml  nested mappings
  json  nested objects

Example:
  ppi ast --format json fib.pp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q (want %s)", format, strings.Join(astFormats, ", "))
			}

			ctx, err := lang.ParseFile(args[0], a.parserOptions())
			if err != nil {
				return err
			}

			out, err := renderAST(ctx, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.stdout, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tree", "output format: "+strings.Join(astFormats, ", "))
	return cmd
}

func validFormat(format string) bool {
	for _, f := range astFormats {
		if f == format {
			return true
		}
	}
	return false
}

func renderAST(ctx *ast.ProgramContext, format string) (string, error) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(ast.ContextToMap(ctx))
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "json":
		data, err := json.MarshalIndent(ast.ContextToMap(ctx), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return ast.DumpContext(ctx), nil
	}
}
