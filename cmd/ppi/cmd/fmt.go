package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/ppinterpreter/foundation/core/log"
	"github.com/msto63/ppinterpreter/internal/lang"
	"github.com/msto63/ppinterpreter/internal/lang/ast"
	"github.com/msto63/ppinterpreter/internal/lang/parser"
)

func (a *app) fmtCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print a source file in canonical layout",
		Long: `Parses the file and prints it again with four-space indentation,
single spaces around operators and only the parentheses the configured
associativity needs. Comments are not preserved.

Example:
  ppi fmt fib.pp
  ppi fmt -w fib.pp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			opts := a.parserOptions()

			ctx, err := lang.ParseFile(path, opts)
			if err != nil {
				return err
			}

			p := ast.NewPrinter()
			p.RightAssociative = opts.Associativity == parser.RightAssociative
			p.PrintContext(ctx)

			if !write {
				_, err = fmt.Fprint(a.stdout, p.String())
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				return lang.Classify(&lang.FileError{Path: path, Err: err}, path, "fmt")
			}
			if err := os.WriteFile(path, []byte(p.String()), info.Mode().Perm()); err != nil {
				return lang.Classify(&lang.FileError{Path: path, Err: err}, path, "fmt")
			}
			a.logger.Info("file formatted", mdwlog.Fields{"path": path})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	return cmd
}
