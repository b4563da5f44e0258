package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ppinterpreter/internal/lang"
	"github.com/msto63/ppinterpreter/internal/lang/token"
)

func (a *app) tokensCommand() *cobra.Command {
	var withText bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a source file",
		Long: `Prints one token per line as KIND<TAB>line, stopping before the end of
input. An invalid character ends the listing with exit status 3.

Example:
  ppi tokens fib.pp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := lang.TokenizeFile(args[0])

			s := newStyles(a.stdout, a.noColor)
			for _, tok := range tokens {
				if tok.Kind == token.EOF {
					break
				}
				kind := s.token(tok.Kind).Render(tok.Kind.String())
				if withText {
					switch tok.Kind {
					case token.Ident:
						fmt.Fprintf(a.stdout, "%s\t%d\t%s\n", kind, tok.Line, tok.Text)
						continue
					case token.Num:
						fmt.Fprintf(a.stdout, "%s\t%d\t%d\n", kind, tok.Line, tok.Value)
						continue
					}
				}
				fmt.Fprintf(a.stdout, "%s\t%d\n", kind, tok.Line)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&withText, "text", false, "add the text of identifiers and numbers as a third column")
	return cmd
}
