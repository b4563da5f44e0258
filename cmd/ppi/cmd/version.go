package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/ppinterpreter/internal/version"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// needs neither configuration nor logger
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			s := newStyles(a.stdout, a.noColor)

			fmt.Fprintf(a.stdout, "%s\n", s.header.Render("ppi v"+info.Version))
			fmt.Fprintf(a.stdout, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(a.stdout, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(a.stdout, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(a.stdout, "  OS/Arch:    %s\n", info.Platform)
			fmt.Fprintf(a.stdout, "  Components: lexer %s, parser %s, ast %s\n",
				version.ComponentVersion("lexer"), version.ComponentVersion("parser"), version.ComponentVersion("ast"))
		},
	}
}
