package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/spiplot/internal/config"
	"github.com/rileyhilliard/spiplot/internal/errors"
	"github.com/rileyhilliard/spiplot/internal/ui"
	"github.com/spf13/cobra"
)

// newInitCmd creates a new .spiplot.yaml configuration
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .spiplot.yaml configuration",
		Long: `Write a .spiplot.yaml with the default rendering options to the
current directory. Edit it to change colors, idle levels and spacing for
every 'spiplot render' run below this directory.

Examples:
  spiplot init
  spiplot init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					"Cannot determine current directory",
					"Check directory permissions")
			}
			path := filepath.Join(cwd, config.ConfigFileName)
			if err := config.Write(path, config.DefaultConfig(), force); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.RenderStatus(true, "Created "+config.ConfigFileName))
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config")
	return cmd
}

// newCompletionCmd generates shell completion scripts
func newCompletionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion scripts for spiplot.

Examples:
  # Bash
  spiplot completion bash > /etc/bash_completion.d/spiplot

  # Zsh
  spiplot completion zsh > "${fpath[1]}/_spiplot"

  # Fish
  spiplot completion fish > ~/.config/fish/completions/spiplot.fish`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletion(out)
			default:
				return errors.New(errors.ErrInput,
					"Unknown shell: "+args[0],
					"Supported shells: bash, zsh, fish, powershell")
			}
		},
	}
}
