// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Hook scripts re-run 'chrb switch --export' whenever the shell is
// about to draw a prompt and eval the result, so a cd into a project
// picks up its ruby without any explicit command. Resolution failures
// are silenced: a broken project declaration should not spam every
// prompt.
const (
	bashHook = `chrb_auto() {
  eval "$(chrb switch --export 2>/dev/null)"
}
if [[ ";${PROMPT_COMMAND};" != *";chrb_auto;"* ]]; then
  PROMPT_COMMAND="chrb_auto${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi
`

	zshHook = `chrb_auto() {
  eval "$(chrb switch --export 2>/dev/null)"
}
autoload -Uz add-zsh-hook
add-zsh-hook chpwd chrb_auto
add-zsh-hook precmd chrb_auto
`
)

var hookCmd = &cobra.Command{
	Use:   "hook [bash|zsh]",
	Short: "Print the shell hook that switches rubies on directory change",
	Long: `Print a shell snippet that re-resolves the project ruby before each
prompt. Wire it into your shell startup file:

  # ~/.bashrc
  eval "$(chrb hook bash)"

  # ~/.zshrc
  eval "$(chrb hook zsh)"`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			fmt.Fprint(cmd.OutOrStdout(), bashHook)
		case "zsh":
			fmt.Fprint(cmd.OutOrStdout(), zshHook)
		}
		return nil
	},
}
