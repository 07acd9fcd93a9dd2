package state

import (
	"github.com/spf13/cobra"
	"github/chapool/cosmos-wallet/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("state",
		newApply(),
		newShow(),
	)
}
