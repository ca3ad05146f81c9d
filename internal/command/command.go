package command

import (
	commandHandler "patentgate/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewCreateKeyHandler)

type Command struct {
	createKeyCommandHandler *commandHandler.CreateKeyHandler
}

// NewCommand .
func NewCommand(
	createKeyCommandHandler *commandHandler.CreateKeyHandler,
) *Command {
	return &Command{
		createKeyCommandHandler: createKeyCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	createKeyCmd := &cobra.Command{
		Use:   "create-key",
		Short: "issue a partner API key",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.createKeyCommandHandler.CreateKey(cmd, args)
		},
	}
	createKeyCmd.Flags().String("name", "", "partner name (required)")
	createKeyCmd.Flags().String("email", "", "partner contact email (required)")
	createKeyCmd.Flags().Int("rate-limit-minute", 0, "per-minute quota, 0 = default")
	createKeyCmd.Flags().Int("rate-limit-day", 0, "per-day quota, 0 = default")
	createKeyCmd.Flags().Int("expires-in-days", 0, "days until the key expires, 0 = never")
	_ = createKeyCmd.MarkFlagRequired("name")
	_ = createKeyCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(createKeyCmd)
}
