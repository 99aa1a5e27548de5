package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tupyy/fpintro/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile <name>",
	Short: "Look up the profile image of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image := store.NewMockUserAPI().ProfileImage(args[0]).GetOrElse("none")
		return printResult(cmd.OutOrStdout(), image)
	},
}
