package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tupyy/fpintro/internal/either"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input>",
	Short: "Parse an integer, double it and add one, failing on the left arm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := parseInt(args[0]).
			Map(func(n int) int { return n * 2 }).
			Map(func(n int) int { return n + 1 })

		return printResult(cmd.OutOrStdout(), result.Value())
	},
}

func parseInt(input string) either.Either[string, int] {
	n, err := strconv.Atoi(input)
	if err != nil {
		return either.Left[string, int]("error")
	}
	return either.Right[string](n)
}
