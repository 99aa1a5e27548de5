package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tupyy/fpintro/internal/sorting"
)

var (
	sortOrder string
	sortBy    string
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort people with a partially applied comparator",
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := sorting.ParseOrder(sortOrder)
		if err != nil {
			return err
		}

		var compare func(a, b sorting.Person) int
		switch sortBy {
		case "age":
			compare = sorting.ByAge(order)
		case "name":
			compare = sorting.ByName(order)
		default:
			return fmt.Errorf("unknown sort key '%s'", sortBy)
		}

		people := sorting.People()
		slices.SortFunc(people, compare)

		return printResult(cmd.OutOrStdout(), people)
	},
}

func init() {
	sortCmd.Flags().StringVar(&sortOrder, "order", string(sorting.Desc), "sort order: asc or desc")
	sortCmd.Flags().StringVar(&sortBy, "by", "age", "sort key: age or name")
}
