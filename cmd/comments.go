package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	commentsQuery string
	commentsPosts int
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Search posts and fetch their comments concurrently",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newForumService()
		if err != nil {
			return err
		}

		threads, err := svc.SearchThreads(cmd.Context(), commentsQuery, commentsPosts)
		if err != nil {
			return err
		}
		zap.S().Debugw("threads fetched", "query", commentsQuery, "count", len(threads))

		return printResult(cmd.OutOrStdout(), threads)
	},
}

func init() {
	commentsCmd.Flags().StringVar(&commentsQuery, "query", "reactjs", "search query")
	commentsCmd.Flags().IntVar(&commentsPosts, "posts", 1, "number of posts whose comments are fetched")
}
