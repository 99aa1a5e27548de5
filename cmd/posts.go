package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tupyy/fpintro/internal/forum"
	"go.uber.org/zap"
)

var (
	postsSort    string
	postsVariant string
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Fetch and summarize the posts of a subreddit",
	Long: `Fetch and summarize the posts of a subreddit.

The variant selects how failures are carried along the pipeline:
  raw        errors are returned directly and the command fails
  maybe      a failure becomes an absent value, printed as null
  either     a failure is kept as the left value and printed
  anyeither  same as either, with a dynamically typed container
  async      like maybe, through futures`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newForumService()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		logger := zap.S().With("subreddit", svc.Subreddit(), "sort", postsSort, "variant", postsVariant)

		switch postsVariant {
		case "raw":
			listing, errResp := svc.GetPosts(ctx, postsSort)
			if errResp != nil {
				return errResp
			}
			return printResult(out, forum.Summarize(forum.Posts(listing.Data.Children)))
		case "maybe":
			posts := svc.TopPostsMaybe(ctx, postsSort)
			logger.Debugw("posts fetched", "posts", posts.String())
			return printResult(out, posts.ToPtr())
		case "either":
			posts := svc.TopPostsEither(ctx, postsSort)
			logger.Debugw("posts fetched", "left", posts.IsLeft())
			return printResult(out, posts.Value())
		case "anyeither":
			posts := svc.TopPostsAnyEither(ctx, postsSort)
			logger.Debugw("posts fetched", "nothing", posts.IsNothing())
			return printResult(out, posts.Value())
		case "async":
			pending := svc.TopPostsAsync(ctx, postsSort)
			if result := pending.Poll(); result.IsPending() {
				logger.Debug("waiting for posts")
			}

			posts, err := pending.Await(ctx)
			if err != nil {
				return err
			}
			return printResult(out, posts.ToPtr())
		default:
			return fmt.Errorf("unknown variant '%s'", postsVariant)
		}
	},
}

func init() {
	postsCmd.Flags().StringVar(&postsSort, "sort", "new", "listing to fetch: new, hot, top")
	postsCmd.Flags().StringVar(&postsVariant, "variant", "maybe", "pipeline variant: raw, maybe, either, anyeither or async")
}
