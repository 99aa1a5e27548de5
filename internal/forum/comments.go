package forum

import (
	"context"
	"fmt"

	"github.com/tupyy/fpintro/internal/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Thread is the list of comment bodies of a post.
type Thread struct {
	Post     entity.PostSummary `json:"post"`
	Comments []string           `json:"comments"`
}

// SearchThreads searches query and fetches the comments of the first limit posts concurrently.
// The first failed request aborts the whole search.
func (s *Service) SearchThreads(ctx context.Context, query string, limit int) ([]Thread, error) {
	if limit < 1 {
		return nil, fmt.Errorf("number of posts must be at least 1, got %d", limit)
	}

	listing, errResp := s.Search(ctx, query, limit)
	if errResp != nil {
		return nil, errResp
	}

	posts := Posts(listing.Data.Children)
	if len(posts) > limit {
		posts = posts[:limit]
	}

	threads := make([]Thread, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	for i, post := range posts {
		i, post := i, post
		g.Go(func() error {
			thread, errResp := s.GetComments(gctx, post.Permalink)
			if errResp != nil {
				zap.S().Warnw("cannot get comments", "permalink", post.Permalink, "code", errResp.Code)
				return errResp
			}

			threads[i] = Thread{
				Post:     Summarize([]entity.Post{post})[0],
				Comments: CommentBodies(Comments(thread)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return threads, nil
}
