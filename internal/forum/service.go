// Package forum lifts the answers of the Reddit api into the containers of this module.
// Each GetPosts* method shows one way of carrying a failure: a raw error response, an
// Either, an AnyEither, a Maybe (which drops the error detail) or a future of a Maybe.
package forum

//go:generate mockgen -source=service.go -destination=fetcher_mock.go -package=forum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tupyy/fpintro/internal/anyeither"
	"github.com/tupyy/fpintro/internal/either"
	"github.com/tupyy/fpintro/internal/entity"
	"github.com/tupyy/fpintro/internal/future"
	"github.com/tupyy/fpintro/internal/maybe"
	"go.uber.org/zap"
)

const (
	defaultSubreddit = "subreddit"
	postsLimit       = 10
)

// Fetcher gets a json document. A failed request yields an ErrorResponse and no data.
type Fetcher interface {
	Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, *entity.ErrorResponse)
}

type Service struct {
	fetcher   Fetcher
	subreddit string
}

func New(fetcher Fetcher, subreddit string) *Service {
	if subreddit == "" {
		subreddit = defaultSubreddit
	}

	return &Service{
		fetcher:   fetcher,
		subreddit: subreddit,
	}
}

func (s *Service) Subreddit() string {
	return s.subreddit
}

// GetPosts returns the posts of the listing named by sort ("new", "hot"...) or the error response.
func (s *Service) GetPosts(ctx context.Context, sort string) (entity.Listing, *entity.ErrorResponse) {
	return fetchJSON[entity.Listing](ctx, s.fetcher, s.postsPath(sort), url.Values{"limit": []string{strconv.Itoa(postsLimit)}})
}

func (s *Service) GetPostsEither(ctx context.Context, sort string) either.Either[*entity.ErrorResponse, entity.Listing] {
	listing, errResp := s.GetPosts(ctx, sort)
	if errResp != nil {
		return either.Left[*entity.ErrorResponse, entity.Listing](errResp)
	}
	return either.Right[*entity.ErrorResponse](listing)
}

func (s *Service) GetPostsAnyEither(ctx context.Context, sort string) anyeither.AnyEither {
	listing, errResp := s.GetPosts(ctx, sort)
	if errResp != nil {
		return anyeither.NothingOf(*errResp)
	}
	return anyeither.SomeOf(listing)
}

// GetPostsMaybe collapses every failure to an absent listing.
func (s *Service) GetPostsMaybe(ctx context.Context, sort string) maybe.Maybe[entity.Listing] {
	listing, errResp := s.GetPosts(ctx, sort)
	if errResp != nil {
		return maybe.Nothing[entity.Listing]()
	}
	return maybe.Of(listing)
}

// GetPostsAsync runs GetPostsMaybe in its own goroutine.
func (s *Service) GetPostsAsync(ctx context.Context, sort string) *future.Future[maybe.Maybe[entity.Listing]] {
	return future.Go(func() (maybe.Maybe[entity.Listing], error) {
		return s.GetPostsMaybe(ctx, sort), nil
	})
}

// Search returns at most limit posts matching query over all subreddits.
func (s *Service) Search(ctx context.Context, query string, limit int) (entity.Listing, *entity.ErrorResponse) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	return fetchJSON[entity.Listing](ctx, s.fetcher, "search.json", q)
}

// GetComments returns the thread behind permalink: the post listing followed by the comment listing.
func (s *Service) GetComments(ctx context.Context, permalink string) ([]entity.Listing, *entity.ErrorResponse) {
	return fetchJSON[[]entity.Listing](ctx, s.fetcher, fmt.Sprintf("%s.json", trimSlash(permalink)), nil)
}

func (s *Service) postsPath(sort string) string {
	return fmt.Sprintf("r/%s/%s.json", s.subreddit, sort)
}

func fetchJSON[T any](ctx context.Context, fetcher Fetcher, path string, query url.Values) (T, *entity.ErrorResponse) {
	var result T

	data, errResp := fetcher.Fetch(ctx, path, query)
	if errResp != nil {
		return result, errResp
	}

	if err := json.Unmarshal(data, &result); err != nil {
		zap.S().Errorw("cannot decode response", "path", path, "error", err)
		return result, entity.NewErrorResponse(0)
	}

	return result, nil
}

func trimSlash(p string) string {
	for len(p) > 1 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}
	return p
}
