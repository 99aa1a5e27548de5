package forum

import (
	"context"

	"github.com/tupyy/fpintro/internal/anyeither"
	"github.com/tupyy/fpintro/internal/either"
	"github.com/tupyy/fpintro/internal/entity"
	"github.com/tupyy/fpintro/internal/future"
	"github.com/tupyy/fpintro/internal/maybe"
)

// TopPostsMaybe summarizes the posts of sort. Any failure, or a listing without children, is absent.
func (s *Service) TopPostsMaybe(ctx context.Context, sort string) maybe.Maybe[[]entity.PostSummary] {
	return summarizeListing(s.GetPostsMaybe(ctx, sort))
}

// TopPostsEither keeps the error response on the left arm.
func (s *Service) TopPostsEither(ctx context.Context, sort string) either.Either[*entity.ErrorResponse, []entity.PostSummary] {
	posts := s.GetPostsEither(ctx, sort)

	data := either.Map(posts, func(l entity.Listing) entity.ListingData { return l.Data })
	children := either.Map(data, func(d entity.ListingData) []entity.Thing { return d.Children })

	return either.Map(children, func(c []entity.Thing) []entity.PostSummary { return Summarize(Posts(c)) })
}

func (s *Service) TopPostsAnyEither(ctx context.Context, sort string) anyeither.AnyEither {
	return s.GetPostsAnyEither(ctx, sort).
		Map(func(v any) any { return v.(entity.Listing).Data }).
		Map(func(v any) any { return v.(entity.ListingData).Children }).
		Map(func(v any) any { return Summarize(Posts(v.([]entity.Thing))) })
}

// TopPostsAsync does not fetch anything for an empty sort.
func (s *Service) TopPostsAsync(ctx context.Context, sort string) *future.Future[maybe.Maybe[[]entity.PostSummary]] {
	listing := maybe.FlatMapAsync(maybe.Of(sort), func(sort string) *future.Future[maybe.Maybe[entity.Listing]] {
		return s.GetPostsAsync(ctx, sort)
	})

	return future.Then(listing, func(m maybe.Maybe[entity.Listing]) (maybe.Maybe[[]entity.PostSummary], error) {
		return summarizeListing(m), nil
	})
}

func summarizeListing(listing maybe.Maybe[entity.Listing]) maybe.Maybe[[]entity.PostSummary] {
	data := maybe.Map(listing, func(l entity.Listing) entity.ListingData { return l.Data })
	children := maybe.Map(data, func(d entity.ListingData) []entity.Thing { return d.Children })

	return maybe.Map(children, func(c []entity.Thing) []entity.PostSummary { return Summarize(Posts(c)) })
}
