package forum_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tupyy/fpintro/internal/entity"
	"github.com/tupyy/fpintro/internal/forum"
)

const postsJSON = `{
  "kind": "Listing",
  "data": {
    "modhash": "",
    "children": [
      {"kind": "t3", "data": {"id": "a1", "author": "gopher", "title": "Generics", "url": "https://go.dev/blog", "permalink": "/r/golang/comments/a1/generics/", "num_comments": 2}},
      {"kind": "t3", "data": {"id": "a2", "author": "rob", "title": "Errors", "url": "https://go.dev/errors", "permalink": "/r/golang/comments/a2/errors/", "num_comments": 0}}
    ],
    "after": null,
    "before": null
  }
}`

const threadJSON = `[
  {"kind": "Listing", "data": {"children": [{"kind": "t3", "data": {"id": "a1", "title": "Generics"}}]}},
  {"kind": "Listing", "data": {"children": [
    {"kind": "t1", "data": {"id": "c1", "author": "x", "body": "first", "score": 3}},
    {"kind": "more", "data": {"count": 10}},
    {"kind": "t1", "data": {"id": "c2", "author": "y", "body": "second", "score": 1}}
  ]}}
]`

var _ = Describe("forum service", func() {
	var (
		ctrl    *gomock.Controller
		fetcher *forum.MockFetcher
		service *forum.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		fetcher = forum.NewMockFetcher(ctrl)
		service = forum.New(fetcher, "")
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("when the api answers", func() {
		BeforeEach(func() {
			fetcher.EXPECT().
				Fetch(gomock.Any(), "r/subreddit/new.json", url.Values{"limit": []string{"10"}}).
				Return(json.RawMessage(postsJSON), nil).
				AnyTimes()
		})

		It("returns the raw listing", func() {
			listing, errResp := service.GetPosts(ctx, "new")
			Expect(errResp).To(BeNil())
			Expect(listing.Data.Children).To(HaveLen(2))
		})

		It("summarizes posts through maybe", func() {
			posts := service.TopPostsMaybe(ctx, "new")
			Expect(posts.IsPresent()).To(BeTrue())

			summaries := posts.GetOrElse(nil)
			Expect(summaries).To(HaveLen(2))
			Expect(summaries[0]).To(Equal(entity.PostSummary{ID: "a1", Title: "Generics", Author: "gopher", URL: "https://go.dev/blog"}))
		})

		It("summarizes posts through either", func() {
			posts := service.TopPostsEither(ctx, "new")
			Expect(posts.IsRight()).To(BeTrue())
			Expect(posts.RightValue()).To(HaveLen(2))
		})

		It("summarizes posts through any either", func() {
			posts := service.TopPostsAnyEither(ctx, "new")
			Expect(posts.IsNothing()).To(BeFalse())
			Expect(posts.Value()).To(HaveLen(2))
		})

		It("summarizes posts asynchronously", func() {
			posts, err := service.TopPostsAsync(ctx, "new").Await(ctx)
			Expect(err).To(BeNil())
			Expect(posts.GetOrElse(nil)).To(HaveLen(2))
		})
	})

	Context("when the api fails", func() {
		BeforeEach(func() {
			fetcher.EXPECT().
				Fetch(gomock.Any(), "r/subreddit/wrong-subreddit.json", gomock.Any()).
				Return(nil, entity.NewErrorResponse(http.StatusNotFound)).
				AnyTimes()
		})

		It("returns the error response", func() {
			_, errResp := service.GetPosts(ctx, "wrong-subreddit")
			Expect(errResp).To(Equal(&entity.ErrorResponse{Message: "Something went wrong", Code: 404}))
		})

		It("keeps the error on the left arm", func() {
			posts := service.TopPostsEither(ctx, "wrong-subreddit")
			Expect(posts.IsLeft()).To(BeTrue())
			Expect(posts.LeftValue().Code).To(Equal(404))
		})

		It("keeps the error on the nothing arm", func() {
			posts := service.TopPostsAnyEither(ctx, "wrong-subreddit")
			Expect(posts.IsNothing()).To(BeTrue())
			Expect(posts.Value()).To(Equal(entity.ErrorResponse{Message: "Something went wrong", Code: 404}))
		})

		It("drops the error detail with maybe", func() {
			posts := service.TopPostsMaybe(ctx, "wrong-subreddit")
			Expect(posts.IsNothing()).To(BeTrue())
			Expect(posts.GetOrElse([]entity.PostSummary{})).To(BeEmpty())
		})

		It("resolves to nothing asynchronously", func() {
			posts, err := service.TopPostsAsync(ctx, "wrong-subreddit").Await(ctx)
			Expect(err).To(BeNil())
			Expect(posts.IsNothing()).To(BeTrue())
		})
	})

	It("maps an undecodable body to an error response", func() {
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(json.RawMessage(`[1,2]`), nil)

		_, errResp := service.GetPosts(ctx, "new")
		Expect(errResp).ToNot(BeNil())
		Expect(errResp.Code).To(Equal(0))
	})

	It("does not fetch anything for an empty sort", func() {
		posts, err := service.TopPostsAsync(ctx, "").Await(ctx)
		Expect(err).To(BeNil())
		Expect(posts.IsNothing()).To(BeTrue())
	})

	It("treats a listing without children as absent", func() {
		fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"kind":"Listing","data":{}}`), nil)

		Expect(service.TopPostsMaybe(ctx, "new").IsNothing()).To(BeTrue())
	})

	Context("search threads", func() {
		It("fetches the comments of every post", func() {
			var calls int32
			fetcher.EXPECT().
				Fetch(gomock.Any(), "search.json", url.Values{"q": []string{"golang"}, "limit": []string{"2"}}).
				Return(json.RawMessage(postsJSON), nil)
			fetcher.EXPECT().
				Fetch(gomock.Any(), gomock.Any(), gomock.Nil()).
				DoAndReturn(func(_ context.Context, path string, _ url.Values) (json.RawMessage, *entity.ErrorResponse) {
					atomic.AddInt32(&calls, 1)
					Expect(path).To(Or(Equal("/r/golang/comments/a1/generics.json"), Equal("/r/golang/comments/a2/errors.json")))
					return json.RawMessage(threadJSON), nil
				}).
				Times(2)

			threads, err := service.SearchThreads(ctx, "golang", 2)
			Expect(err).To(BeNil())
			Expect(atomic.LoadInt32(&calls)).To(Equal(int32(2)))
			Expect(threads).To(HaveLen(2))
			Expect(threads[0].Post.ID).To(Equal("a1"))
			Expect(threads[0].Comments).To(Equal([]string{"first", "second"}))
			Expect(threads[1].Post.ID).To(Equal("a2"))
		})

		It("fails when a thread cannot be fetched", func() {
			fetcher.EXPECT().
				Fetch(gomock.Any(), "search.json", gomock.Any()).
				Return(json.RawMessage(postsJSON), nil)
			fetcher.EXPECT().
				Fetch(gomock.Any(), gomock.Any(), gomock.Nil()).
				Return(nil, entity.NewErrorResponse(http.StatusTooManyRequests)).
				MinTimes(1)

			_, err := service.SearchThreads(ctx, "golang", 2)
			Expect(err).To(MatchError(entity.NewErrorResponse(http.StatusTooManyRequests)))
		})

		It("fails when the search fails", func() {
			fetcher.EXPECT().
				Fetch(gomock.Any(), "search.json", gomock.Any()).
				Return(nil, entity.NewErrorResponse(0))

			_, err := service.SearchThreads(ctx, "golang", 1)
			Expect(err).ToNot(BeNil())
		})

		It("rejects a limit below one without fetching", func() {
			for _, limit := range []int{0, -1} {
				threads, err := service.SearchThreads(ctx, "golang", limit)
				Expect(err).To(HaveOccurred())
				Expect(threads).To(BeNil())
			}
		})
	})
})
