package forum

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/tupyy/fpintro/internal/entity"
	"go.uber.org/zap"
)

func decodeThing[T any](thing entity.Thing) (T, error) {
	var result T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &result,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return result, fmt.Errorf("cannot create decoder '%w'", err)
	}

	if err := decoder.Decode(thing.Data); err != nil {
		return result, fmt.Errorf("cannot decode %s '%w'", thing.Kind, err)
	}

	return result, nil
}

// Posts decodes the t3 children of listing. Children which cannot be decoded are skipped.
func Posts(children []entity.Thing) []entity.Post {
	return decodeKind[entity.Post](children, entity.PostKind)
}

// Comments decodes the t1 children of every listing of a thread.
func Comments(thread []entity.Listing) []entity.Comment {
	children := lo.FlatMap(thread, func(l entity.Listing, _ int) []entity.Thing {
		return l.Data.Children
	})
	return decodeKind[entity.Comment](children, entity.CommentKind)
}

func decodeKind[T any](children []entity.Thing, kind entity.ThingKind) []T {
	things := lo.Filter(children, func(t entity.Thing, _ int) bool {
		return t.Kind == kind
	})

	return lo.FilterMap(things, func(t entity.Thing, _ int) (T, bool) {
		v, err := decodeThing[T](t)
		if err != nil {
			zap.S().Warnw("skip child", "kind", t.Kind, "error", err)
			return v, false
		}
		return v, true
	})
}

func Summarize(posts []entity.Post) []entity.PostSummary {
	return lo.Map(posts, func(p entity.Post, _ int) entity.PostSummary {
		return entity.PostSummary{
			ID:     p.ID,
			Title:  p.Title,
			Author: p.Author,
			URL:    p.URL,
		}
	})
}

func CommentBodies(comments []entity.Comment) []string {
	return lo.Map(comments, func(c entity.Comment, _ int) string { return c.Body })
}
