package entity

import (
	"fmt"

	"github.com/go-openapi/strfmt"
)

type ThingKind string

const (
	CommentKind ThingKind = "t1"
	PostKind    ThingKind = "t3"
	MoreKind    ThingKind = "more"
)

// Listing is the envelope returned by every Reddit listing endpoint.
type Listing struct {
	Kind string      `json:"kind"`
	Data ListingData `json:"data"`
}

type ListingData struct {
	Modhash  string  `json:"modhash"`
	Children []Thing `json:"children"`
	After    *string `json:"after"`
	Before   *string `json:"before"`
}

// Thing is a listing child. Data is kept raw until Kind tells what it holds.
type Thing struct {
	Kind ThingKind      `json:"kind"`
	Data map[string]any `json:"data"`
}

type Post struct {
	ID          string     `mapstructure:"id" json:"id"`
	Author      string     `mapstructure:"author" json:"author"`
	Title       string     `mapstructure:"title" json:"title"`
	URL         strfmt.URI `mapstructure:"url" json:"url"`
	Permalink   string     `mapstructure:"permalink" json:"permalink"`
	Subreddit   string     `mapstructure:"subreddit" json:"subreddit"`
	Score       int        `mapstructure:"score" json:"score"`
	NumComments int        `mapstructure:"num_comments" json:"num_comments"`
}

type Comment struct {
	ID     string `mapstructure:"id" json:"id"`
	Author string `mapstructure:"author" json:"author"`
	Body   string `mapstructure:"body" json:"body"`
	Score  int    `mapstructure:"score" json:"score"`
}

// PostSummary is what the posts command prints for every post.
type PostSummary struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	URL    strfmt.URI `json:"url"`
}

// ErrorResponse describes a failed request. Code is 0 when no response was received.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func NewErrorResponse(code int) *ErrorResponse {
	return &ErrorResponse{
		Message: "Something went wrong",
		Code:    code,
	}
}

func (e *ErrorResponse) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s. code: %d", e.Message, e.Code)
}
