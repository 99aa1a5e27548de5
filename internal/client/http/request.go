package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type RequestBuilder struct {
	method string
	url    string
	query  url.Values
	header map[string]string
}

func newRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		header: make(map[string]string),
		query:  make(url.Values),
	}
}

func (rb *RequestBuilder) Method(m string) *RequestBuilder {
	rb.method = m
	return rb
}

func (rb *RequestBuilder) Url(url string) *RequestBuilder {
	rb.url = url
	return rb
}

func (rb *RequestBuilder) Query(q url.Values) *RequestBuilder {
	for k, values := range q {
		for _, v := range values {
			rb.query.Add(k, v)
		}
	}
	return rb
}

func (rb *RequestBuilder) Header(key, value string) *RequestBuilder {
	rb.header[key] = value
	return rb
}

func (rb *RequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	if rb.url == "" {
		return nil, errors.New("url is required")
	}

	method := rb.method
	if method == "" {
		method = http.MethodGet
	}

	u, err := url.Parse(rb.url)
	if err != nil {
		return nil, fmt.Errorf("cannot parse url '%w'", err)
	}

	if len(rb.query) > 0 {
		q := u.Query()
		for k, values := range rb.query {
			for _, v := range values {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create request '%w'", err)
	}

	for k, v := range rb.header {
		request.Header.Add(k, v)
	}

	if request.Header.Get(requestIDHeader) == "" {
		request.Header.Set(requestIDHeader, uuid.NewString())
	}

	return request, nil
}
