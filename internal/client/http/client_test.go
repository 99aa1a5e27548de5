package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var received *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithUserAgent("test-agent"))
	require.NoError(t, err)

	data, errResp := c.Fetch(context.Background(), "/r/golang/new.json", url.Values{"limit": []string{"10"}})
	require.Nil(t, errResp)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "Listing", body["kind"])

	require.NotNil(t, received)
	assert.Equal(t, "/r/golang/new.json", received.URL.Path)
	assert.Equal(t, "10", received.URL.Query().Get("limit"))
	assert.Equal(t, "test-agent", received.Header.Get("User-Agent"))
	assert.NotEmpty(t, received.Header.Get(requestIDHeader))
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	data, errResp := c.Fetch(context.Background(), "r/wrong-subreddit.json", nil)
	assert.Nil(t, data)
	require.NotNil(t, errResp)
	assert.Equal(t, "Something went wrong", errResp.Message)
	assert.Equal(t, http.StatusNotFound, errResp.Code)
}

func TestFetchInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html></html>`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, errResp := c.Fetch(context.Background(), "search.json", nil)
	require.NotNil(t, errResp)
	assert.Equal(t, http.StatusOK, errResp.Code)
}

func TestFetchNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-time.After(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, errResp := c.Fetch(context.Background(), "search.json", nil)
	require.NotNil(t, errResp)
	assert.Equal(t, 0, errResp.Code)
}

func TestNewInvalidURL(t *testing.T) {
	_, err := New("not a url")
	assert.Error(t, err)

	_, err = New("://bad")
	assert.Error(t, err)
}

func TestRequestBuilder(t *testing.T) {
	request, err := newRequestBuilder().
		Url("https://www.reddit.com/search.json?q=go").
		Query(url.Values{"limit": []string{"1"}}).
		Header(requestIDHeader, "fixed").
		Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, request.Method)
	assert.Equal(t, "go", request.URL.Query().Get("q"))
	assert.Equal(t, "1", request.URL.Query().Get("limit"))
	assert.Equal(t, "fixed", request.Header.Get(requestIDHeader))

	_, err = newRequestBuilder().Build(context.Background())
	assert.Error(t, err)
}
