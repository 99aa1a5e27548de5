package client

import (
	"bytes"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"
)

// maxLoggedBody caps the number of body bytes written to the debug log.
const maxLoggedBody = 2048

type logTransportWrapper struct {
	next http.RoundTripper
}

func (l *logTransportWrapper) Wrap(transport http.RoundTripper) http.RoundTripper {
	return &logTransportWrapper{
		next: transport,
	}
}

func (l *logTransportWrapper) RoundTrip(request *http.Request) (response *http.Response, err error) {
	logger := zap.S().With("request_id", request.Header.Get(requestIDHeader))

	l.logRequest(logger, request)

	// Call the next round tripper
	response, err = l.next.RoundTrip(request)
	if err != nil {
		logger.Debugw("request failed", "error", err)
		return
	}

	// Read the complete response body in memory, in order to send it the log, and replace it
	// with a reader that reads it from memory:
	if response.Body != nil {
		var body []byte
		body, err = io.ReadAll(response.Body)
		if err != nil {
			return
		}

		err = response.Body.Close()
		if err != nil {
			return
		}

		l.logResponse(logger, response, body)
		response.Body = io.NopCloser(bytes.NewBuffer(body))
	} else {
		l.logResponse(logger, response, nil)
	}

	return
}

func (l *logTransportWrapper) logRequest(logger *zap.SugaredLogger, request *http.Request) {
	logger.Debugw("request", "method", request.Method, "url", request.URL.String())

	for k, values := range request.Header {
		for _, value := range values {
			logger.Debugw("request header", "key", k, "value", value)
		}
	}
}

func (l *logTransportWrapper) logResponse(logger *zap.SugaredLogger, response *http.Response, body []byte) {
	logger.Debugw("response", "protocol", response.Proto, "status", response.Status)

	for k, values := range response.Header {
		for _, value := range values {
			logger.Debugw("response header", "key", k, "value", value)
		}
	}

	if body != nil {
		l.logBody(logger, response.Header, body)
	}
}

func (l *logTransportWrapper) logBody(logger *zap.SugaredLogger, header http.Header, body []byte) {
	// Try to parse the content type:
	var mediaType string
	contentType := header.Get("Content-Type")
	if contentType != "" {
		var err error
		mediaType, _, err = mime.ParseMediaType(contentType)
		if err != nil {
			logger.Errorf("Can't parse content type '%s': %v", contentType, err)
		}
	}

	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
	}

	switch mediaType {
	case "application/json", "":
		logger.Debugw("response body", "json", string(body))
	default:
		logger.Debugw("response body", "media_type", mediaType, "size", len(body))
	}
}
