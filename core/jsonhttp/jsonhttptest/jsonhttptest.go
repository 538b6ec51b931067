// Package jsonhttptest provides a helper for making HTTP requests against
// handlers in tests and validating their JSON responses.
package jsonhttptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// Option configures a request made by Request.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

type options struct {
	body             io.Reader
	headers          http.Header
	expectedResponse interface{}
}

// WithRequestBody sets the request body.
func WithRequestBody(body io.Reader) Option {
	return optionFunc(func(o *options) { o.body = body })
}

// WithJSONRequestBody sets the request body to the JSON encoding of v.
func WithJSONRequestBody(v interface{}) Option {
	return optionFunc(func(o *options) {
		b, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		o.body = bytes.NewReader(b)
	})
}

// WithRequestHeader adds a header to the request.
func WithRequestHeader(key, value string) Option {
	return optionFunc(func(o *options) {
		if o.headers == nil {
			o.headers = make(http.Header)
		}
		o.headers.Add(key, value)
	})
}

// WithExpectedJSONResponse validates that the response body is the JSON
// encoding of v.
func WithExpectedJSONResponse(v interface{}) Option {
	return optionFunc(func(o *options) { o.expectedResponse = v })
}

// Request makes an HTTP request with the given method and url through the
// provided client and validates the response code and, optionally, the JSON
// response body.
func Request(t *testing.T, client *http.Client, method, url string, responseCode int, opts ...Option) http.Header {
	t.Helper()

	o := new(options)
	for _, opt := range opts {
		opt.apply(o)
	}

	req, err := http.NewRequest(method, url, o.body)
	if err != nil {
		t.Fatal(err)
	}
	for key, values := range o.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != responseCode {
		t.Errorf("got response status %s, want %v %s", resp.Status, responseCode, http.StatusText(responseCode))
	}

	if o.expectedResponse != nil {
		got, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		got = bytes.TrimSpace(got)

		want, err := json.Marshal(o.expectedResponse)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(got, want) {
			t.Errorf("got response %s, want %s", string(got), string(want))
		}
	}

	return resp.Header
}
