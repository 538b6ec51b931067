package dashboard_test

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/redesblock/mopboard/core/dashboard"
	"github.com/redesblock/mopboard/core/logging"
	"github.com/redesblock/mopboard/core/nodeapi/mock"
	"resenje.org/web"
)

type testServerOptions struct {
	ClientOpts []mock.Option
}

func newTestServer(t *testing.T, o testServerOptions) *http.Client {
	t.Helper()

	s := dashboard.New(mock.New(o.ClientOpts...), logging.New(ioutil.Discard, 0), dashboard.Options{})
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	return &http.Client{
		Transport: web.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			u, err := url.Parse(ts.URL + r.URL.String())
			if err != nil {
				return nil, err
			}
			r.URL = u
			return ts.Client().Transport.RoundTrip(r)
		}),
	}
}
