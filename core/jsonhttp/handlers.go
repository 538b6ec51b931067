package jsonhttp

import (
	"net/http"

	"resenje.org/web"
)

// MethodHandler dispatches a request by its method and responds with a JSON
// Method Not Allowed message for methods without a handler.
type MethodHandler map[string]http.Handler

func (h MethodHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.HandleMethods(h, `{"message":"Method Not Allowed","code":405}`, DefaultContentTypeHeader, w, r)
}

// NotFoundHandler responds with a JSON Not Found message.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	NotFound(w, nil)
}
