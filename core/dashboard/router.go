package dashboard

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/redesblock/mopboard/core/jsonhttp"
	"github.com/redesblock/mopboard/core/logging"
	"github.com/sirupsen/logrus"
	"resenje.org/web"
)

func (s *server) setupRouting() {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(jsonhttp.NotFoundHandler)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "mopboard")
	})

	router.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "User-agent: *\nDisallow: /")
	})

	router.Handle("/health", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.healthHandler),
	})

	router.Handle("/readiness", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.readinessHandler),
	})

	router.Handle("/node", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.nodeHandler),
	})

	router.Handle("/chainstate", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.chainStateHandler),
	})

	router.Handle("/chequebook", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.chequebookBalanceHandler),
	})

	router.Handle("/chequebook/deposit", jsonhttp.MethodHandler{
		"POST": http.HandlerFunc(s.chequebookDepositHandler),
	})

	router.Handle("/chequebook/withdraw", jsonhttp.MethodHandler{
		"POST": http.HandlerFunc(s.chequebookWithdrawHandler),
	})

	router.Handle("/stamps", jsonhttp.MethodHandler{
		"GET":  http.HandlerFunc(s.stampsHandler),
		"POST": http.HandlerFunc(s.stampCreateHandler),
	})

	router.Handle("/stamps/quote", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.stampQuoteHandler),
	})

	router.Handle("/stamps/{id}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.stampHandler),
	})

	router.Handle("/metrics", s.metricsHandler())

	s.Handler = web.ChainHandlers(
		logging.NewHTTPAccessLogHandler(s.Logger, logrus.InfoLevel, "dashboard access"),
		handlers.CompressHandler,
		s.corsHandler,
		web.FinalHandler(router),
	)
}

func (s *server) corsHandler(h http.Handler) http.Handler {
	if len(s.CORSAllowedOrigins) == 0 {
		return h
	}
	return handlers.CORS(
		handlers.AllowedOrigins(s.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
}
