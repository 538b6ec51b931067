package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redesblock/mopboard/core/forms"
	"github.com/redesblock/mopboard/core/jsonhttp"
	"github.com/redesblock/mopboard/core/nodeapi"
	"github.com/redesblock/mopboard/core/postage"
)

var (
	errGetStamps   = "cannot get stamps"
	errGetStamp    = "cannot get stamp"
	errCreateStamp = "cannot create stamp"
	errChainState  = "cannot get chain state"
)

func (s *server) chainStateHandler(w http.ResponseWriter, r *http.Request) {
	cs, err := s.Client.ChainState(r.Context())
	if err != nil {
		jsonhttp.InternalServerError(w, errChainState)
		s.Logger.Debugf("dashboard api: chain state: %v", err)
		s.Logger.Error("dashboard api: cannot get chain state")
		return
	}

	jsonhttp.OK(w, cs)
}

type stampsResponse struct {
	Stamps []*postage.Batch `json:"stamps"`
}

func (s *server) stampsHandler(w http.ResponseWriter, r *http.Request) {
	stamps, err := s.Client.Stamps(r.Context())
	if err != nil {
		jsonhttp.InternalServerError(w, errGetStamps)
		s.Logger.Debugf("dashboard api: stamps: %v", err)
		s.Logger.Error("dashboard api: cannot get stamps")
		return
	}

	jsonhttp.OK(w, stampsResponse{Stamps: stamps})
}

func (s *server) stampHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	stamp, err := s.Client.Stamp(r.Context(), id)
	if err != nil {
		if errors.Is(err, nodeapi.ErrNotFound) {
			jsonhttp.NotFound(w, nil)
			return
		}
		jsonhttp.InternalServerError(w, errGetStamp)
		s.Logger.Debugf("dashboard api: stamp %s: %v", id, err)
		s.Logger.Error("dashboard api: cannot get stamp")
		return
	}

	jsonhttp.OK(w, stamp)
}

type createStampRequest struct {
	Amount    string `json:"amount"`
	Depth     string `json:"depth"`
	Label     string `json:"label"`
	Immutable bool   `json:"immutable"`
}

type createStampResponse struct {
	BatchID string           `json:"batchID"`
	Stamps  []*postage.Batch `json:"stamps,omitempty"`
}

// stampCreateHandler drives the purchase form: validate the fields, create
// the batch, wait until the node reports it, and respond with the refreshed
// stamp list.
func (s *server) stampCreateHandler(w http.ResponseWriter, r *http.Request) {
	var req createStampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonhttp.BadRequest(w, "invalid request body")
		return
	}

	f := forms.StampForm{}.
		WithAmount(req.Amount).
		WithDepth(req.Depth).
		WithLabel(req.Label).
		WithImmutable(req.Immutable)

	if f.AmountError != "" {
		jsonhttp.BadRequest(w, f.AmountError)
		return
	}
	if f.DepthError != "" {
		jsonhttp.BadRequest(w, f.DepthError)
		return
	}

	var stamps []*postage.Batch
	refresh := func() {
		stamps, _ = s.Client.Stamps(r.Context())
	}
	finished := func() {
		s.Logger.Info("dashboard api: stamp created")
	}

	batchID, err := f.Submit(r.Context(), s.Client, refresh, finished)
	if err != nil {
		jsonhttp.InternalServerError(w, errCreateStamp)
		s.Logger.Debugf("dashboard api: create stamp: %v", err)
		s.Logger.Error("dashboard api: cannot create stamp")
		return
	}

	jsonhttp.Created(w, createStampResponse{BatchID: batchID, Stamps: stamps})
}

type stampQuoteResponse struct {
	FileSize      string `json:"fileSize"`
	TTL           string `json:"ttl"`
	Price         string `json:"price"`
	PricePerBlock string `json:"pricePerBlock,omitempty"`
}

// stampQuoteHandler returns the derived display values for the purchase
// form, with "-" placeholders while input is invalid or absent.
func (s *server) stampQuoteHandler(w http.ResponseWriter, r *http.Request) {
	f := forms.StampForm{}.
		WithAmount(r.URL.Query().Get("amount")).
		WithDepth(r.URL.Query().Get("depth"))

	cs, err := s.Client.ChainState(r.Context())
	if err != nil {
		s.Logger.Debugf("dashboard api: stamp quote chain state: %v", err)
		cs = nil
	}

	resp := stampQuoteResponse{
		FileSize: f.FileSize(),
		TTL:      f.TTL(cs),
		Price:    f.IndicativePrice(),
	}
	if cs != nil && cs.CurrentPrice != nil {
		resp.PricePerBlock = cs.CurrentPrice.String()
	}

	jsonhttp.OK(w, resp)
}
