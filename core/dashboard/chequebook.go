package dashboard

import (
	"net/http"

	"github.com/redesblock/mopboard/core/forms"
	"github.com/redesblock/mopboard/core/jsonhttp"
	"github.com/redesblock/mopboard/core/nodeapi"
)

var (
	errChequebookBalance  = "cannot get chequebook balance"
	errChequebookDeposit  = "cannot deposit tokens"
	errChequebookWithdraw = "cannot withdraw tokens"
)

func (s *server) chequebookBalanceHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := s.Client.ChequebookBalance(r.Context())
	if err != nil {
		jsonhttp.InternalServerError(w, errChequebookBalance)
		s.Logger.Debugf("dashboard api: chequebook balance: %v", err)
		s.Logger.Error("dashboard api: cannot get chequebook balance")
		return
	}

	jsonhttp.OK(w, balance)
}

type transferResponse struct {
	TransactionHash string                     `json:"transactionHash"`
	Balance         *nodeapi.ChequebookBalance `json:"balance,omitempty"`
}

func (s *server) chequebookDepositHandler(w http.ResponseWriter, r *http.Request) {
	f := forms.FundsForm{}.WithAmount(r.URL.Query().Get("amount"))
	if f.AmountError != "" {
		jsonhttp.BadRequest(w, f.AmountError)
		return
	}

	var balance *nodeapi.ChequebookBalance
	refresh := func() {
		balance, _ = s.Client.ChequebookBalance(r.Context())
	}

	txHash, err := f.Deposit(r.Context(), s.Client, refresh)
	if err != nil {
		jsonhttp.InternalServerError(w, errChequebookDeposit)
		s.Logger.Debugf("dashboard api: chequebook deposit: %v", err)
		s.Logger.Error("dashboard api: cannot deposit tokens")
		return
	}

	jsonhttp.OK(w, transferResponse{TransactionHash: txHash, Balance: balance})
}

func (s *server) chequebookWithdrawHandler(w http.ResponseWriter, r *http.Request) {
	f := forms.FundsForm{}.WithAmount(r.URL.Query().Get("amount"))
	if f.AmountError != "" {
		jsonhttp.BadRequest(w, f.AmountError)
		return
	}

	var balance *nodeapi.ChequebookBalance
	refresh := func() {
		balance, _ = s.Client.ChequebookBalance(r.Context())
	}

	txHash, err := f.Withdraw(r.Context(), s.Client, refresh)
	if err != nil {
		jsonhttp.InternalServerError(w, errChequebookWithdraw)
		s.Logger.Debugf("dashboard api: chequebook withdraw: %v", err)
		s.Logger.Error("dashboard api: cannot withdraw tokens")
		return
	}

	jsonhttp.OK(w, transferResponse{TransactionHash: txHash, Balance: balance})
}
