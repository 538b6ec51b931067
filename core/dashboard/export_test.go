package dashboard

type (
	StatusResponse      = statusResponse
	NodeResponse        = nodeResponse
	TransferResponse    = transferResponse
	StampsResponse      = stampsResponse
	CreateStampRequest  = createStampRequest
	CreateStampResponse = createStampResponse
	StampQuoteResponse  = stampQuoteResponse
)
