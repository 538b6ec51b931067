// Package postage holds the client-side model of postage batches together
// with the pure calculation and validation rules the dashboard applies
// before talking to the node.
package postage

import (
	"github.com/redesblock/mopboard/core/util/bigint"
)

const (
	// BucketDepth is the fixed collision bucket depth batches are created with.
	BucketDepth = uint8(16)
	// MinDepth is the minimum usable batch depth, one above the bucket depth.
	MinDepth = uint8(17)
	// MaxDepth is the maximum batch depth.
	MaxDepth = uint8(255)
	// ChunkSize is the payload capacity of a single chunk in bytes.
	ChunkSize = 4096
)

// Batch is a postage batch as reported by the node.
type Batch struct {
	BatchID     string         `json:"batchID"`
	Utilization uint32         `json:"utilization"`
	Usable      bool           `json:"usable"`
	Label       string         `json:"label"`
	Depth       uint8          `json:"depth"`
	Amount      *bigint.BigInt `json:"amount"`
	BucketDepth uint8          `json:"bucketDepth"`
	BlockNumber uint64         `json:"blockNumber"`
	Immutable   bool           `json:"immutableFlag"`
}

// ChainState contains data the node's batch service reads from the chain.
type ChainState struct {
	Block        uint64         `json:"block"`        // The block number of the last postage event.
	TotalAmount  *bigint.BigInt `json:"totalAmount"`  // Cumulative amount paid per stamp.
	CurrentPrice *bigint.BigInt `json:"currentPrice"` // Mop/chunk/block normalised price.
}
