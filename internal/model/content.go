package model

import "time"

// Network names the chain a record was observed on.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	STN     Network = "stn"
	Regtest Network = "regtest"
)

// DecodeStatus describes the outcome of one decode attempt.
type DecodeStatus string

var (
	// StatusDecoded marks a transaction decoded into a content record.
	StatusDecoded DecodeStatus = "decoded"
	// StatusSkipped marks a transaction id that was already processed.
	StatusSkipped DecodeStatus = "skipped"
	// StatusDegraded marks a partial record emitted after an internal failure.
	StatusDegraded DecodeStatus = "degraded"
)

// ContentRecord is a decoded transaction persisted to the content store.
type ContentRecord struct {
	Network       Network
	TxID          string
	BlockHeight   uint64
	BlockHash     string
	Timestamp     time.Time
	Type          TxType
	Content       string
	AuthorAddress string
	Fields        map[string]string
	LockAmount    uint64
	LockDuration  uint64
	ReplyTo       string
	RepostOf      string
	VoteQuestion  string
	VoteOptions   []VoteOption
	OptionsHash   string
	ImageFormat   string
	ImageType     string
	ImageSize     uint32
	ImageWidth    uint32
	ImageHeight   uint32
	ImageAnimated bool
}

// DecodeEvent is one decode attempt persisted to the analytics store.
type DecodeEvent struct {
	Network     Network
	TxID        string
	BlockHeight uint64
	BlockTime   time.Time
	Type        TxType
	Status      DecodeStatus
	FieldCount  uint32
	ImageFormat string
	ImageSize   uint32
	VoteOptions uint32
	DurationMs  uint64
}

// IndexedBlock marks a fully processed block in the content store.
type IndexedBlock struct {
	Network      Network
	Height       uint64
	Hash         string
	Timestamp    time.Time
	TxCount      uint32
	ContentCount uint32
}

// InsertBatch groups the records produced by one processed block.
type InsertBatch struct {
	Block   IndexedBlock
	Content []ContentRecord
	Events  []DecodeEvent
}
