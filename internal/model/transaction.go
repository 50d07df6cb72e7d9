// Package model defines domain models for lockd.app content decoding.
package model

import "time"

// TxType classifies the application-level meaning of a transaction.
type TxType string

var (
	// TxTypePost is the default content type, including image posts.
	TxTypePost TxType = "post"
	// TxTypeLike marks a lock of value against an existing post.
	TxTypeLike TxType = "like"
	// TxTypeVote marks a vote question with its options.
	TxTypeVote TxType = "vote"
	// TxTypeReply marks content referencing a parent transaction.
	TxTypeReply TxType = "reply"
	// TxTypeRepost marks a re-broadcast of an existing transaction.
	TxTypeRepost TxType = "repost"
)

// RawTransaction is the decoder input: identity, block context and the
// opaque output scripts. Body optionally carries the whole serialized
// transaction as hex or base64 for payloads that are not output-aligned.
type RawTransaction struct {
	TxID        string
	BlockHeight uint64
	BlockHash   string
	Timestamp   time.Time
	Outputs     [][]byte
	Body        string
}

// DecodedTransaction is the terminal decode record handed to persistence.
// Image and Vote are nil when the transaction carries neither.
type DecodedTransaction struct {
	TxID        string
	BlockHeight uint64
	BlockHash   string
	Timestamp   time.Time
	Type        TxType
	Fields      ProtocolFields
	Content     string
	Image       *ImageRecord
	Vote        *VoteData
}
