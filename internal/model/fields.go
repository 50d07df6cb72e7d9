package model

import "strconv"

// ProtocolFields maps protocol field names to raw string values. Every
// known field is queryable under both its snake_case and camelCase
// spelling; the decoder populates both at decode time.
type ProtocolFields map[string]string

// Get returns the value for key and whether it was present.
func (f ProtocolFields) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// Type returns the declared content type, empty when absent.
func (f ProtocolFields) Type() string {
	return f["type"]
}

// Content returns the free-text content, empty when absent.
func (f ProtocolFields) Content() string {
	return f["content"]
}

// IsVote reports whether the payload declares itself a vote.
func (f ProtocolFields) IsVote() bool {
	return isTruthy(f["is_vote"]) || f["type"] == "vote_question"
}

// IsLocked reports whether the payload carries a lock marker.
func (f ProtocolFields) IsLocked() bool {
	if isTruthy(f["is_locked"]) {
		return true
	}
	amount, ok := f.LockAmount()
	return ok && amount > 0
}

// LockAmount parses lock_amount; ok is false when absent or unparsable.
func (f ProtocolFields) LockAmount() (uint64, bool) {
	return f.uint("lock_amount")
}

// LockDuration parses lock_duration; ok is false when absent or unparsable.
func (f ProtocolFields) LockDuration() (uint64, bool) {
	return f.uint("lock_duration")
}

// BlockHeight parses block_height; ok is false when absent or unparsable.
func (f ProtocolFields) BlockHeight() (uint64, bool) {
	return f.uint("block_height")
}

// ReplyTo returns the parent transaction id for replies, empty when absent.
func (f ProtocolFields) ReplyTo() string {
	return f["reply_to"]
}

// RepostOf returns the reposted transaction id, empty when absent.
func (f ProtocolFields) RepostOf() string {
	return f["repost_of"]
}

func (f ProtocolFields) uint(key string) (uint64, bool) {
	raw, ok := f[key]
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isTruthy(v string) bool {
	return v == "true" || v == "1" || v == "yes"
}
