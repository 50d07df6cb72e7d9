package model

// VoteOption is one selectable answer of a vote question.
type VoteOption struct {
	Index uint32 `json:"index"`
	Text  string `json:"text"`
}

// VoteData holds a vote question with its options sorted ascending by
// index. OptionsHash is the canonical content hash over the sorted
// option list, lowercase hex.
type VoteData struct {
	Question     string
	Options      []VoteOption
	TotalOptions int
	OptionsHash  string
}
