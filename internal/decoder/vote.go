package decoder

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

// AggregateVote assembles vote data from protocol fields and tokens.
// Callers invoke it only for payloads that declare themselves votes.
// Option representations are reconciled in order: an options field
// holding a JSON array of {index,text} objects, an options field
// holding a flat JSON string array indexed by position, then
// sequential optionindex=/content= token pairs. Fewer than two
// recovered options is returned as-is: option count policy belongs to
// the caller and the decoder never invents options.
func AggregateVote(fields model.ProtocolFields, tokens []model.Token) *model.VoteData {
	options := optionsFromField(fields)
	if options == nil {
		options = optionsFromTokens(tokens)
	}
	if options == nil {
		options = []model.VoteOption{}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Index < options[j].Index
	})
	return &model.VoteData{
		Question:     questionOf(fields),
		Options:      options,
		TotalOptions: len(options),
		OptionsHash:  hashOptions(options),
	}
}

func questionOf(fields model.ProtocolFields) string {
	if q := fields["vote_question"]; q != "" {
		return q
	}
	if q := fields["question"]; q != "" {
		return q
	}
	return fields.Content()
}

// optionsFromField parses the options field, first as an object array
// then as a flat string array. A present but unparsable field yields
// nil so the token scan can still recover options.
func optionsFromField(fields model.ProtocolFields) []model.VoteOption {
	raw := fields["options"]
	if raw == "" {
		return nil
	}
	var structured []model.VoteOption
	if err := json.Unmarshal([]byte(raw), &structured); err == nil && len(structured) > 0 {
		return dedupeOptions(structured)
	}
	var flat []string
	if err := json.Unmarshal([]byte(raw), &flat); err == nil && len(flat) > 0 {
		options := make([]model.VoteOption, 0, len(flat))
		for i, text := range flat {
			options = append(options, model.VoteOption{Index: uint32(i), Text: text})
		}
		return options
	}
	return nil
}

// optionsFromTokens scans the token sequence for optionindex= markers
// and binds each to the next content= value. Distinct indices keep
// their first occurrence.
func optionsFromTokens(tokens []model.Token) []model.VoteOption {
	var (
		options []model.VoteOption
		pending *uint32
	)
	seen := map[uint32]struct{}{}
	for _, tok := range tokens {
		if !tok.IsText() {
			continue
		}
		key, value, found := strings.Cut(tok.Text, "=")
		if !found {
			continue
		}
		switch optionKey(strings.TrimSpace(key)) {
		case "optionindex":
			idx, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
			if err != nil {
				pending = nil
				continue
			}
			v := uint32(idx)
			pending = &v
		case "content":
			if pending == nil {
				continue
			}
			idx := *pending
			pending = nil
			if _, ok := seen[idx]; ok {
				continue
			}
			seen[idx] = struct{}{}
			options = append(options, model.VoteOption{Index: idx, Text: strings.TrimSpace(value)})
		}
	}
	return options
}

// optionKey folds the spelling variants of the two keys the token
// scan reacts to.
func optionKey(key string) string {
	switch strings.ToLower(strings.ReplaceAll(key, "_", "")) {
	case "optionindex":
		return "optionindex"
	case "content":
		return "content"
	}
	return ""
}

func dedupeOptions(options []model.VoteOption) []model.VoteOption {
	seen := make(map[uint32]struct{}, len(options))
	deduped := make([]model.VoteOption, 0, len(options))
	for _, opt := range options {
		if _, ok := seen[opt.Index]; ok {
			continue
		}
		seen[opt.Index] = struct{}{}
		deduped = append(deduped, opt)
	}
	return deduped
}

// hashOptions computes the content hash over the sorted option list:
// compact JSON of [{index,text}] with HTML escaping off, SHA-256,
// lowercase hex. The value is referenced by other parts of the
// protocol, so the serialization must reproduce byte for byte
// regardless of which input representation carried the options.
func hashOptions(options []model.VoteOption) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(options); err != nil {
		return ""
	}
	sum := sha256.Sum256(bytes.TrimRight(buf.Bytes(), "\n"))
	return hex.EncodeToString(sum[:])
}
