package decoder

import (
	"strings"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

// fieldSynonyms pairs the snake_case spelling of every known protocol
// field with its camelCase counterpart. Downstream consumers are
// inconsistent about which spelling they read, so the decoder is the
// one place that guarantees both are populated.
var fieldSynonyms = [][2]string{
	{"block_height", "blockHeight"},
	{"block_time", "blockTime"},
	{"author_address", "authorAddress"},
	{"lock_amount", "lockAmount"},
	{"lock_duration", "lockDuration"},
	{"is_vote", "isVote"},
	{"is_locked", "isLocked"},
	{"vote_question", "voteQuestion"},
	{"option_index", "optionIndex"},
	{"reply_to", "replyTo"},
	{"repost_of", "repostOf"},
	{"post_id", "postId"},
	{"total_options", "totalOptions"},
	{"options_hash", "optionsHash"},
	{"content_type", "contentType"},
	{"media_type", "mediaType"},
	{"tx_id", "txId"},
}

// DecodeFields scans the string tokens for key=value pairs. The first
// = splits key from value, so values may themselves contain =.
// Duplicate keys keep the first value, except that type=vote_question
// overrides an earlier type: outputs may redundantly restate type and
// the question type takes precedence over a generic default. The first
// free-text token becomes content when no field names it. Synonym
// normalization runs once after the raw map is built.
func DecodeFields(tokens []model.Token) model.ProtocolFields {
	fields := model.ProtocolFields{}
	var freeText string
	for _, tok := range tokens {
		if !tok.IsText() {
			continue
		}
		key, value, found := strings.Cut(tok.Text, "=")
		if !found {
			if freeText == "" {
				freeText = strings.TrimSpace(tok.Text)
			}
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		if _, exists := fields[key]; exists {
			if key == "type" && value == "vote_question" {
				fields[key] = value
			}
			continue
		}
		fields[key] = value
	}
	if _, ok := fields["content"]; !ok && freeText != "" {
		fields["content"] = freeText
	}
	normalizeSynonyms(fields)
	return fields
}

// normalizeSynonyms adds the missing counterpart spelling for each
// known pair. When both spellings arrived with different values the
// first-wins rule already applied per key and both are kept.
func normalizeSynonyms(fields model.ProtocolFields) {
	for _, pair := range fieldSynonyms {
		snake, camel := pair[0], pair[1]
		vs, okSnake := fields[snake]
		vc, okCamel := fields[camel]
		switch {
		case okSnake && !okCamel:
			fields[camel] = vs
		case okCamel && !okSnake:
			fields[snake] = vc
		}
	}
}
