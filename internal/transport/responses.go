package transport

import (
	"time"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

type listResponse struct {
	Items []contentResponse `json:"items"`
}

type contentResponse struct {
	TxID          string            `json:"txid"`
	Network       string            `json:"network"`
	BlockHeight   uint64            `json:"block_height"`
	BlockHash     string            `json:"block_hash"`
	Timestamp     time.Time         `json:"timestamp"`
	Type          string            `json:"type"`
	Content       string            `json:"content,omitempty"`
	AuthorAddress string            `json:"author_address,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	LockAmount    uint64            `json:"lock_amount,omitempty"`
	LockDuration  uint64            `json:"lock_duration,omitempty"`
	ReplyTo       string            `json:"reply_to,omitempty"`
	RepostOf      string            `json:"repost_of,omitempty"`
	Vote          *voteResponse     `json:"vote,omitempty"`
	Image         *imageResponse    `json:"image,omitempty"`
}

type voteResponse struct {
	Question    string             `json:"question"`
	Options     []model.VoteOption `json:"options"`
	OptionsHash string             `json:"options_hash"`
}

type imageResponse struct {
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Size        uint32 `json:"size"`
	Width       uint32 `json:"width,omitempty"`
	Height      uint32 `json:"height,omitempty"`
	Animated    bool   `json:"animated,omitempty"`
}

func newContentResponse(rec model.ContentRecord) contentResponse {
	resp := contentResponse{
		TxID:          rec.TxID,
		Network:       string(rec.Network),
		BlockHeight:   rec.BlockHeight,
		BlockHash:     rec.BlockHash,
		Timestamp:     rec.Timestamp,
		Type:          string(rec.Type),
		Content:       rec.Content,
		AuthorAddress: rec.AuthorAddress,
		Fields:        rec.Fields,
		LockAmount:    rec.LockAmount,
		LockDuration:  rec.LockDuration,
		ReplyTo:       rec.ReplyTo,
		RepostOf:      rec.RepostOf,
	}
	if rec.VoteQuestion != "" || len(rec.VoteOptions) > 0 || rec.OptionsHash != "" {
		resp.Vote = &voteResponse{
			Question:    rec.VoteQuestion,
			Options:     rec.VoteOptions,
			OptionsHash: rec.OptionsHash,
		}
	}
	if rec.ImageFormat != "" {
		resp.Image = &imageResponse{
			Format:      rec.ImageFormat,
			ContentType: rec.ImageType,
			Size:        rec.ImageSize,
			Width:       rec.ImageWidth,
			Height:      rec.ImageHeight,
			Animated:    rec.ImageAnimated,
		}
	}
	return resp
}
