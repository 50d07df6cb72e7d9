package postgres

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lockdapp/lockdex-backend/internal/model"
)

func (s *RepositorySuite) TestInsertContent() {
	now := time.Now().UTC().Truncate(time.Second)
	records := []model.ContentRecord{
		newContentRecord("tx-a", 100, now),
		newContentRecord("tx-b", 100, now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_content", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertContent(s.testCtx, records))
	s.Equal(2, s.countRows("content"))
}

func (s *RepositorySuite) TestInsertContentUpsertsByTxID() {
	now := time.Now().UTC().Truncate(time.Second)

	first := newContentRecord("tx-a", 100, now)
	replaced := first
	replaced.Content = "edited"
	replaced.BlockHeight = 101

	s.metrics.EXPECT().Observe("insert_content", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertContent(s.testCtx, []model.ContentRecord{first}))
	s.Require().NoError(s.repo.InsertContent(s.testCtx, []model.ContentRecord{replaced}))

	s.Equal(1, s.countRows("content"))

	var content string
	var height int64
	err := s.repo.db.QueryRowContext(s.testCtx,
		"SELECT content, block_height FROM content WHERE network = $1 AND txid = $2",
		string(model.Testnet), "tx-a").Scan(&content, &height)
	s.Require().NoError(err)
	s.Equal("edited", content)
	s.Equal(int64(101), height)
}

func (s *RepositorySuite) TestInsertContentVoteRoundTrip() {
	now := time.Now().UTC().Truncate(time.Second)

	vote := newContentRecord("tx-vote", 200, now)
	vote.Type = model.TxTypeVote
	vote.Content = "Pick one"
	vote.VoteQuestion = "Pick one"
	vote.VoteOptions = []model.VoteOption{
		{Index: 0, Text: "Red"},
		{Index: 1, Text: "Blue"},
	}
	vote.OptionsHash = "2f77668a9dfbf8d5848b9eeb4a7145ca94c6ed9236e4a773f6dcafa5132b2f91"
	vote.LockAmount = 5000
	vote.LockDuration = 144

	s.metrics.EXPECT().Observe("insert_content", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("content_by_txid", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertContent(s.testCtx, []model.ContentRecord{vote}))

	got, ok, err := s.repo.ContentByTxID(s.testCtx, model.Testnet, "tx-vote")
	s.Require().NoError(err)
	s.Require().True(ok)

	got.Timestamp = got.Timestamp.UTC()
	s.Equal(vote, got)
}
