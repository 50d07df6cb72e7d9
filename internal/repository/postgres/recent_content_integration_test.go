package postgres

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lockdapp/lockdex-backend/internal/model"
)

func (s *RepositorySuite) TestRecentContent() {
	now := time.Now().UTC().Truncate(time.Second)
	records := []model.ContentRecord{
		newContentRecord("tx-old", 100, now),
		newContentRecord("tx-mid", 101, now.Add(10*time.Minute)),
		newContentRecord("tx-new", 102, now.Add(20*time.Minute)),
	}

	s.metrics.EXPECT().Observe("insert_content", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("recent_content", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertContent(s.testCtx, records))

	got, err := s.repo.RecentContent(s.testCtx, model.Testnet, 2)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("tx-new", got[0].TxID)
	s.Equal("tx-mid", got[1].TxID)
}

func (s *RepositorySuite) TestRecentContentDefaultLimit() {
	now := time.Now().UTC().Truncate(time.Second)

	s.metrics.EXPECT().Observe("insert_content", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("recent_content", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertContent(s.testCtx, []model.ContentRecord{
		newContentRecord("tx-a", 100, now),
	}))

	got, err := s.repo.RecentContent(s.testCtx, model.Testnet, 0)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *RepositorySuite) TestRecentContentOtherNetworkExcluded() {
	now := time.Now().UTC().Truncate(time.Second)

	mainnet := newContentRecord("tx-main", 100, now)
	mainnet.Network = model.Mainnet

	s.metrics.EXPECT().Observe("insert_content", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("recent_content", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertContent(s.testCtx, []model.ContentRecord{mainnet}))

	got, err := s.repo.RecentContent(s.testCtx, model.Testnet, 10)
	s.Require().NoError(err)
	s.Empty(got)
}
