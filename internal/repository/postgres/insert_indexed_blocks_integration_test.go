package postgres

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lockdapp/lockdex-backend/internal/model"
)

func (s *RepositorySuite) TestInsertIndexedBlocks() {
	now := time.Now().UTC().Truncate(time.Second)
	blocks := []model.IndexedBlock{
		newIndexedBlock(100, now),
		newIndexedBlock(101, now.Add(10*time.Minute)),
	}

	s.metrics.EXPECT().Observe("insert_indexed_blocks", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertIndexedBlocks(s.testCtx, blocks))
	s.Equal(2, s.countRows("indexed_blocks"))
}

func (s *RepositorySuite) TestInsertIndexedBlocksUpsertsByHeight() {
	now := time.Now().UTC().Truncate(time.Second)

	first := newIndexedBlock(100, now)
	reorged := first
	reorged.Hash = "reorged-hash"
	reorged.ContentCount = 9

	s.metrics.EXPECT().Observe("insert_indexed_blocks", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertIndexedBlocks(s.testCtx, []model.IndexedBlock{first}))
	s.Require().NoError(s.repo.InsertIndexedBlocks(s.testCtx, []model.IndexedBlock{reorged}))

	s.Equal(1, s.countRows("indexed_blocks"))

	var hash string
	var contentCount int64
	err := s.repo.db.QueryRowContext(s.testCtx,
		"SELECT hash, content_count FROM indexed_blocks WHERE network = $1 AND height = $2",
		string(model.Testnet), int64(100)).Scan(&hash, &contentCount)
	s.Require().NoError(err)
	s.Equal("reorged-hash", hash)
	s.Equal(int64(9), contentCount)
}
