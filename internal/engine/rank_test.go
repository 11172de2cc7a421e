package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
)

func scoredFixture() []model.ScoredListing {
	cheap := testListing(1)
	cheap.Price = fp(500000)
	cheap.AreaM2 = fp(48)

	mid := testListing(2)
	mid.Price = fp(700000)
	mid.AreaM2 = fp(65)

	dear := testListing(3)
	dear.Price = fp(900000)
	dear.AreaM2 = fp(82)

	noPrice := testListing(4)
	noPrice.Price = nil
	noPrice.AreaM2 = nil

	return []model.ScoredListing{
		{Listing: dear, Score: 3.5},
		{Listing: noPrice, Score: 9.0},
		{Listing: cheap, Score: 6.0},
		{Listing: mid, Score: 6.0},
	}
}

func rankedIDs(scored []model.ScoredListing, fs *model.FilterSet) []int64 {
	ranked := Rank(scored, fs)
	ids := make([]int64, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	return ids
}

func TestRankByScore(t *testing.T) {
	fs := model.NewFilterSet()

	// Score desc, ties broken by price asc, then id.
	assert.Equal(t, []int64{4, 1, 2, 3}, rankedIDs(scoredFixture(), fs))
}

func TestRankByPriceAsc(t *testing.T) {
	fs := model.NewFilterSet()
	fs.Sort = model.SortPriceAsc

	assert.Equal(t, []int64{1, 2, 3, 4}, rankedIDs(scoredFixture(), fs))
}

func TestRankByPriceDescMissingStillLast(t *testing.T) {
	fs := model.NewFilterSet()
	fs.Sort = model.SortPriceDesc

	assert.Equal(t, []int64{3, 2, 1, 4}, rankedIDs(scoredFixture(), fs))
}

func TestRankByArea(t *testing.T) {
	fs := model.NewFilterSet()
	fs.Sort = model.SortAreaAsc
	assert.Equal(t, []int64{1, 2, 3, 4}, rankedIDs(scoredFixture(), fs))

	fs.Sort = model.SortAreaDesc
	assert.Equal(t, []int64{3, 2, 1, 4}, rankedIDs(scoredFixture(), fs))
}

func TestRankDeterministic(t *testing.T) {
	fs := model.NewFilterSet()
	first := rankedIDs(scoredFixture(), fs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, rankedIDs(scoredFixture(), fs))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	fs := model.NewFilterSet()
	fs.Sort = model.SortPriceAsc

	in := scoredFixture()
	before := make([]int64, len(in))
	for i, s := range in {
		before[i] = s.ID
	}

	Rank(in, fs)

	after := make([]int64, len(in))
	for i, s := range in {
		after[i] = s.ID
	}
	assert.Equal(t, before, after)
}

func TestRankLimit(t *testing.T) {
	fs := model.NewFilterSet()
	fs.Limit = 2

	ranked := Rank(scoredFixture(), fs)
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(4), ranked[0].ID)
	assert.Equal(t, int64(1), ranked[1].ID)
}

func TestRankZeroLimitFallsBack(t *testing.T) {
	fs := model.NewFilterSet()
	fs.Limit = 0

	assert.Len(t, Rank(scoredFixture(), fs), 4)
}

func TestRankEmpty(t *testing.T) {
	fs := model.NewFilterSet()
	assert.Empty(t, Rank(nil, fs))
}
