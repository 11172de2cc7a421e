package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/answer"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/dataset"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/query"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRepo() *dataset.Repository {
	return dataset.NewRepository([]model.Listing{
		{
			ID: 1, City: "Poznań", District: "Jeżyce",
			AreaM2: fp(70), Rooms: ip(3), Floor: ip(2),
			Price: fp(750000), PricePerM2: fp(10714),
			HasBalcony: model.TriTrue, HasElevator: model.TriTrue,
		},
		{
			ID: 2, City: "Poznań", District: "Wilda",
			AreaM2: fp(70), Rooms: ip(3), Floor: ip(2),
			Price: fp(750000), PricePerM2: fp(10714),
			HasBalcony: model.TriTrue, HasElevator: model.TriTrue,
		},
		{
			ID: 3, City: "Kraków", District: "Kazimierz",
			AreaM2: fp(90), Rooms: ip(4), Floor: ip(1),
			Price: fp(980000), PricePerM2: fp(10889),
			HasBalcony: model.TriTrue, HasElevator: model.TriFalse,
		},
		{
			ID: 4, City: "Kraków", District: "Podgórze",
			AreaM2: fp(48), Rooms: ip(3), Floor: ip(3),
			Price: fp(540000), PricePerM2: fp(11250),
			HasBalcony: model.TriFalse, HasElevator: model.TriTrue,
		},
	})
}

func newTestService(repo *dataset.Repository) *SearchService {
	interp := query.NewInterpreter(repo.Cities(), repo.Districts(), testLogger())
	composer := answer.NewComposer(nil, answer.Options{}, testLogger())
	return NewSearchService(repo, interp, composer, Options{}, testLogger())
}

func TestSearchScenarioJezyce(t *testing.T) {
	svc := newTestService(testRepo())

	resp := svc.Search(context.Background(), &model.SearchRequest{
		Query: "Poznań, Jeżyce, 60–80 m², do 800 tys, z balkonem",
	})

	require.NotNil(t, resp)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Results[0].ID, "the Wilda twin must be excluded by district")
	assert.Equal(t, "Poznań", resp.Filters.City)
	assert.Equal(t, "Jeżyce", resp.Filters.District)
	assert.Equal(t, answer.SourceFallback, resp.SummarySource)
	assert.NotEmpty(t, resp.SearchID)
	assert.Contains(t, resp.Summary, "Poznań | Jeżyce")
}

func TestSearchFamilyPersona(t *testing.T) {
	svc := newTestService(testRepo())

	resp := svc.Search(context.Background(), &model.SearchRequest{
		Query: "dla rodziny, Kraków",
	})

	assert.Equal(t, model.PersonaFamily, resp.Filters.Persona)
	require.NotNil(t, resp.Filters.Rooms)
	assert.Equal(t, 3.0, *resp.Filters.Rooms.Lo)
	assert.Equal(t, 5.0, *resp.Filters.Rooms.Hi)

	// Only the 90 m² 4-room Kraków listing fits the family defaults.
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(3), resp.Results[0].ID)
}

func TestSearchNoMatchesIsNotAnError(t *testing.T) {
	svc := newTestService(testRepo())

	resp := svc.Search(context.Background(), &model.SearchRequest{
		Query: "Gdańsk do 100 tys",
	})

	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Results)
	assert.Equal(t, answer.EmptyResultsMessage, resp.Summary)
}

func TestSearchEmptyDataset(t *testing.T) {
	svc := newTestService(dataset.NewRepository(nil))

	resp := svc.Search(context.Background(), &model.SearchRequest{Query: "Poznań"})
	assert.Equal(t, 0, resp.Total)
}

func TestSearchLimitClamped(t *testing.T) {
	svc := newTestService(testRepo())

	resp := svc.Search(context.Background(), &model.SearchRequest{
		Query:   "mieszkanie",
		Options: &model.SearchOptions{Limit: 100000},
	})
	assert.LessOrEqual(t, resp.Total, 200)

	resp = svc.Search(context.Background(), &model.SearchRequest{
		Query:   "mieszkanie",
		Options: &model.SearchOptions{Limit: 2},
	})
	assert.Equal(t, 2, resp.Total)
}

func TestRoommates(t *testing.T) {
	repo := dataset.NewRepository([]model.Listing{
		{ID: 1, City: "Poznań", Rooms: ip(3), AreaM2: fp(54), Price: fp(540000)},
		{ID: 2, City: "Poznań", Rooms: ip(3), AreaM2: fp(90), Price: fp(450000)},
		{ID: 3, City: "Poznań", Rooms: ip(1), AreaM2: fp(30), Price: fp(300000)},
	})
	svc := newTestService(repo)

	resp := svc.Roommates(context.Background(), &model.SearchRequest{
		Query: "mieszkanie ze współlokatorami w Poznaniu",
	})

	// 90 m² over 3 rooms is 30 m² per room, outside the sharing band;
	// the studio has too few rooms.
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Results[0].ID)
	require.NotNil(t, resp.Results[0].PerRoomPrice)
	assert.InDelta(t, 180000, *resp.Results[0].PerRoomPrice, 1e-9)
	assert.True(t, resp.Filters.RoommateIntent)
}

func TestGetListing(t *testing.T) {
	svc := newTestService(testRepo())

	l, ctx, ok := svc.GetListing(1)
	require.True(t, ok)
	assert.Equal(t, "Jeżyce", l.District)
	require.NotNil(t, ctx.AvgCity)

	_, _, ok = svc.GetListing(999)
	assert.False(t, ok)
}
