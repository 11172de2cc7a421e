package engine

import (
	"math"
	"sort"

	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/textutil"
)

// Per-occupant room area band in m²; candidates outside it are not useful
// for sharing. Rows with unknown per-room area are kept (fail-open).
const (
	minPerRoomArea = 8.0
	maxPerRoomArea = 20.0
)

// RoommateCandidates produces shared-housing candidates: multi-room
// listings with sensible per-occupant economics, ordered by per-room price.
// The city/district narrowing is a hard filter, matching the main engine,
// even though it can empty the candidate set.
func RoommateCandidates(listings []model.Listing, fs *model.FilterSet, maxN int) []model.RoommateCandidate {
	normCity := textutil.Normalize(fs.City)
	normDistrict := textutil.Normalize(fs.District)

	out := make([]model.RoommateCandidate, 0, len(listings))
	for _, l := range listings {
		// Missing room count is treated as 0, which excludes the row.
		if l.Rooms == nil || *l.Rooms < 2 {
			continue
		}
		if fs.City != "" && textutil.Normalize(l.City) != normCity {
			continue
		}
		if fs.District != "" && textutil.Normalize(l.District) != normDistrict {
			continue
		}

		rooms := *l.Rooms
		perPrice := perRoom(l.Price, rooms)
		perArea := perRoom(l.AreaM2, rooms)

		if perArea != nil && (*perArea < minPerRoomArea || *perArea > maxPerRoomArea) {
			continue
		}

		out = append(out, model.RoommateCandidate{
			ScoredListing: model.ScoredListing{
				Listing:        l,
				Score:          scoreSafe(l, fs),
				MatchedReasons: matchReasons(l, fs),
			},
			PerRoomPrice: perPrice,
			PerRoomArea:  perArea,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if c := cmpPtr(a.PerRoomPrice, b.PerRoomPrice, false); c != 0 {
			return c < 0
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if c := cmpPtr(a.Price, b.Price, false); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})

	if maxN > 0 && len(out) > maxN {
		out = out[:maxN]
	}
	return out
}

// perRoom divides a total by the room count; undefined or infinite results
// are unknown, never zero.
func perRoom(total *float64, rooms int) *float64 {
	if total == nil || rooms <= 0 {
		return nil
	}
	v := *total / float64(rooms)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
