package engine

import (
	"github.com/janbusiness5-code/asystent-mieszkaniowy/internal/model"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

// testListing builds a fully populated listing; tests blank out fields as
// needed.
func testListing(id int64) model.Listing {
	return model.Listing{
		ID:          id,
		City:        "Poznań",
		District:    "Jeżyce",
		AreaM2:      fp(70),
		Rooms:       ip(3),
		Floor:       ip(2),
		Price:       fp(750000),
		HasBalcony:  model.TriTrue,
		HasElevator: model.TriTrue,
	}
}

func testDataset() []model.Listing {
	a := testListing(1)

	b := testListing(2)
	b.District = "Wilda"

	c := testListing(3)
	c.City = "Kraków"
	c.District = "Kazimierz"
	c.Price = fp(950000)
	c.AreaM2 = fp(55)
	c.Rooms = ip(2)
	c.HasBalcony = model.TriFalse

	d := testListing(4)
	d.Price = nil
	d.HasBalcony = model.TriUnknown

	return []model.Listing{a, b, c, d}
}
