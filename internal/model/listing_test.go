package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTristateJSON(t *testing.T) {
	l := Listing{ID: 1, HasBalcony: TriTrue, HasElevator: TriFalse}

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"has_balcony":true`)
	assert.Contains(t, string(data), `"has_elevator":false`)
	assert.Contains(t, string(data), `"has_garage":null`)

	var back Listing
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, TriTrue, back.HasBalcony)
	assert.Equal(t, TriFalse, back.HasElevator)
	assert.Equal(t, TriUnknown, back.HasGarage)
}

func TestTristateRejectsNonBool(t *testing.T) {
	var tr Tristate
	assert.Error(t, json.Unmarshal([]byte(`"tak"`), &tr))
}

func TestRangeNormalization(t *testing.T) {
	assert.Nil(t, NewRange(nil, nil))

	r := RangeOf(80, 60)
	require.NotNil(t, r)
	assert.Equal(t, 60.0, *r.Lo)
	assert.Equal(t, 80.0, *r.Hi)

	var none *Range
	assert.True(t, none.Contains(123))
	assert.True(t, RangeOf(60, 80).Contains(60))
	assert.False(t, RangeOf(60, 80).Contains(59.9))
}
