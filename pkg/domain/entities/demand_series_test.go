package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemandSeries_Validate(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	valid, err := NewDemandSeries([]time.Time{day(1), day(2), day(3)}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.NoError(t, valid.Validate())
	assert.Equal(t, 3, valid.Len())

	_, err = NewDemandSeries([]time.Time{day(1)}, []float64{1, 2})
	assert.Error(t, err)

	empty := &DemandSeries{}
	assert.ErrorIs(t, empty.Validate(), ErrValidation)

	unordered, err := NewDemandSeries([]time.Time{day(2), day(1)}, []float64{1, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, unordered.Validate(), ErrType)

	duplicated, err := NewDemandSeries([]time.Time{day(1), day(1)}, []float64{1, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, duplicated.Validate(), ErrType)

	unindexed := &DemandSeries{Values: []float64{1}}
	assert.ErrorIs(t, unindexed.Validate(), ErrType)
}

func TestCategory_String(t *testing.T) {
	for _, c := range []Category{CategoryA, CategoryB, CategoryC} {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "Unknown", Category(9).String())

	_, err := ParseCategory("D")
	assert.EqualError(t, err, "invalid category: D (expected A, B or C)")
}
