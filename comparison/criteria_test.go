package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Migueeel08/focoshop-sub000/models"
)

func TestDefaultSetEqualSplit(t *testing.T) {
	s := DefaultSet()

	require.Equal(t, 5, s.ActiveCount())
	for _, c := range s.Criteria {
		assert.Equal(t, 20, c.Weight, "criterion %s", c.Name)
	}
	assert.Equal(t, 100, s.TotalWeight())
	assert.True(t, s.Auto)
	assert.NoError(t, s.Validate())
}

func TestRedistributeWithRemainder(t *testing.T) {
	s := DefaultSet()
	require.NoError(t, s.Toggle(CriterionSales))
	require.NoError(t, s.Toggle(CriterionStock))

	// 3 active: base 33, remainder 1 goes to the first active criterion
	require.Equal(t, 3, s.ActiveCount())
	assert.Equal(t, 34, s.Criteria[0].Weight)
	assert.Equal(t, 33, s.Criteria[1].Weight)
	assert.Equal(t, 33, s.Criteria[2].Weight)
	assert.Equal(t, 100, s.TotalWeight())
}

func TestWeightConservation(t *testing.T) {
	// Any sequence of toggles under auto mode keeps the active sum at exactly
	// 100 and every inactive criterion at 0.
	s := DefaultSet()
	sequence := []string{
		CriterionPrice, CriterionRating, CriterionPrice,
		CriterionSales, CriterionRating, CriterionStock,
	}
	for _, name := range sequence {
		err := s.Toggle(name)
		if err != nil {
			require.ErrorIs(t, err, ErrLastActive)
		}
		require.GreaterOrEqual(t, s.ActiveCount(), 1)
		assert.Equal(t, 100, s.TotalWeight())
		for _, c := range s.Criteria {
			if !c.Active {
				assert.Zero(t, c.Weight, "inactive criterion %s must weigh 0", c.Name)
			}
		}
	}
}

func TestToggleRefusesLastActive(t *testing.T) {
	s := DefaultSet()
	for _, name := range []string{CriterionRating, CriterionReviews, CriterionSales, CriterionStock} {
		require.NoError(t, s.Toggle(name))
	}
	require.Equal(t, 1, s.ActiveCount())

	err := s.Toggle(CriterionPrice)
	assert.ErrorIs(t, err, ErrLastActive)
	assert.True(t, s.Criteria[0].Active, "last criterion must stay active")
	assert.Equal(t, 100, s.Criteria[0].Weight)
}

func TestAdjustWeightCap(t *testing.T) {
	tests := []struct {
		name     string
		raw      int
		expected int
		wantErr  error
	}{
		{"within headroom", 30, 30, nil},
		{"negative clamps to zero", -10, 0, nil},
		{"above 100 clamps to headroom", 250, 20, ErrTotalExceeded},
		{"exceeds headroom", 45, 20, ErrTotalExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSet() // five active criteria at 20 each, 80 others
			err := s.AdjustWeight(CriterionPrice, tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, s.Criteria[0].Weight)
			assert.LessOrEqual(t, s.TotalWeight(), 100)
			assert.False(t, s.Auto, "manual edits disable auto distribution")
		})
	}
}

func TestAdjustWeightStickyManualMode(t *testing.T) {
	s := DefaultSet()
	require.NoError(t, s.AdjustWeight(CriterionPrice, 10))
	require.False(t, s.Auto)

	// Toggling no longer redistributes once in manual mode.
	require.NoError(t, s.Toggle(CriterionStock))
	assert.Equal(t, 10, s.Criteria[0].Weight)

	s.RedistributeEqually()
	assert.True(t, s.Auto)
	assert.Equal(t, 100, s.TotalWeight())
}

func TestAdjustWeightRejectsInactiveAndUnknown(t *testing.T) {
	s := DefaultSet()
	require.NoError(t, s.Toggle(CriterionStock))

	assert.ErrorIs(t, s.AdjustWeight(CriterionStock, 50), ErrInactiveCriterion)
	assert.ErrorIs(t, s.AdjustWeight("garantia", 50), ErrUnknownCriterion)
	assert.ErrorIs(t, s.Toggle("garantia"), ErrUnknownCriterion)
}

func TestValidate(t *testing.T) {
	s := DefaultSet()
	assert.NoError(t, s.Validate())

	s.Criteria[0].Weight = 19
	s.Auto = false
	assert.Error(t, s.Validate(), "sum 99 must fail validation")

	none := Set{Criteria: []Criterion{{Name: CriterionPrice, Kind: KindCost}}}
	assert.ErrorIs(t, none.Validate(), ErrNoActive)
}

func TestPayloadFractionalWeights(t *testing.T) {
	s := DefaultSet()
	require.NoError(t, s.Toggle(CriterionSales))
	require.NoError(t, s.Toggle(CriterionStock))

	payload := s.Payload()
	require.Len(t, payload, 3)
	assert.NotContains(t, payload, CriterionSales)
	assert.NotContains(t, payload, CriterionStock)

	assert.InDelta(t, 0.34, payload[CriterionPrice].Weight, 0.001)
	assert.Equal(t, KindCost, payload[CriterionPrice].Kind)
	assert.InDelta(t, 0.33, payload[CriterionRating].Weight, 0.001)
	assert.Equal(t, KindBenefit, payload[CriterionRating].Kind)

	total := 0.0
	for _, spec := range payload {
		total += spec.Weight
	}
	assert.InDelta(t, 1.0, total, 0.001)
}

func TestValidateCandidates(t *testing.T) {
	assert.ErrorIs(t, ValidateCandidates([]int{1}), ErrCandidateCount)
	assert.NoError(t, ValidateCandidates([]int{1, 2}))
	assert.NoError(t, ValidateCandidates([]int{1, 2, 3, 4, 5}))
	assert.ErrorIs(t, ValidateCandidates([]int{1, 2, 3, 4, 5, 6}), ErrCandidateCount)
	assert.ErrorIs(t, ValidateCandidates(nil), ErrCandidateCount)
}

func TestFromSpecs(t *testing.T) {
	specs := map[string]models.CriterionSpec{
		CriterionRating: {Weight: 0.5, Kind: KindBenefit},
		CriterionPrice:  {Weight: 0.3, Kind: KindCost},
		"garantia":      {Weight: 0.2, Kind: KindBenefit},
	}

	s := FromSpecs(specs)
	require.Len(t, s.Criteria, 3)

	// Canonical names first in canonical order, extras appended alphabetically.
	assert.Equal(t, CriterionPrice, s.Criteria[0].Name)
	assert.Equal(t, CriterionRating, s.Criteria[1].Name)
	assert.Equal(t, "garantia", s.Criteria[2].Name)

	assert.Equal(t, 30, s.Criteria[0].Weight)
	assert.Equal(t, KindCost, s.Criteria[0].Kind)
	assert.Equal(t, 100, s.TotalWeight())
	assert.NoError(t, s.Validate())
}
