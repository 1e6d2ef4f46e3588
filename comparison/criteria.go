package comparison

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Migueeel08/focoshop-sub000/models"
)

// Criterion kinds: whether a higher raw value ranks a product better or worse.
const (
	KindBenefit = "benefit"
	KindCost    = "cost"
)

// Canonical criterion names, matching the upstream TOPSIS service.
const (
	CriterionPrice   = "precio"
	CriterionRating  = "calificacion"
	CriterionReviews = "num_calificaciones"
	CriterionSales   = "ventas"
	CriterionStock   = "stock"
)

// Candidate bounds for a comparison.
const (
	MinCandidates = 2
	MaxCandidates = 5
)

var (
	ErrUnknownCriterion  = errors.New("unknown criterion")
	ErrInactiveCriterion = errors.New("criterion is not active")
	ErrLastActive        = errors.New("at least one criterion must stay active")
	ErrTotalExceeded     = errors.New("total weight cannot exceed 100%")
	ErrNoActive          = errors.New("no active criteria")
	ErrCandidateCount    = fmt.Errorf("a comparison requires between %d and %d products", MinCandidates, MaxCandidates)
)

// Criterion is one weighted evaluation axis. Weight is an integer percentage;
// inactive criteria always carry weight 0.
type Criterion struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Weight int    `json:"weight"`
	Active bool   `json:"active"`
}

// Set is an ordered criteria collection. Auto reports whether weights follow
// the equal-distribution rule; any manual adjustment turns it off until the
// user explicitly redistributes.
type Set struct {
	Criteria []Criterion `json:"criteria"`
	Auto     bool        `json:"auto"`
}

// DefaultSet returns the five standard criteria, all active, equally weighted.
func DefaultSet() Set {
	s := Set{
		Criteria: []Criterion{
			{Name: CriterionPrice, Kind: KindCost, Active: true},
			{Name: CriterionRating, Kind: KindBenefit, Active: true},
			{Name: CriterionReviews, Kind: KindBenefit, Active: true},
			{Name: CriterionSales, Kind: KindBenefit, Active: true},
			{Name: CriterionStock, Kind: KindBenefit, Active: true},
		},
	}
	s.RedistributeEqually()
	return s
}

// canonicalOrder fixes the display position of the standard criteria when a
// set is rebuilt from an unordered map.
var canonicalOrder = map[string]int{
	CriterionPrice:   0,
	CriterionRating:  1,
	CriterionReviews: 2,
	CriterionSales:   3,
	CriterionStock:   4,
}

// FromSpecs rebuilds a Set from the upstream default-criteria map. Standard
// criteria keep their canonical order; anything else is appended
// alphabetically. Every listed criterion starts active with its weight
// converted back to an integer percentage.
func FromSpecs(specs map[string]models.CriterionSpec) Set {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iok := canonicalOrder[names[i]]
		oj, jok := canonicalOrder[names[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok:
			return true
		case jok:
			return false
		default:
			return names[i] < names[j]
		}
	})

	s := Set{}
	for _, name := range names {
		spec := specs[name]
		kind := spec.Kind
		if kind != KindCost {
			kind = KindBenefit
		}
		s.Criteria = append(s.Criteria, Criterion{
			Name:   name,
			Kind:   kind,
			Weight: int(math.Round(spec.Weight * 100)),
			Active: true,
		})
	}
	if s.TotalWeight() != 100 {
		s.RedistributeEqually()
	} else {
		s.Auto = true
	}
	return s
}

func (s *Set) index(name string) int {
	for i := range s.Criteria {
		if s.Criteria[i].Name == name {
			return i
		}
	}
	return -1
}

// ActiveCount returns how many criteria participate in scoring.
func (s *Set) ActiveCount() int {
	n := 0
	for i := range s.Criteria {
		if s.Criteria[i].Active {
			n++
		}
	}
	return n
}

// TotalWeight sums the weights of active criteria.
func (s *Set) TotalWeight() int {
	total := 0
	for i := range s.Criteria {
		if s.Criteria[i].Active {
			total += s.Criteria[i].Weight
		}
	}
	return total
}

// Toggle flips a criterion's active flag. Deactivating the last active
// criterion is refused: the set is left unchanged and ErrLastActive returned.
// Under auto mode a successful toggle redistributes weights equally.
func (s *Set) Toggle(name string) error {
	i := s.index(name)
	if i < 0 {
		return ErrUnknownCriterion
	}
	c := &s.Criteria[i]
	if c.Active {
		if s.ActiveCount() == 1 {
			return ErrLastActive
		}
		c.Active = false
		c.Weight = 0
	} else {
		c.Active = true
	}
	if s.Auto {
		s.RedistributeEqually()
	}
	return nil
}

// RedistributeEqually assigns each of the k active criteria floor(100/k) and
// hands the remainder out one point at a time to the first active criteria in
// order, so the total is exactly 100 whenever k >= 1. Inactive criteria are
// forced to 0. Re-enables auto mode.
func (s *Set) RedistributeEqually() {
	k := s.ActiveCount()
	if k == 0 {
		return
	}
	base := 100 / k
	remainder := 100 - base*k
	for i := range s.Criteria {
		c := &s.Criteria[i]
		if !c.Active {
			c.Weight = 0
			continue
		}
		c.Weight = base
		if remainder > 0 {
			c.Weight++
			remainder--
		}
	}
	s.Auto = true
}

// AdjustWeight sets a criterion's weight from raw user input. The value is
// clamped to [0,100] and then to whatever headroom the other active criteria
// leave; exceeding that headroom applies the clamped value and reports
// ErrTotalExceeded. Any adjustment switches the set to manual mode.
func (s *Set) AdjustWeight(name string, raw int) error {
	i := s.index(name)
	if i < 0 {
		return ErrUnknownCriterion
	}
	c := &s.Criteria[i]
	if !c.Active {
		return ErrInactiveCriterion
	}

	if raw < 0 {
		raw = 0
	}
	if raw > 100 {
		raw = 100
	}

	others := 0
	for j := range s.Criteria {
		if j != i && s.Criteria[j].Active {
			others += s.Criteria[j].Weight
		}
	}

	s.Auto = false
	if raw+others > 100 {
		raw = 100 - others
		if raw < 0 {
			raw = 0
		}
		c.Weight = raw
		return ErrTotalExceeded
	}
	c.Weight = raw
	return nil
}

// Validate checks the invariants a ranking request depends on: at least one
// active criterion and active weights totaling 100 (±0.1 to absorb rounding).
func (s *Set) Validate() error {
	if s.ActiveCount() == 0 {
		return ErrNoActive
	}
	if total := float64(s.TotalWeight()); math.Abs(total-100) > 0.1 {
		return fmt.Errorf("active criteria weights must total 100%%, got %d", s.TotalWeight())
	}
	return nil
}

// Payload emits the ranking-request criteria map: fractional weight plus kind,
// keyed by name, active criteria only.
func (s *Set) Payload() map[string]models.CriterionSpec {
	out := make(map[string]models.CriterionSpec, s.ActiveCount())
	for i := range s.Criteria {
		c := s.Criteria[i]
		if !c.Active {
			continue
		}
		out[c.Name] = models.CriterionSpec{
			Weight: float64(c.Weight) / 100,
			Kind:   c.Kind,
		}
	}
	return out
}

// ValidateCandidates enforces the 2..5 candidate bound before any ranking
// request is assembled.
func ValidateCandidates(ids []int) error {
	if len(ids) < MinCandidates || len(ids) > MaxCandidates {
		return ErrCandidateCount
	}
	return nil
}
