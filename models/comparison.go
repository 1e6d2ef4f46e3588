package models

// CriterionSpec is the per-criterion entry of the TOPSIS request: a fractional
// weight in [0,1] and whether higher raw values are better ("benefit") or
// worse ("cost").
type CriterionSpec struct {
	Weight float64 `json:"peso" binding:"required,min=0,max=1"`
	Kind   string  `json:"tipo" binding:"required,oneof=benefit cost"`
}

// CompareRequest is the body of POST /topsis/comparar. A comparison needs
// between 2 and 5 candidates; when Criteria is omitted the ranking service
// falls back to its own defaults.
type CompareRequest struct {
	ProductIDs []int                    `json:"productos_ids" binding:"required,min=2,max=5"`
	Criteria   map[string]CriterionSpec `json:"criterios,omitempty"`
}

// RankedCandidate is one row of the ranking computed upstream.
type RankedCandidate struct {
	ProductID         int                `json:"producto_id"`
	Name              string             `json:"nombre"`
	Position          int                `json:"posicion"`
	Closeness         float64            `json:"puntaje_cercania"`
	DistanceIdeal     float64            `json:"distancia_ideal"`
	DistanceAntiIdeal float64            `json:"distancia_anti_ideal"`
	NormalizedValues  map[string]float64 `json:"valores_normalizados,omitempty"`
}

// ComparisonResult is relayed to the storefront exactly as the ranking service
// produced it; the gateway performs no TOPSIS arithmetic of its own.
type ComparisonResult struct {
	Ranking  []RankedCandidate        `json:"ranking"`
	Winner   *RankedCandidate         `json:"ganador,omitempty"`
	Criteria map[string]CriterionSpec `json:"criterios_utilizados,omitempty"`
}
