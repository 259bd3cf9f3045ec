package models

const (
	MaterialPET      = "PET"
	MaterialAluminum = "Alumínio"
	MaterialGlass    = "Vidro"
	MaterialPaper    = "Papel"
	MaterialOther    = "Outros"
)

type MaterialStatistic struct {
	Type        string  `json:"type"`
	Count       int     `json:"count"`
	TotalKg     float64 `json:"total_kg"`
	TotalPoints int     `json:"total_points"`
	Percent     float64 `json:"percent"`
}

type Statistics struct {
	PerMaterial []MaterialStatistic `json:"per_material"`
	TotalCount  int                 `json:"total_count"`
	TotalKg     float64             `json:"total_kg"`
	TotalPoints int                 `json:"total_points"`
	Fallback    bool                `json:"fallback,omitempty"`
}

// RankingRow is one input row for ranking aggregation. A row from the
// rankingturmas view is already a group; a raw entregas row has Count 1.
type RankingRow struct {
	Class   string
	Course  string
	Unit    string
	Count   int
	TotalKg float64
	Points  int
}

type RankingEntry struct {
	Class       string  `json:"turma"`
	Course      string  `json:"curso"`
	Unit        string  `json:"unidade"`
	Deliveries  int     `json:"total_entregas"`
	TotalKg     float64 `json:"total_reciclado_kg"`
	TotalPoints int     `json:"total_pontos"`
}
