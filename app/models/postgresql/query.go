package models

// DeliveryFilter is shared by the listing, statistics and ranking endpoints.
// Empty fields are not applied.
type DeliveryFilter struct {
	Class    string   `query:"turma"`
	Course   string   `query:"curso"`
	Unit     string   `query:"unidade"`
	Statuses []string `query:"-"`
}

type ClassQuery struct {
	CourseID string `query:"curso_id"`
	UnitID   string `query:"unidade_id"`
	Semester string `query:"semestre"`
}

type AuditQuery struct {
	Limit    int  `query:"limit"`
	Fallback bool `query:"fallback"`
}
