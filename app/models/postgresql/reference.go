package models

import "time"

type Unit struct {
	ID        int64    `json:"id"`
	Name      string   `json:"nome"`
	Address   *string  `json:"endereco"`
	City      *string  `json:"cidade"`
	State     *string  `json:"estado"`
	Phone     *string  `json:"telefone"`
	Email     *string  `json:"email"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Course struct {
	ID            int64   `json:"id"`
	Name          string  `json:"nome"`
	KnowledgeArea *string `json:"area_conhecimento"`
	Semesters     *int    `json:"duracao_semestres"`
	DegreeType    *string `json:"tipo_grau"`
	Active        bool    `json:"ativo"`
}

// Class mirrors the turmas_detalhadas view (turmas joined with cursos and unidades).
type Class struct {
	ID            int64      `json:"id"`
	Code          string     `json:"turma_codigo"`
	CourseID      int64      `json:"curso_id"`
	CourseName    string     `json:"curso_nome"`
	UnitID        int64      `json:"unidade_id"`
	UnitName      string     `json:"unidade_nome"`
	Shift         *string    `json:"turno"`
	Semester      *string    `json:"semestre"`
	StartDate     *time.Time `json:"data_inicio"`
	TotalSeats    int        `json:"vagas_total"`
	OccupiedSeats int        `json:"vagas_ocupadas"`
	Active        bool       `json:"ativo"`
}
