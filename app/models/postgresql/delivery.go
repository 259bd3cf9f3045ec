package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pendente"
	StatusApproved = "aprovada"
	StatusRejected = "rejeitada"
)

// Delivery is one row of the entregas table.
type Delivery struct {
	ID           int64      `json:"id"`
	ImageURL     string     `json:"imagem_url"`
	QuantityKg   float64    `json:"quantidade"`
	MaterialType string     `json:"tipo_residuo"`
	Course       string     `json:"curso"`
	Class        string     `json:"turma"`
	Unit         string     `json:"unidade"`
	Points       int        `json:"pontos_obtidos"`
	Status       string     `json:"status"`
	DeliveredAt  time.Time  `json:"data_entrega"`
	UserID       *uuid.UUID `json:"usuario_id,omitempty"`
}

// Quantity is the submitted weight. It accepts a JSON number or a numeric
// string; any other value decodes without error and is marked invalid, so
// validation can report the field instead of the whole body failing.
type Quantity struct {
	Value   float64
	Present bool
	Valid   bool
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*q = Quantity{}
		return nil
	}

	q.Present = true
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(raw, 64)
	q.Value, q.Valid = v, err == nil
	return nil
}

// DeliveryRequest is the body of POST /deliveries.
type DeliveryRequest struct {
	ImageURL     string   `json:"imagem_url"`
	QuantityKg   Quantity `json:"quantidade"`
	MaterialType string   `json:"tipo_residuo"`
	Course       string   `json:"curso"`
	Class        string   `json:"turma"`
	Unit         string   `json:"unidade"`
}
