package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryAudit records one delivery submission, including the ones answered
// with a synthetic record in demo mode.
type DeliveryAudit struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DeliveryID   int64              `bson:"delivery_id" json:"deliveryId"`
	MaterialType string             `bson:"material_type" json:"materialType"`
	QuantityKg   float64            `bson:"quantity_kg" json:"quantityKg"`
	Points       int                `bson:"points" json:"points"`
	Class        string             `bson:"class" json:"class"`
	Course       string             `bson:"course" json:"course"`
	Unit         string             `bson:"unit" json:"unit"`
	UserEmail    string             `bson:"user_email,omitempty" json:"userEmail,omitempty"`
	Fallback     bool               `bson:"fallback" json:"fallback"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}
