package model

import "time"

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// MovementTypeForDelta classifies a stock delta by its sign.
func MovementTypeForDelta(delta int) MovementType {
	switch {
	case delta > 0:
		return MovementIn
	case delta < 0:
		return MovementOut
	default:
		return MovementAdjustment
	}
}

// StockMovement is an append-only audit record of one stock quantity
// change. Movements are never mutated or deleted once written.
type StockMovement struct {
	ID               string       `json:"id"`
	ProductID        string       `json:"productId"`
	ProductName      string       `json:"productName"`
	Type             MovementType `json:"type"`
	Quantity         int          `json:"quantity"`
	PreviousQuantity int          `json:"previousQuantity"`
	NewQuantity      int          `json:"newQuantity"`
	Reason           string       `json:"reason"`
	Date             time.Time    `json:"date"`
	Reference        string       `json:"reference,omitempty"`
}
