package domain

import "encoding/json"

// FoundationFoodMatch is one candidate foundation food record returned by the
// ingredient parser for a product name. Field names are fixed for downstream
// consumers and must not change.
type FoundationFoodMatch struct {
	FdcID      json.Number `json:"fdc_id"`
	Text       string      `json:"text"`
	Category   string      `json:"category"`
	Confidence float64     `json:"confidence"`
	DataType   string      `json:"data_type"`
}

// ParsedIngredient is the result of parsing a single product name.
// FoundationFoods keeps the order the parser returned; the parser documents
// that order as confidence-descending and nothing here re-sorts it.
type ParsedIngredient struct {
	Input           string                `json:"input"`
	FoundationFoods []FoundationFoodMatch `json:"foundation_foods"`
}
