package domain

import "context"

// IngredientParser defines the interface to the external natural-language
// ingredient parser that performs the actual text-to-taxonomy matching and
// confidence scoring. The text is passed through verbatim: no trimming,
// normalization, or encoding checks happen on this side of the boundary.
type IngredientParser interface {
	ParseIngredient(ctx context.Context, text string) (*ParsedIngredient, error)
}
