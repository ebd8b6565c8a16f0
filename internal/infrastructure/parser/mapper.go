package parser

import (
	"github.com/macrolens/fdcresolve/internal/domain"
)

// MapToParsedIngredient converts a parser service response to the domain
// ParsedIngredient model. Match order is preserved as returned by the
// service; all five match fields are carried through even when empty.
func MapToParsedIngredient(input string, resp *parseResponse) *domain.ParsedIngredient {
	matches := make([]domain.FoundationFoodMatch, 0, len(resp.FoundationFoods))

	for _, ff := range resp.FoundationFoods {
		matches = append(matches, domain.FoundationFoodMatch{
			FdcID:      ff.FdcID,
			Text:       ff.Text,
			Category:   ff.Category,
			Confidence: ff.Confidence,
			DataType:   ff.DataType,
		})
	}

	return &domain.ParsedIngredient{
		Input:           input,
		FoundationFoods: matches,
	}
}
