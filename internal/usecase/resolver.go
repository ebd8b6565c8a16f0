package usecase

import (
	"context"

	"github.com/macrolens/fdcresolve/internal/domain"
)

// LookupResult is the outcome of resolving a single product name. A failed
// lookup carries the error and an empty match list; the error never escapes
// the item boundary.
type LookupResult struct {
	Name    string
	Matches []domain.FoundationFoodMatch
	Err     error
}

// Failed reports whether the lookup for this name failed.
func (r LookupResult) Failed() bool {
	return r.Err != nil
}

// ResolverConfig holds configuration for the resolver service
type ResolverConfig struct {
	// OnLookupError, when set, is called for each failed lookup with the
	// item's batch index, the product name, and the underlying error. The
	// batch still completes and the item still resolves to an empty list.
	OnLookupError func(index int, name string, err error)
}

// ResolverService resolves batches of free-text product names to foundation
// food matches through the injected ingredient parser.
type ResolverService struct {
	parser        domain.IngredientParser
	onLookupError func(index int, name string, err error)
}

// NewResolverService creates a new resolver service with dependencies
func NewResolverService(parser domain.IngredientParser, config ResolverConfig) *ResolverService {
	return &ResolverService{
		parser:        parser,
		onLookupError: config.OnLookupError,
	}
}

// ResolveBatch resolves each product name to its foundation food matches.
// Names are processed sequentially, in input order, one parser call per name,
// with no retries. The result always has the same length as names; a failed
// lookup contributes an empty list at its position and has no effect on any
// other item.
func (s *ResolverService) ResolveBatch(ctx context.Context, names []string) [][]domain.FoundationFoodMatch {
	results := make([][]domain.FoundationFoodMatch, len(names))

	for i, name := range names {
		outcome := s.lookupOne(ctx, name)
		if outcome.Failed() {
			if s.onLookupError != nil {
				s.onLookupError(i, name, outcome.Err)
			}
			results[i] = []domain.FoundationFoodMatch{}
			continue
		}
		results[i] = outcome.Matches
	}

	return results
}

// lookupOne performs a single parser call for one product name. Any parser
// error, including malformed results, becomes a failed LookupResult.
func (s *ResolverService) lookupOne(ctx context.Context, name string) LookupResult {
	parsed, err := s.parser.ParseIngredient(ctx, name)
	if err != nil {
		return LookupResult{Name: name, Err: err}
	}

	if parsed == nil || parsed.FoundationFoods == nil {
		return LookupResult{Name: name, Matches: []domain.FoundationFoodMatch{}}
	}

	return LookupResult{Name: name, Matches: parsed.FoundationFoods}
}
