package batchio

import (
	"context"
	"io"

	"github.com/macrolens/fdcresolve/internal/domain"
)

// Resolver is the slice of the usecase layer the batch runner needs.
type Resolver interface {
	ResolveBatch(ctx context.Context, names []string) [][]domain.FoundationFoodMatch
}

// Run executes one batch: decode the input stream, resolve every name, and
// encode the full response. It returns an error only for the batch-fatal
// tier (undecodable input, unwritable output); item-level lookup failures
// are absorbed by the resolver and never surface here.
func Run(ctx context.Context, in io.Reader, out io.Writer, resolver Resolver) error {
	names, err := DecodeNames(in)
	if err != nil {
		return err
	}

	results := resolver.ResolveBatch(ctx, names)

	return EncodeMatches(out, results)
}
