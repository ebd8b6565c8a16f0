package batchio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/macrolens/fdcresolve/internal/domain"
)

// DecodeNames reads the entire input stream and decodes it as a JSON array
// of product name strings. An empty or whitespace-only stream is a valid
// empty batch. Anything else that is not an array of strings is a fatal
// input error: no lookups may run against a malformed batch.
func DecodeNames(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	// JSON null unmarshals into a string slice without error; it is not a
	// list of product names.
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: got null", domain.ErrInvalidBatchInput)
	}

	var names []string
	if err := json.Unmarshal(trimmed, &names); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBatchInput, err)
	}

	return names, nil
}

// EncodeMatches writes the batch response as a single JSON array of match
// arrays, index-aligned with the input batch, followed by a newline. Nil
// inner slices are rendered as [] so no position ever encodes as null.
func EncodeMatches(w io.Writer, results [][]domain.FoundationFoodMatch) error {
	if results == nil {
		results = [][]domain.FoundationFoodMatch{}
	}
	for i, matches := range results {
		if matches == nil {
			results[i] = []domain.FoundationFoodMatch{}
		}
	}

	if err := json.NewEncoder(w).Encode(results); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
