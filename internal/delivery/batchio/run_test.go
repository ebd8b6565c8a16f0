package batchio

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrolens/fdcresolve/internal/domain"
)

// stubResolver returns one canned match per name, or an empty list for names
// in failFor, mimicking the usecase layer's failure isolation.
type stubResolver struct {
	failFor map[string]bool
	batches [][]string
}

func (s *stubResolver) ResolveBatch(ctx context.Context, names []string) [][]domain.FoundationFoodMatch {
	s.batches = append(s.batches, names)

	results := make([][]domain.FoundationFoodMatch, len(names))
	for i, name := range names {
		if s.failFor[name] {
			results[i] = []domain.FoundationFoodMatch{}
			continue
		}
		results[i] = []domain.FoundationFoodMatch{
			{FdcID: "123456", Text: name, Category: "Test", Confidence: 0.9, DataType: "foundation_food"},
		}
	}
	return results
}

func TestRun_EndToEnd(t *testing.T) {
	resolver := &stubResolver{}
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader(`["flour", "butter", "chicken"]`), &out, resolver)

	require.NoError(t, err)

	var decoded [][]map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	for i, name := range []string{"flour", "butter", "chicken"} {
		require.Len(t, decoded[i], 1)
		assert.Equal(t, name, decoded[i][0]["text"])
	}
}

func TestRun_EmptyInput(t *testing.T) {
	resolver := &stubResolver{}
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader(""), &out, resolver)

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestRun_FailedItemEncodesAsEmptyList(t *testing.T) {
	resolver := &stubResolver{failFor: map[string]bool{"nonsense$$$": true}}
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader(`["nonsense$$$"]`), &out, resolver)

	require.NoError(t, err)
	assert.Equal(t, "[[]]\n", out.String())
}

func TestRun_MalformedInputAbortsBeforeLookups(t *testing.T) {
	resolver := &stubResolver{}
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader(`{"not": "a list"}`), &out, resolver)

	assert.ErrorIs(t, err, domain.ErrInvalidBatchInput)
	assert.Empty(t, resolver.batches, "no lookups may run for a malformed batch")
	assert.Empty(t, out.String(), "no partial output")
}
