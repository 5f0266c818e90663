package railscore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/RAILethicsHub/rail-score-go/railscoresdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyAliasIdentity(t *testing.T) {
	// RailScore must be the successor's client type itself, not a copy,
	// wrapper, or subclass.
	legacy := reflect.TypeOf((*RailScore)(nil))
	successor := reflect.TypeOf((*railscoresdk.RailScoreClient)(nil))
	assert.Equal(t, successor, legacy)

	// The re-exported new name points at the same type too.
	reexported := reflect.TypeOf((*RailScoreClient)(nil))
	assert.Equal(t, successor, reexported)
}

func TestConstructorForwarding(t *testing.T) {
	// Forwarded constructors are the successor's own functions.
	assert.Equal(t,
		reflect.ValueOf(railscoresdk.NewClient).Pointer(),
		reflect.ValueOf(NewClient).Pointer())
	assert.Equal(t,
		reflect.ValueOf(railscoresdk.NewClientWithBaseURL).Pointer(),
		reflect.ValueOf(NewClientWithBaseURL).Pointer())

	// A client built through the legacy name is usable as the new type and
	// vice versa, with identical configuration.
	var c *RailScore = NewClient("rail-test-key")
	var s *railscoresdk.RailScoreClient = c
	assert.Equal(t, railscoresdk.DefaultBaseURL, s.BaseURL)
	assert.Equal(t, "rail-test-key", s.APIKey)
}

func TestExportSet(t *testing.T) {
	assert.Equal(t, []string{"RailScore", "RailScoreClient"}, Exports)
}

func TestVersionForwarding(t *testing.T) {
	assert.Equal(t, railscoresdk.Version, Version)
	assert.Equal(t, railscoresdk.DefaultBaseURL, DefaultBaseURL)
	assert.Equal(t, railscoresdk.Dimensions, Dimensions)
}

func TestNoFunctionalDrift(t *testing.T) {
	// The same request through the legacy name and through the successor
	// package must produce byte-identical results.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req railscoresdk.ScoreRequest
		require.NoError(t, json.Unmarshal(body, &req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(railscoresdk.ScoreResult{
			RailScore: 87.5,
			Dimensions: []railscoresdk.DimensionScore{
				{Dimension: "fairness", Score: 90, Confidence: 0.97},
				{Dimension: "safety", Score: 85, Confidence: 0.93},
			},
			Model: "rail-v2",
		})
	}))
	defer srv.Close()

	legacyClient := NewClientWithBaseURL("k", srv.URL)
	newClient := railscoresdk.NewClientWithBaseURL("k", srv.URL)

	got, err := legacyClient.Score(context.Background(), "hello")
	require.NoError(t, err)
	want, err := newClient.Score(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.InDelta(t, 87.5, got.RailScore, 0.0001)
	assert.Len(t, got.Dimensions, 2)
}
