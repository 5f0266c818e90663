package railscore

import "github.com/RAILethicsHub/rail-score-go/railscoresdk"

// Type aliases forwarding the successor's public surface. Aliases, not
// wrappers: a value built through this package is indistinguishable from one
// built through railscoresdk.
type (
	// RailScoreClient is an alias of railscoresdk.RailScoreClient.
	RailScoreClient = railscoresdk.RailScoreClient
	// ScoreRequest is an alias of railscoresdk.ScoreRequest.
	ScoreRequest = railscoresdk.ScoreRequest
	// DimensionScore is an alias of railscoresdk.DimensionScore.
	DimensionScore = railscoresdk.DimensionScore
	// ScoreResult is an alias of railscoresdk.ScoreResult.
	ScoreResult = railscoresdk.ScoreResult
	// HealthStatus is an alias of railscoresdk.HealthStatus.
	HealthStatus = railscoresdk.HealthStatus
	// APIError is an alias of railscoresdk.APIError.
	APIError = railscoresdk.APIError
)

// RailScore is the client name this package exported before the rename.
//
// Deprecated: use RailScoreClient (railscoresdk.RailScoreClient) instead.
type RailScore = railscoresdk.RailScoreClient

// Constructors forwarded by value so the legacy entry points are the
// successor's own functions.
var (
	NewClient            = railscoresdk.NewClient
	NewClientWithBaseURL = railscoresdk.NewClientWithBaseURL
)

// Dimensions forwards the successor's dimension list.
var Dimensions = railscoresdk.Dimensions

const (
	// Version of the underlying rail-score-sdk client.
	Version = railscoresdk.Version
	// DefaultBaseURL forwards the successor's hosted endpoint.
	DefaultBaseURL = railscoresdk.DefaultBaseURL
)

// Exports is the surface this package is committed to keeping alive: the
// legacy client name and its replacement. Everything else forwarded above is
// convenience for existing call sites.
var Exports = []string{"RailScore", "RailScoreClient"}
