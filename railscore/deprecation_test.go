package railscore

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnDeprecatedEmitsOnce(t *testing.T) {
	// Package init already consumed the process-wide Once against stderr;
	// reset it so the emission count is observable.
	warnOnce = sync.Once{}

	var buf bytes.Buffer
	warnDeprecated(&buf)
	warnDeprecated(&buf)
	warnDeprecated(&buf)

	assert.Equal(t, 1, strings.Count(buf.String(), "DEPRECATED"),
		"repeated loads must not repeat the notice")
	assert.Equal(t, deprecationNotice, buf.String())
}

func TestNoticeContent(t *testing.T) {
	notice := Notice()

	// Install and cleanup commands, verbatim.
	assert.Contains(t, notice, "go get github.com/RAILethicsHub/rail-score-go/railscoresdk")
	assert.Contains(t, notice, "go mod tidy")

	// Old and new import statements, verbatim.
	assert.Contains(t, notice, `import "github.com/RAILethicsHub/rail-score-go/railscore"`)
	assert.Contains(t, notice, `import "github.com/RAILethicsHub/rail-score-go/railscoresdk"`)

	// Documentation links.
	assert.Contains(t, notice, "https://pkg.go.dev/github.com/RAILethicsHub/rail-score-go/railscoresdk")
	assert.Contains(t, notice, "https://github.com/RAILethicsHub/rail-score-go")
}

func TestNoticeMatchesEmission(t *testing.T) {
	var buf bytes.Buffer
	emitNotice(&buf)
	assert.Equal(t, Notice(), buf.String())
}
