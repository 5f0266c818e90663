package railscore

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// deprecationNotice is the fixed migration text. It carries the install
// command, the cleanup command, both import statements, and the doc links.
const deprecationNotice = `
  The railscore package is DEPRECATED and will not receive updates.
  Please switch to railscoresdk:

      go get github.com/RAILethicsHub/rail-score-go/railscoresdk
      go mod tidy

  Then update your imports:
      // Old
      import "github.com/RAILethicsHub/rail-score-go/railscore"
      // New
      import "github.com/RAILethicsHub/rail-score-go/railscoresdk"

  Docs: https://pkg.go.dev/github.com/RAILethicsHub/rail-score-go/railscoresdk
        https://github.com/RAILethicsHub/rail-score-go
`

var warnOnce sync.Once

// warnDeprecated writes the deprecation notice to w at most once per process,
// no matter how many times it is called. It never fails the caller.
func warnDeprecated(w io.Writer) {
	warnOnce.Do(func() {
		emitNotice(w)
	})
}

func emitNotice(w io.Writer) {
	fmt.Fprint(w, deprecationNotice)
}

// Notice returns the migration text so tooling can display it on demand.
func Notice() string {
	return deprecationNotice
}

func init() {
	warnDeprecated(os.Stderr)
}
