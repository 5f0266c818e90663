// Package railscore has been renamed to railscoresdk. All future development
// happens there; this package only forwards to it and will not receive updates.
//
// Migration:
//
//	go get github.com/RAILethicsHub/rail-score-go/railscoresdk
//	go mod tidy
//
// Then update your imports:
//
//	// Old
//	import "github.com/RAILethicsHub/rail-score-go/railscore"
//	// New
//	import "github.com/RAILethicsHub/rail-score-go/railscoresdk"
//
// For full documentation, see:
//
//	https://pkg.go.dev/github.com/RAILethicsHub/rail-score-go/railscoresdk
//	https://github.com/RAILethicsHub/rail-score-go
//
// Deprecated: use github.com/RAILethicsHub/rail-score-go/railscoresdk instead.
package railscore
