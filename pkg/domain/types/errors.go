package types

import "github.com/m-mizutani/goerr/v2"

// Failure taxonomy for one upload/download cycle. Each of these surfaces as
// a short human-readable message in the response; none of them abort the
// process and none are retried.
var (
	// ErrNotAPackage means the uploaded bytes are not a valid zip container.
	// Terminal for the request.
	ErrNotAPackage = goerr.New("uploaded file is not a valid pptx package")

	// ErrMalformedXML means one slide part could not be parsed. Recovered
	// per slide: that slide yields an empty result plus an error note and
	// extraction continues with the remaining slides.
	ErrMalformedXML = goerr.New("slide XML cannot be parsed")

	// ErrNoResultYet means a report was requested before any successful
	// upload completed, or with a token that is no longer retained.
	ErrNoResultYet = goerr.New("no report available yet")
)
