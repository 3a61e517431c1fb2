// Package transform implements the pure text transformations behind the
// stringutils commands: per-line reversal, leading whitespace conversion
// between spaces and tabs, and base64 and URL percent-encoding round trips.
//
// Every function is a pure string-to-string mapping. Selection handling and
// editor state live in the command and editor packages.
package transform
