// Package assert provides debug-time precondition assertions; see enabled.go
// and disabled.go for the build-tag-gated implementations.
package assert
