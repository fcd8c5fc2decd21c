package ordered

import (
	"github.com/ordered-go/containers/assert"
	"github.com/ordered-go/containers/logger"
)

// RequireValid enforces a constructor-time precondition (branching factor,
// max level, ...). On violation it logs the sentinel error annotated with
// the supplied attributes through the package's structured logger, then
// panics via assert.True, which compiles to a no-op under the
// assertions_disabled build tag.
func RequireValid(cond bool, sentinel error, attrs ...any) {
	if cond {
		return
	}

	err := logger.AnnotateError(sentinel, attrs...)
	logger.Get().Error("precondition violated", "err", err)

	assert.True(cond, sentinel.Error())
}
