package button_test

import (
	"testing"

	"github.com/go-drift/sol/pkg/errors"
)

// quietErrors swallows reported errors for tests that provoke contract
// violations on purpose, restoring the previous handler on cleanup.
func quietErrors(t *testing.T) {
	t.Helper()
	prev := errors.DefaultHandler
	errors.SetHandler(silentHandler{})
	t.Cleanup(func() { errors.SetHandler(prev) })
}

type silentHandler struct{}

func (silentHandler) HandleError(*errors.SolError)   {}
func (silentHandler) HandlePanic(*errors.PanicError) {}
