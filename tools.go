//go:build tools

package ns

// Pins the code generator and test runner so `go run` uses the versions from
// go.mod.
import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "gotest.tools/gotestsum"
)
