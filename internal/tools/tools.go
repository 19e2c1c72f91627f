//go:build tools
// +build tools

// Package tools pins the development tools used by the build.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/google/go-licenses"
	_ "gotest.tools/gotestsum"
)
