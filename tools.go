//go:build tools
// +build tools

// tools.go tracks the code generators used with go generate so that
// go.mod pins them.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
