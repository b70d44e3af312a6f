//go:build tools
// +build tools

package tools

// Development tools pinned in go.mod so `go run` uses the same versions
// everywhere: swag regenerates docs/, mockery regenerates mocks/, sqlc
// regenerates internal/database/generated, goose backs `devtool migrate create`.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
)
