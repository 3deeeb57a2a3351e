// Package oas holds the server generated from api/openapi.yaml.
package oas

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target . --package oas --clean --no-client ../../api/openapi.yaml
