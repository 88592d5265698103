// Package main - valuescan CLI
// 통합 CLI 진입점
//
// 사용법:
//
//	go run ./cmd/valuescan analyze 005930
//	go run ./cmd/valuescan batch --workers 8
//	go run ./cmd/valuescan top --limit 20
package main

import (
	"os"

	"github.com/wonny/valuescan/cmd/valuescan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
