package main

import "github.com/hpvvs/salesops_backend/internal/cli"

// @title SalesOps Payments Ledger API
// @version 1.0
// @description Idempotent payments ledger recorder and summarizer.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cli.Execute()
}
