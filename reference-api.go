package main

import (
	"github.com/colima-services/reference-api/cmd"
	"github.com/colima-services/reference-api/pkg/env"
	"github.com/colima-services/reference-api/pkg/log"
)

func main() {
	if err := env.Process(); err != nil {
		log.Fatal("environment failure", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal("reference-api failure", "error", err)
	}
}
