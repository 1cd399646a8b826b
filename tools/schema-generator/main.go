package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/grovetools/sitekeys/pkg/config"
)

func main() {
	schema := config.Schema()

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	// Write to the package root
	if err := os.WriteFile("sitekeys.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at sitekeys.schema.json")
}
