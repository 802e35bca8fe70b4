package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/crebase/listing-finder/pkg/index"
	"github.com/crebase/listing-finder/pkg/storage"
)

// importer converts a raw JSON listing feed into the gzipped snapshot the
// server loads at startup.

var (
	input    = flag.String("input", "listings.json", "raw listing feed to import")
	dataPath = flag.String("data", "data", "snapshot output directory")
)

func main() {
	flag.Parse()

	file, err := os.Open(*input)
	if err != nil {
		log.Fatalf("open feed: %v", err)
	}
	defer file.Close()

	var listings []index.Listing
	if err := json.NewDecoder(file).Decode(&listings); err != nil {
		log.Fatalf("decode feed: %v", err)
	}

	db := storage.NewDiskStorage(*dataPath)
	if err := db.SaveListings(listings); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}
	log.Printf("imported %d listings into %s", len(listings), *dataPath)
}
