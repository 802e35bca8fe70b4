package storage

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/crebase/listing-finder/pkg/index"
)

const listingsFile = "listings.json.gz"

// DiskStorage snapshots the listing dataset under a base directory as
// gzipped JSON. Writes go through a temp file and rename so a crashed
// save never truncates the live snapshot.
type DiskStorage struct {
	BasePath string
}

func NewDiskStorage(basePath string) *DiskStorage {
	return &DiskStorage{BasePath: basePath}
}

func (d *DiskStorage) fileName(name string) string {
	return path.Join(d.BasePath, name)
}

// LoadListings reads the snapshot and returns the normalized dataset the
// server sorts and serves.
func (d *DiskStorage) LoadListings() ([]index.NormalizedListing, error) {
	var raw []index.Listing
	if err := d.loadGzippedJson(&raw, listingsFile); err != nil {
		return nil, err
	}
	log.Printf("loaded %d listings from %s", len(raw), d.fileName(listingsFile))
	return index.NormalizeAll(raw), nil
}

// SaveListings writes the raw feed batch as the new snapshot.
func (d *DiskStorage) SaveListings(listings []index.Listing) error {
	return d.saveGzippedJson(listings, listingsFile)
}

func (d *DiskStorage) loadGzippedJson(output any, name string) error {
	file, err := os.Open(d.fileName(name))
	if err != nil {
		return err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zipReader.Close()

	return json.NewDecoder(zipReader).Decode(output)
}

func (d *DiskStorage) saveGzippedJson(data any, name string) error {
	if err := os.MkdirAll(d.BasePath, 0o755); err != nil {
		return err
	}
	target := d.fileName(name)
	tmp := target + ".tmp"

	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	zipWriter := gzip.NewWriter(file)
	if err := json.NewEncoder(zipWriter).Encode(data); err != nil {
		zipWriter.Close()
		file.Close()
		return err
	}
	if err := zipWriter.Close(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replacing snapshot %s: %w", target, err)
	}
	return nil
}
