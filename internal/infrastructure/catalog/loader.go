package catalog

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/buynary/backend/internal/domain"
)

// File is the YAML catalog file layout: a store list followed by a flat
// product list tagged with owning store ids.
type File struct {
	Stores   []domain.Store   `yaml:"stores"`
	Products []domain.Product `yaml:"products"`
}

// LoadFile reads and validates a YAML catalog file. Product order in the
// file is preserved; it determines matching tie-breaks downstream.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	if err := validate(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	return NewMemory(file.Stores, file.Products), nil
}

// validate checks structural integrity of a catalog file. Products that
// reference an unknown store are only warned about: the comparison engine
// iterates stores, so they are never surfaced anyway.
func validate(file *File) error {
	if len(file.Stores) == 0 {
		return fmt.Errorf("catalog has no stores")
	}

	storeIDs := make(map[string]bool, len(file.Stores))
	for i, store := range file.Stores {
		if store.ID == "" {
			return fmt.Errorf("store %d has no id", i)
		}
		if store.Name == "" {
			return fmt.Errorf("store %q has no name", store.ID)
		}
		if storeIDs[store.ID] {
			return fmt.Errorf("duplicate store id %q", store.ID)
		}
		storeIDs[store.ID] = true
	}

	productIDs := make(map[string]bool, len(file.Products))
	for i, product := range file.Products {
		if product.ID == "" {
			return fmt.Errorf("product %d has no id", i)
		}
		if product.Name == "" {
			return fmt.Errorf("product %q has no name", product.ID)
		}
		if productIDs[product.ID] {
			return fmt.Errorf("duplicate product id %q", product.ID)
		}
		productIDs[product.ID] = true

		if !storeIDs[product.StoreID] {
			log.Printf("[CATALOG] WARNING: product %q references unknown store %q", product.ID, product.StoreID)
		}
	}

	return nil
}
