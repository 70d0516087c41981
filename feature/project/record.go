package project

import (
	"encoding/json"
	"fmt"
	"time"

	"p5-manager/core/reconcile"
	"p5-manager/core/storage"
)

// Record is the sketch.json configuration record. It is the authoritative
// version bookkeeping for a sketch: local library paths carry no version, so
// without the record an updated local sketch would be indistinguishable from
// a stale one.
type Record struct {
	// Name is the sketch name, usually the directory name.
	Name string `json:"name"`

	// Version is the p5.js version the sketch is pinned to.
	Version string `json:"version"`

	// Mode is the delivery mode of the library reference (cdn or local).
	Mode reconcile.Mode `json:"mode"`

	// Minified reports whether the reference names the minified artifact.
	Minified bool `json:"minified"`

	// Provider is the CDN serving the reference. Omitted in local mode.
	Provider reconcile.Provider `json:"provider,omitempty"`

	// CreatedAt is when the sketch was generated.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the sketch was last reconciled.
	UpdatedAt time.Time `json:"updated_at"`
}

// LoadRecord reads and decodes sketch.json from the project store.
func LoadRecord(store storage.Store) (*Record, error) {
	data, err := store.Read(RecordFile)
	if err != nil {
		return nil, fmt.Errorf("load sketch record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode sketch record: %w", err)
	}
	return &rec, nil
}

// Save encodes the record and writes it to the project store.
func (r *Record) Save(store storage.Store) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sketch record: %w", err)
	}
	return store.Write(RecordFile, append(data, '\n'))
}
