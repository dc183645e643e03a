// Package storage persists the booking collection as a single JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SALI676/booking-dolphin-spa201/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type File struct {
	path string
	log  logger.Logger
}

func NewFile(path string, log logger.Logger) *File {
	return &File{path: path, log: log}
}

// Load reads the bookings file. A missing file means a fresh install and an
// unparsable file is logged and discarded; either way the service starts
// with an empty collection rather than failing.
func (f *File) Load() []domain.Booking {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		f.log.Error("failed to read bookings file",
			logger.String("path", f.path),
			logger.String("error", err.Error()),
		)
		return nil
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		f.log.Error("failed to parse bookings file, starting empty",
			logger.String("path", f.path),
			logger.String("error", err.Error()),
		)
		return nil
	}

	return bookings
}

// Save replaces the file with a pretty-printed serialization of the full
// collection. The write goes through a temp file in the same directory and
// a rename, so readers never observe a partial file.
func (f *File) Save(bookings []domain.Booking) error {
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "bookings-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace bookings file: %w", err)
	}

	return nil
}
