package catalog

import (
	"encoding/json"
	"errors"
	"farebot/app/config"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/do"
)

var ErrNotFound = errors.New("destination not found")

// Service is a read-only lookup over the destination reference file. The
// whole file is loaded once at startup, records are never mutated afterwards.
type Service struct {
	destinations map[string]Destination
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return NewFromFile(cfg.Catalog.Path)
}

func NewFromFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read destinations file: %w", err)
	}

	var destinations map[string]Destination
	if err = json.Unmarshal(data, &destinations); err != nil {
		return nil, fmt.Errorf("failed to parse destinations file: %w", err)
	}

	slog.Info("Loaded destination catalog",
		"path", path,
		"destinations_count", len(destinations),
	)

	return &Service{destinations: destinations}, nil
}

// Lookup finds a destination by name, case-insensitively. The returned
// record's Similar slice is a copy, callers may filter it freely.
func (s *Service) Lookup(name string) (Destination, error) {
	record, ok := s.destinations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Destination{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	record.Similar = append([]string(nil), record.Similar...)

	return record, nil
}
