package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// QuotationFileRepository keeps quotations in memory and mirrors every write
// to a JSON array on disk. A missing file is an empty store.
type QuotationFileRepository struct {
	path string

	mu         sync.RWMutex
	quotations map[int64]entities.Quotation
}

var _ interfaces.IQuotationRepository = (*QuotationFileRepository)(nil)

func NewQuotationFileRepository(path string) (*QuotationFileRepository, error) {
	r := &QuotationFileRepository{path: path, quotations: make(map[int64]entities.Quotation)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return r, nil
	}

	var stored []entities.Quotation
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, q := range stored {
		r.quotations[q.ID] = q
	}
	return r, nil
}

// ListAll returns a copy ordered by id.
func (r *QuotationFileRepository) ListAll(ctx context.Context) ([]entities.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	zerolog.Ctx(ctx).Debug().Str("layer", "repository").Str("file", r.path).Int("items", len(r.quotations)).Msg("quotations loaded")
	return r.sortedLocked(), nil
}

func (r *QuotationFileRepository) GetByID(_ context.Context, id int64) (entities.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quotations[id], nil
}

func (r *QuotationFileRepository) Create(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quotations[q.ID]; ok {
		return entities.Quotation{}, fmt.Errorf("%w: %d", interfaces.ErrQuotationExists, q.ID)
	}
	r.quotations[q.ID] = q
	if err := r.flushLocked(); err != nil {
		delete(r.quotations, q.ID)
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationFileRepository) UpdateStatusByID(_ context.Context, id int64, from, to entities.QuotationStatus) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.quotations[id]
	if !ok || prev.Status != from {
		return entities.Quotation{}, fmt.Errorf("%w: %d", interfaces.ErrStatusChanged, id)
	}
	next := prev
	next.Status = to
	next.UpdatedAt = time.Now().UTC()

	r.quotations[id] = next
	if err := r.flushLocked(); err != nil {
		r.quotations[id] = prev
		return entities.Quotation{}, err
	}
	return next, nil
}

func (r *QuotationFileRepository) sortedLocked() []entities.Quotation {
	out := make([]entities.Quotation, 0, len(r.quotations))
	for _, q := range r.quotations {
		out = append(out, q)
	}
	slices.SortFunc(out, func(a, b entities.Quotation) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// flushLocked writes through a temp file so readers never see a partial array.
func (r *QuotationFileRepository) flushLocked() error {
	raw, err := json.MarshalIndent(r.sortedLocked(), "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
