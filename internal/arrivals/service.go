package arrivals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smlogitech/backoffice/pkg/db/models"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/smlogitech/backoffice/pkg/kst"
	"gorm.io/gorm"
)

// Entry is one board row with its countdown evaluated server-side.
// RemainingSeconds goes negative once the expected time has passed.
type Entry struct {
	models.ArrivalEntry
	RemainingSeconds int64 `json:"remaining_seconds"`
	Arrived          bool  `json:"arrived"`
}

// Input carries the editable fields of a board entry.
type Input struct {
	VehicleNo  string `json:"vehicle_no" validate:"required"`
	DriverName string `json:"driver_name"`
	Route      string `json:"route"`
	ExpectedAt string `json:"expected_at" validate:"required"`
	Memo       string `json:"memo"`
}

// Service manages the arrival-status board.
type Service interface {
	Create(ctx context.Context, input Input) (*Entry, error)
	Update(ctx context.Context, id int64, input Input) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds the arrival-board service.
func NewService(repo Repository, now func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("arrivals repository required")
	}
	if now == nil {
		now = kst.Now
	}
	return &service{repo: repo, now: now}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*Entry, error) {
	entry, err := entryFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create arrival entry")
	}
	view := s.view(entry)
	return &view, nil
}

func (s *service) Update(ctx context.Context, id int64, input Input) (*Entry, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "arrival entry not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load arrival entry")
	}

	next, err := entryFromInput(input)
	if err != nil {
		return nil, err
	}
	next.ID = existing.ID
	next.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update arrival entry")
	}
	view := s.view(next)
	return &view, nil
}

func (s *service) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list arrival entries")
	}
	entries := make([]Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, s.view(&rows[i]))
	}
	return entries, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "arrival entry not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete arrival entry")
	}
	return nil
}

func (s *service) view(entry *models.ArrivalEntry) Entry {
	view := Entry{ArrivalEntry: *entry}
	expected, ok := kst.ParseDateTime(entry.ExpectedAt)
	if !ok {
		return view
	}
	remaining := expected.Sub(s.now())
	view.RemainingSeconds = int64(remaining.Seconds())
	view.Arrived = remaining <= 0
	return view
}

func entryFromInput(input Input) (*models.ArrivalEntry, error) {
	vehicle := strings.TrimSpace(input.VehicleNo)
	if vehicle == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle number required")
	}
	expected, ok := kst.ParseDateTime(input.ExpectedAt)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expected arrival must be a KST datetime").
			WithDetails(map[string]any{"expected_at": input.ExpectedAt})
	}
	return &models.ArrivalEntry{
		VehicleNo:  vehicle,
		DriverName: strings.TrimSpace(input.DriverName),
		Route:      strings.TrimSpace(input.Route),
		ExpectedAt: kst.FormatDateTime(expected),
		Memo:       strings.TrimSpace(input.Memo),
	}, nil
}
