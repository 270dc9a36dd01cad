package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/smlogitech/backoffice/internal/evidence"
	"github.com/smlogitech/backoffice/internal/orders"
	"github.com/smlogitech/backoffice/pkg/config"
	"github.com/smlogitech/backoffice/pkg/db/models"
	"github.com/smlogitech/backoffice/pkg/enums"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
)

// streamColumn maps an evidence stream to the order column its slot list
// lives in.
var streamColumn = map[enums.EvidenceStream]string{
	enums.EvidenceStreamTax:  "tax_images",
	enums.EvidenceStreamShip: "ship_images",
}

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".pdf":  {},
}

// Service stores uploaded evidence files on disk and records their public
// paths in the owning order's slot list. The slot write goes through the
// order service so it lands in the changelog like any other patch.
type Service interface {
	Upload(ctx context.Context, orderID int64, stream enums.EvidenceStream, slot int, filename string, body io.Reader) (string, error)
	Remove(ctx context.Context, orderID int64, stream enums.EvidenceStream, slot int) error
}

type service struct {
	orders orders.Service
	cfg    config.EvidenceConfig
}

// NewService builds the evidence upload service.
func NewService(orderSvc orders.Service, cfg config.EvidenceConfig) (Service, error) {
	if orderSvc == nil {
		return nil, fmt.Errorf("order service required")
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("evidence dir required")
	}
	if cfg.PublicPrefix == "" {
		return nil, fmt.Errorf("evidence public prefix required")
	}
	return &service{orders: orderSvc, cfg: cfg}, nil
}

func (s *service) Upload(ctx context.Context, orderID int64, stream enums.EvidenceStream, slot int, filename string, body io.Reader) (string, error) {
	column, err := validateTarget(stream, slot)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unsupported evidence file type").
			WithDetails(map[string]any{"extension": ext})
	}

	view, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s%d%s", orderID, stream, slot, ext)
	if err := s.writeFile(name, body); err != nil {
		return "", err
	}

	publicPath := s.cfg.PublicPrefix + name
	next := evidence.SetSlot(storedValue(&view.Order, stream), slot, publicPath)
	if err := s.orders.Patch(ctx, orderID, column, next); err != nil {
		// the slot write failed, don't leave the file behind
		_ = os.Remove(filepath.Join(s.cfg.Dir, name))
		return "", err
	}
	return publicPath, nil
}

func (s *service) Remove(ctx context.Context, orderID int64, stream enums.EvidenceStream, slot int) error {
	column, err := validateTarget(stream, slot)
	if err != nil {
		return err
	}

	view, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}

	stored := storedValue(&view.Order, stream)
	current := evidence.SplitSlots(stored)[slot]
	next := evidence.SetSlot(stored, slot, "")
	if err := s.orders.Patch(ctx, orderID, column, next); err != nil {
		return err
	}

	if current != "" && strings.HasPrefix(current, s.cfg.PublicPrefix) {
		name := strings.TrimPrefix(current, s.cfg.PublicPrefix)
		_ = os.Remove(filepath.Join(s.cfg.Dir, filepath.Base(name)))
	}
	return nil
}

func (s *service) writeFile(name string, body io.Reader) error {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create evidence dir")
	}
	target := filepath.Join(s.cfg.Dir, name)
	f, err := os.Create(target)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create evidence file")
	}
	defer f.Close()
	if _, err := io.Copy(f, body); err != nil {
		_ = os.Remove(target)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write evidence file")
	}
	return nil
}

func validateTarget(stream enums.EvidenceStream, slot int) (string, error) {
	column, ok := streamColumn[stream]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown evidence stream").
			WithDetails(map[string]any{"stream": string(stream)})
	}
	if slot < 0 || slot >= evidence.SlotCount {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "evidence slot out of range").
			WithDetails(map[string]any{"slot": slot, "max": evidence.SlotCount - 1})
	}
	return column, nil
}

func storedValue(order *models.Order, stream enums.EvidenceStream) string {
	if stream == enums.EvidenceStreamTax {
		return order.TaxImages
	}
	return order.ShipImages
}
