package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/smlogitech/backoffice/internal/changelog"
	"github.com/smlogitech/backoffice/internal/evidence"
	"github.com/smlogitech/backoffice/internal/masterdata"
	"github.com/smlogitech/backoffice/internal/money"
	"github.com/smlogitech/backoffice/internal/settlement"
	"github.com/smlogitech/backoffice/pkg/db/models"
	"github.com/smlogitech/backoffice/pkg/enums"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/smlogitech/backoffice/pkg/kst"
	"github.com/smlogitech/backoffice/pkg/metrics"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// statusColumns are the patch targets journaled as status changes rather
// than plain updates.
var statusColumns = map[string]struct{}{
	"collection_date":       {},
	"payout_date":           {},
	"tax_issued":            {},
	"tax_issue_date":        {},
	"driver_tax_issued":     {},
	"driver_tax_issue_date": {},
	"mail_confirmed":        {},
	"mail_confirm_date":     {},
}

// Service coordinates the order lifecycle: it sanitizes input, persists,
// keeps paired fields consistent, journals every mutation in the same
// transaction, upserts the driver master, and refreshes the snapshot cache
// after commit.
type Service interface {
	Save(ctx context.Context, id int64, fields map[string]string) (int64, error)
	Patch(ctx context.Context, id int64, field, value string) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*View, error)
	List(ctx context.Context, query Query) ([]View, error)
	Recall(ctx context.Context, id int64) (int64, error)
	Log(ctx context.Context, orderID int64) ([]models.ChangeLogEntry, error)
	LatestLog(ctx context.Context, limit int) ([]models.ChangeLogEntry, error)
}

type service struct {
	repo       Repository
	journal    changelog.Repository
	master     masterdata.Repository
	cache      *masterdata.Cache
	tx         txRunner
	classifier settlement.Classifier
	mutations  *metrics.MutationMetrics
	now        func() time.Time
}

// ServiceParams carries the service dependencies.
type ServiceParams struct {
	Repo       Repository
	Journal    changelog.Repository
	Master     masterdata.Repository
	Cache      *masterdata.Cache
	Tx         txRunner
	Classifier settlement.Classifier
	Mutations  *metrics.MutationMetrics
	Now        func() time.Time
}

// NewService builds the order lifecycle service.
func NewService(p ServiceParams) (Service, error) {
	if p.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if p.Journal == nil {
		return nil, fmt.Errorf("changelog repository required")
	}
	if p.Master == nil {
		return nil, fmt.Errorf("master data repository required")
	}
	if p.Cache == nil {
		return nil, fmt.Errorf("master data cache required")
	}
	if p.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if p.Now == nil {
		p.Now = kst.Now
	}
	return &service{
		repo:       p.Repo,
		journal:    p.Journal,
		master:     p.Master,
		cache:      p.Cache,
		tx:         p.Tx,
		classifier: p.Classifier,
		mutations:  p.Mutations,
		now:        p.Now,
	}, nil
}

func (s *service) Save(ctx context.Context, id int64, fields map[string]string) (int64, error) {
	started := s.now()
	if unknown := SanitizeRecord(fields); len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, pkgerrors.New(pkgerrors.CodeUnknownField, "unknown order fields").
			WithDetails(map[string]any{"fields": unknown})
	}
	reconcileRecordPairs(fields, s.today())

	action := enums.ChangeActionCreate
	if id > 0 {
		action = enums.ChangeActionUpdate
	}

	var savedID int64
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		journal := s.journal.WithTx(tx)

		var order *models.Order
		if id > 0 {
			existing, err := repo.Get(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
			}
			order = existing
		} else {
			order = &models.Order{TaxImages: evidence.JoinSlots(nil), ShipImages: evidence.JoinSlots(nil)}
		}

		s.enrich(fields)
		ApplyFields(order, fields)

		if id > 0 {
			if err := repo.Update(ctx, order); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
			}
		} else {
			if order.OrderDate == "" {
				order.OrderDate = kst.FormatDate(s.now())
			}
			if err := repo.Create(ctx, order); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
			}
		}
		savedID = order.ID

		if err := s.ensureDriver(ctx, tx, order); err != nil {
			return err
		}

		detail := fmt.Sprintf("%s / %s", strings.TrimSpace(order.ClientName), strings.TrimSpace(order.Route))
		if err := journal.Append(ctx, order.ID, action, detail); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append changelog")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.refreshDrivers(ctx)
	s.observe(string(action), started)
	return savedID, nil
}

func (s *service) Patch(ctx context.Context, id int64, field, value string) error {
	started := s.now()
	kind, ok := Columns[field]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeUnknownField, "unknown order field").
			WithDetails(map[string]any{"field": field})
	}
	sanitized := SanitizeValue(kind, value)

	action := enums.ChangeActionUpdate
	if _, isStatus := statusColumns[field]; isStatus {
		action = enums.ChangeActionStatusChange
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		journal := s.journal.WithTx(tx)

		existing, err := repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		updates := map[string]string{field: sanitized}
		pairUpdates(existing, field, sanitized, s.today(), updates)

		if err := repo.PatchFields(ctx, id, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "patch order")
		}

		previous, _ := FieldValue(existing, field)
		detail := fmt.Sprintf("%s: %q -> %q", field, previous, sanitized)
		if err := journal.Append(ctx, id, action, detail); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append changelog")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.observe(string(action), started)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	started := s.now()
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		journal := s.journal.WithTx(tx)

		existing, err := repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		if err := repo.Delete(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
		}

		detail := fmt.Sprintf("%s / %s", strings.TrimSpace(existing.ClientName), strings.TrimSpace(existing.Route))
		if err := journal.Append(ctx, id, enums.ChangeActionDelete, detail); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append changelog")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.observe(string(enums.ChangeActionDelete), started)
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*View, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	view := s.view(order)
	return &view, nil
}

func (s *service) List(ctx context.Context, query Query) ([]View, error) {
	rows, err := s.repo.Query(ctx, query.Filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "query orders")
	}

	views := make([]View, 0, len(rows))
	for i := range rows {
		view := s.view(&rows[i])
		if !query.wantsReceivable(view.Statuses.Receivable) {
			continue
		}
		if !query.wantsPayable(view.Statuses.Payable) {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *service) Recall(ctx context.Context, id int64) (int64, error) {
	started := s.now()
	var newID int64
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		journal := s.journal.WithTx(tx)

		source, err := repo.Get(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}

		clone := *source
		clone.ID = 0
		clone.CreatedAt = time.Time{}
		clone.UpdatedAt = time.Time{}
		clone.OrderDate = kst.FormatDate(s.now())
		clone.DispatchAt = kst.FormatDateTime(s.now())
		clone.CollectionDate = ""
		clone.PayoutDate = ""
		clone.TaxIssued = ""
		clone.TaxIssueDate = ""
		clone.DriverTaxIssued = ""
		clone.DriverTaxIssueDate = ""
		clone.MailConfirmed = ""
		clone.MailConfirmDate = ""
		clone.TaxImages = evidence.JoinSlots(nil)
		clone.ShipImages = evidence.JoinSlots(nil)

		if err := repo.Create(ctx, &clone); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create recalled order")
		}
		newID = clone.ID

		detail := fmt.Sprintf("recalled #%d -> #%d", id, newID)
		if err := journal.Append(ctx, newID, enums.ChangeActionRecall, detail); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append changelog")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.observe(string(enums.ChangeActionRecall), started)
	return newID, nil
}

func (s *service) Log(ctx context.Context, orderID int64) ([]models.ChangeLogEntry, error) {
	entries, err := s.journal.ForOrder(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load changelog")
	}
	return entries, nil
}

func (s *service) LatestLog(ctx context.Context, limit int) ([]models.ChangeLogEntry, error) {
	entries, err := s.journal.Latest(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load changelog")
	}
	return entries, nil
}

func (s *service) view(order *models.Order) View {
	return View{
		Order:    *order,
		Amounts:  money.Compute(order),
		Statuses: s.classifier.Classify(order, s.now()),
	}
}

func (s *service) today() string {
	return kst.FormatDate(s.now())
}

// enrich fills missing client and driver detail fields from the master
// snapshots when the name keys match.
func (s *service) enrich(fields map[string]string) {
	if name := strings.TrimSpace(fields["client_name"]); name != "" {
		if client, ok := s.cache.FindClient(name); ok {
			fillIfEmpty(fields, "client_contact", client.Contact)
			fillIfEmpty(fields, "client_bizno", client.BizNo)
			fillIfEmpty(fields, "client_address", client.Address)
			fillIfEmpty(fields, "client_email", client.Email)
		}
	}
	name := strings.TrimSpace(fields["driver_name"])
	vehicle := strings.TrimSpace(fields["vehicle_no"])
	if name != "" && vehicle != "" {
		if driver, ok := s.cache.FindDriver(name, vehicle); ok {
			fillIfEmpty(fields, "driver_contact", driver.Contact)
			fillIfEmpty(fields, "driver_account", driver.Account)
			fillIfEmpty(fields, "driver_bizno", driver.BizNo)
			fillIfEmpty(fields, "driver_bank", driver.Bank)
			fillIfEmpty(fields, "driver_account_holder", driver.AccountHolder)
		}
	}
}

func fillIfEmpty(fields map[string]string, key, value string) {
	if existing, ok := fields[key]; ok && strings.TrimSpace(existing) != "" {
		return
	}
	if value == "" {
		return
	}
	fields[key] = value
}

func (s *service) ensureDriver(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	name := strings.TrimSpace(order.DriverName)
	vehicle := strings.TrimSpace(order.VehicleNo)
	if name == "" || vehicle == "" {
		return nil
	}
	driver := models.Driver{
		Name:          name,
		VehicleNo:     vehicle,
		Contact:       strings.TrimSpace(order.DriverContact),
		Account:       strings.TrimSpace(order.DriverAccount),
		BizNo:         strings.TrimSpace(order.DriverBizNo),
		Bank:          strings.TrimSpace(order.DriverBank),
		AccountHolder: strings.TrimSpace(order.DriverAccountHolder),
	}
	if err := s.master.WithTx(tx).EnsureDriver(ctx, &driver); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert driver master")
	}
	return nil
}

// refreshDrivers rebuilds the driver snapshot after a committed order save.
// A refresh failure only delays autocomplete freshness, so it is swallowed.
func (s *service) refreshDrivers(ctx context.Context) {
	_ = s.cache.RefreshDrivers(ctx)
}

func (s *service) observe(action string, started time.Time) {
	if s.mutations == nil {
		return
	}
	s.mutations.Observe(action, s.now().Sub(started))
}

// reconcileRecordPairs enforces flag↔date coupling on a full record write:
// a set date wins and checks its flag; a checked flag with no date stamps
// today; otherwise both clear.
func reconcileRecordPairs(fields map[string]string, today string) {
	for flag, date := range pairedDate {
		flagVal, hasFlag := fields[flag]
		dateVal, hasDate := fields[date]
		if !hasFlag && !hasDate {
			continue
		}
		switch {
		case strings.TrimSpace(dateVal) != "":
			fields[flag] = CheckOn
		case flagVal == CheckOn:
			fields[date] = today
		default:
			fields[flag] = ""
			fields[date] = ""
		}
	}
}

// pairUpdates computes the side-effect write for a single-field patch that
// touches one half of a flag↔date pair.
func pairUpdates(existing *models.Order, field, value, today string, updates map[string]string) {
	if date, ok := pairedDate[field]; ok {
		if value == CheckOn {
			if current, _ := FieldValue(existing, date); strings.TrimSpace(current) == "" {
				updates[date] = today
			}
		} else {
			updates[date] = ""
		}
		return
	}
	if flag, ok := pairedFlag[field]; ok {
		if strings.TrimSpace(value) != "" {
			updates[flag] = CheckOn
		} else {
			updates[flag] = ""
		}
	}
}
