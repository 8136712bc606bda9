package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"oscell/internal/domain/entities"
	"oscell/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	DateShortcutToday     = "today"
	DateShortcutYesterday = "yesterday"
)

var (
	ErrInvalidSubject         = errors.New("invalid subject")
	ErrInvalidServiceRecordID = errors.New("invalid service record id")
	ErrInvalidServiceDate     = errors.New("invalid service date")
	ErrInvalidServiceAmount   = errors.New("invalid service amount")
	ErrServiceFieldRequired   = errors.New("client, device and service type are required")
	ErrServiceRecordNotFound  = errors.New("service record not found")
	ErrDeleteNotConfirmed     = errors.New("delete requires explicit confirmation")
	ErrUnknownDateShortcut    = errors.New("unknown date shortcut")
)

// IServiceLedgerUseCase manages the completed-repair ledger of one subject.
//
// Every operation is scoped by subject; the collection is derived from it and
// never taken from the caller. After each successful write the full, sorted
// list is published to the subject's subscribers.
type IServiceLedgerUseCase interface {
	Create(ctx context.Context, subject string, fields entities.ServiceRecordFields) (entities.ServiceRecord, error)
	Update(ctx context.Context, subject, id string, fields entities.ServiceRecordFields) (entities.ServiceRecord, error)
	Delete(ctx context.Context, subject, id string, confirmed bool) error
	Get(ctx context.Context, subject, id string) (entities.ServiceRecord, error)
	List(ctx context.Context, subject string) ([]entities.ServiceRecord, error)
	Subscribe(ctx context.Context, subject string, l interfaces.RecordListener) (func(), error)
	DateShortcut(name string) (string, error)
}

type ServiceLedgerUseCase struct {
	repo           interfaces.IServiceRecordRepository
	broker         interfaces.IRecordBroker
	installationID string
	now            func() time.Time

	// feeds holds one *sync.Mutex per collection. Holding it across the
	// reload and the delivery keeps snapshots in storage order.
	feeds sync.Map
}

var _ IServiceLedgerUseCase = (*ServiceLedgerUseCase)(nil)

func NewServiceLedgerUseCase(repo interfaces.IServiceRecordRepository, broker interfaces.IRecordBroker, installationID string) *ServiceLedgerUseCase {
	return &ServiceLedgerUseCase{
		repo:           repo,
		broker:         broker,
		installationID: installationID,
		now:            time.Now,
	}
}

func (u *ServiceLedgerUseCase) Create(ctx context.Context, subject string, fields entities.ServiceRecordFields) (entities.ServiceRecord, error) {
	collection, err := u.collection(subject)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	fields, err = normalizeFields(fields)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	now := u.now().UTC()
	r := applyFields(entities.ServiceRecord{
		ID:        uuid.NewString(),
		Subject:   strings.TrimSpace(subject),
		CreatedAt: now,
		UpdatedAt: now,
	}, fields)

	created, err := u.repo.Create(ctx, collection, r)
	if err != nil {
		log.Printf("[ledger][usecase] create failed collection=%s err=%v", collection, err)
		return entities.ServiceRecord{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	log.Printf("[ledger][usecase] create success id=%s profit=%s", created.ID, created.Profit.StringFixed(2))
	u.publish(ctx, collection)
	return created, nil
}

// Update replaces the editable fields of a record. Profit is recomputed and
// the creation timestamp is kept.
func (u *ServiceLedgerUseCase) Update(ctx context.Context, subject, id string, fields entities.ServiceRecordFields) (entities.ServiceRecord, error) {
	collection, err := u.collection(subject)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRecord{}, ErrInvalidServiceRecordID
	}
	fields, err = normalizeFields(fields)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	existing, err := u.get(ctx, collection, id)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	r := applyFields(existing, fields)
	r.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, collection, r)
	if err != nil {
		log.Printf("[ledger][usecase] update failed id=%s err=%v", id, err)
		return entities.ServiceRecord{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if updated.ID == "" {
		return entities.ServiceRecord{}, ErrServiceRecordNotFound
	}
	log.Printf("[ledger][usecase] update success id=%s profit=%s", updated.ID, updated.Profit.StringFixed(2))
	u.publish(ctx, collection)
	return updated, nil
}

// Delete removes a record. Callers must pass confirmed=true once the user has
// explicitly agreed; otherwise storage is never touched.
func (u *ServiceLedgerUseCase) Delete(ctx context.Context, subject, id string, confirmed bool) error {
	collection, err := u.collection(subject)
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceRecordID
	}
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	deleted, err := u.repo.Delete(ctx, collection, id)
	if err != nil {
		log.Printf("[ledger][usecase] delete failed id=%s err=%v", id, err)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if !deleted {
		return ErrServiceRecordNotFound
	}
	log.Printf("[ledger][usecase] delete success id=%s", id)
	u.publish(ctx, collection)
	return nil
}

func (u *ServiceLedgerUseCase) Get(ctx context.Context, subject, id string) (entities.ServiceRecord, error) {
	collection, err := u.collection(subject)
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRecord{}, ErrInvalidServiceRecordID
	}
	return u.get(ctx, collection, id)
}

func (u *ServiceLedgerUseCase) List(ctx context.Context, subject string) ([]entities.ServiceRecord, error) {
	collection, err := u.collection(subject)
	if err != nil {
		return nil, err
	}
	return u.list(ctx, collection)
}

// Subscribe registers l for the subject's ledger and immediately delivers the
// current list (or the load error). The returned function cancels it.
//
// Registration and the first delivery happen under the collection's feed
// lock, so a concurrent write's snapshot always arrives after this one.
func (u *ServiceLedgerUseCase) Subscribe(ctx context.Context, subject string, l interfaces.RecordListener) (func(), error) {
	collection, err := u.collection(subject)
	if err != nil {
		return nil, err
	}

	feed := u.feedLock(collection)
	feed.Lock()
	defer feed.Unlock()

	unsubscribe := u.broker.Subscribe(collection, l)

	records, err := u.list(ctx, collection)
	if err != nil {
		if l.OnError != nil {
			l.OnError(err)
		}
		return unsubscribe, nil
	}
	if l.OnChange != nil {
		l.OnChange(records)
	}
	return unsubscribe, nil
}

// DateShortcut resolves the form's quick-date buttons to a YYYY-MM-DD date.
func (u *ServiceLedgerUseCase) DateShortcut(name string) (string, error) {
	today := u.now()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DateShortcutToday:
		return today.Format(entities.DateLayout), nil
	case DateShortcutYesterday:
		return today.AddDate(0, 0, -1).Format(entities.DateLayout), nil
	default:
		return "", ErrUnknownDateShortcut
	}
}

func (u *ServiceLedgerUseCase) collection(subject string) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || strings.Contains(subject, "/") {
		return "", ErrInvalidSubject
	}
	return entities.ServicesPath(u.installationID, subject), nil
}

func (u *ServiceLedgerUseCase) get(ctx context.Context, collection, id string) (entities.ServiceRecord, error) {
	r, err := u.repo.GetByID(ctx, collection, id)
	if err != nil {
		log.Printf("[ledger][usecase] get failed id=%s err=%v", id, err)
		return entities.ServiceRecord{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if r.ID == "" {
		return entities.ServiceRecord{}, ErrServiceRecordNotFound
	}
	return r, nil
}

func (u *ServiceLedgerUseCase) list(ctx context.Context, collection string) ([]entities.ServiceRecord, error) {
	records, err := u.repo.ListByCollection(ctx, collection)
	if err != nil {
		log.Printf("[ledger][usecase] list failed collection=%s err=%v", collection, err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	SortByDateDesc(records)
	return records, nil
}

// publish pushes the fresh list to subscribers. A failed reload is reported
// to them rather than to the writer, whose write already succeeded.
func (u *ServiceLedgerUseCase) publish(ctx context.Context, collection string) {
	if u.broker == nil {
		return
	}
	feed := u.feedLock(collection)
	feed.Lock()
	defer feed.Unlock()

	records, err := u.list(ctx, collection)
	if err != nil {
		u.broker.PublishError(collection, err)
		return
	}
	u.broker.Publish(collection, records)
}

func (u *ServiceLedgerUseCase) feedLock(collection string) *sync.Mutex {
	m, _ := u.feeds.LoadOrStore(collection, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// SortByDateDesc orders records newest first. Records sharing a date keep
// their relative order.
func SortByDateDesc(records []entities.ServiceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ParsedDate().After(records[j].ParsedDate())
	})
}

func normalizeFields(f entities.ServiceRecordFields) (entities.ServiceRecordFields, error) {
	f.Date = strings.TrimSpace(f.Date)
	if _, err := time.Parse(entities.DateLayout, f.Date); err != nil {
		return entities.ServiceRecordFields{}, ErrInvalidServiceDate
	}
	f.ClientName = strings.TrimSpace(f.ClientName)
	f.DeviceName = strings.TrimSpace(f.DeviceName)
	f.ServiceType = strings.TrimSpace(f.ServiceType)
	f.TimeTaken = strings.TrimSpace(f.TimeTaken)
	if f.ClientName == "" || f.DeviceName == "" || f.ServiceType == "" {
		return entities.ServiceRecordFields{}, ErrServiceFieldRequired
	}
	if f.PartsCost.IsNegative() || f.ChargedAmount.IsNegative() {
		return entities.ServiceRecordFields{}, ErrInvalidServiceAmount
	}
	return f, nil
}

func applyFields(r entities.ServiceRecord, f entities.ServiceRecordFields) entities.ServiceRecord {
	r.Date = f.Date
	r.ClientName = f.ClientName
	r.DeviceName = f.DeviceName
	r.ServiceType = f.ServiceType
	r.PartsCost = f.PartsCost
	r.ChargedAmount = f.ChargedAmount
	r.Profit = entities.ComputeProfit(f.PartsCost, f.ChargedAmount)
	r.TimeTaken = f.TimeTaken
	return r
}
