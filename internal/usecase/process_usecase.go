package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"controlimport/internal/domain/dates"
	"controlimport/internal/domain/entities"
	"controlimport/internal/domain/metrics"
	"controlimport/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProcessNotFound      = errors.New("process not found")
	ErrInvalidProcessID     = errors.New("invalid process id")
	ErrInvalidStage         = errors.New("invalid stage")
	ErrInvalidProcessType   = errors.New("invalid process type")
	ErrInvalidRegime        = errors.New("invalid regime")
	ErrSequenceConflict     = errors.New("sequence already exists")
	ErrCounterUninitialized = errors.New("sequence counter not initialized")
	ErrItemNotFound         = errors.New("item not found")
	ErrProcessHasNoItems    = errors.New("process has no items")
	ErrInvalidItemCode      = errors.New("invalid item code")
)

// sequenceCounterID is the one global counter every import code draws from.
const sequenceCounterID = "IMPORT_GLOBAL"

// updatableStages are the stage names accepted by update operations. Derived
// is included so the manually-entered reporting fields (folder notes, ranges)
// can be edited; its computed fields are overwritten on save anyway.
var updatableStages = map[string]bool{
	"inception":    true,
	"preshipment":  true,
	"postshipment": true,
	"customs":      true,
	"dispatch":     true,
	"derived":      true,
}

// CreateProcessCommand carries the inception-time payload. ImportCode is the
// user-editable code: when it embeds an explicit sequence number that
// sequence is authoritative (and conflict-checked); otherwise the shared
// counter allocates the next one.
type CreateProcessCommand struct {
	Type                   string
	Regime                 string
	ExtensionCount         int
	ImportCode             string
	Supplier               string
	CommercialInvoice      string
	PurchaseOrder          string
	Description            string
	Reference              string
	Priority               string
	BrokerNotificationDate *time.Time
	OriginCountry          string
	InvoiceDate            *time.Time
	InvoiceValue           *float64
	Items                  []entities.Item
}

// UpdateProcessCommand is a partial update: per-stage field maps, optionally
// targeting a single preshipment item by its storage id.
type UpdateProcessCommand struct {
	Stages map[string]map[string]any
	ItemID string
}

// CodePreview is the not-yet-allocated code shown while the user types.
type CodePreview struct {
	Base string
	Full string
}

// IProcessUseCase exposes the import-process operations.
type IProcessUseCase interface {
	Create(ctx context.Context, cmd CreateProcessCommand) (entities.Process, error)
	GetByID(ctx context.Context, id string) (entities.Process, error)
	List(ctx context.Context) ([]entities.Process, error)
	Update(ctx context.Context, id string, cmd UpdateProcessCommand) (entities.Process, error)
	UpdateStage(ctx context.Context, id, stage string, payload map[string]any) (entities.Process, error)
	Void(ctx context.Context, id string) (entities.Process, error)
	Delete(ctx context.Context, id string) error
	DeleteItem(ctx context.Context, id, code string) (entities.Process, error)
	PreviewCode(ctx context.Context, processType, regime string, extensions int) (CodePreview, error)
}

type ProcessUseCase struct {
	repo    interfaces.IProcessRepository
	counter interfaces.ISequenceCounterRepository
}

var _ IProcessUseCase = (*ProcessUseCase)(nil)

func NewProcessUseCase(repo interfaces.IProcessRepository, counter interfaces.ISequenceCounterRepository) *ProcessUseCase {
	return &ProcessUseCase{repo: repo, counter: counter}
}

// BeforeSave is the single write-path hook: it pins every stage date to noon
// UTC, recomputes the lifecycle status and rebuilds the derived-metrics
// bundle. Every persisting operation runs it so no stored record can carry a
// stale status or un-normalized date.
func BeforeSave(p *entities.Process) {
	dates.NormalizeInPlace(&p.Inception)
	dates.NormalizeInPlace(&p.Preshipment)
	dates.NormalizeInPlace(&p.Postshipment)
	dates.NormalizeInPlace(&p.Customs)
	dates.NormalizeInPlace(&p.Dispatch)

	p.Status = entities.ComputeStatus(p)
	p.Derived = metrics.Compute(p)
}

func (u *ProcessUseCase) Create(ctx context.Context, cmd CreateProcessCommand) (entities.Process, error) {
	cmd.Type = strings.TrimSpace(cmd.Type)
	cmd.Regime = strings.TrimSpace(cmd.Regime)
	if cmd.Type == "" {
		return entities.Process{}, ErrInvalidProcessType
	}
	if cmd.Regime == "" {
		return entities.Process{}, ErrInvalidRegime
	}

	year := time.Now().UTC().Year()

	seq, err := u.allocateSequence(ctx, cmd.ImportCode)
	if err != nil {
		return entities.Process{}, err
	}

	code := entities.BuildImportCode(cmd.Type, cmd.Regime, year, seq, cmd.ExtensionCount)

	items := make([]entities.Item, len(cmd.Items))
	copy(items, cmd.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	now := time.Now().UTC()
	p := entities.Process{
		ID:           uuid.NewString(),
		Type:         cmd.Type,
		ImportCode:   code,
		CurrentStage: entities.StageInception,
		Inception: entities.Inception{
			Priority:               cmd.Priority,
			ImportCode:             code,
			Supplier:               cmd.Supplier,
			CommercialInvoice:      cmd.CommercialInvoice,
			PurchaseOrder:          cmd.PurchaseOrder,
			Regime:                 cmd.Regime,
			Description:            cmd.Description,
			Reference:              cmd.Reference,
			BrokerNotificationDate: cmd.BrokerNotificationDate,
		},
		Preshipment: entities.Preshipment{
			OriginCountry: cmd.OriginCountry,
			InvoiceDate:   cmd.InvoiceDate,
			InvoiceValue:  cmd.InvoiceValue,
			Items:         items,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	BeforeSave(&p)
	return u.repo.Create(ctx, p)
}

// allocateSequence resolves the sequence number for a new process. An
// explicit sequence inside the user's code wins: it is rejected when taken
// and advances the shared counter only when it runs ahead of it.
func (u *ProcessUseCase) allocateSequence(ctx context.Context, userCode string) (int, error) {
	current, err := u.counter.CurrentValue(ctx, sequenceCounterID)
	if err != nil {
		log.Printf("[process][usecase] sequence counter unavailable: %v", err)
		return 0, ErrCounterUninitialized
	}

	userSeq, hasUserSeq := entities.ExtractSequence(userCode)
	if !hasUserSeq {
		return u.counter.IncrementAndGet(ctx, sequenceCounterID)
	}

	taken, err := u.repo.ExistsBySequence(ctx, userSeq)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrSequenceConflict
	}
	if userSeq > current {
		if err := u.counter.SetValue(ctx, sequenceCounterID, userSeq); err != nil {
			return 0, err
		}
	}
	return userSeq, nil
}

func (u *ProcessUseCase) GetByID(ctx context.Context, id string) (entities.Process, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Process{}, ErrInvalidProcessID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}
	if p.ID == "" {
		return entities.Process{}, ErrProcessNotFound
	}
	return p, nil
}

func (u *ProcessUseCase) List(ctx context.Context) ([]entities.Process, error) {
	return u.repo.List(ctx)
}

// UpdateStage replaces one stage's data and advances currentStage when the
// named stage sits later in the pipeline than the current one. Naming an
// earlier stage edits its data but never regresses currentStage.
func (u *ProcessUseCase) UpdateStage(ctx context.Context, id, stage string, payload map[string]any) (entities.Process, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Process{}, ErrInvalidProcessID
	}
	if !updatableStages[stage] {
		return entities.Process{}, ErrInvalidStage
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}

	dates.NormalizeInPlace(payload)
	if err := mergeStage(&p, stage, payload); err != nil {
		return entities.Process{}, err
	}

	if entities.StageRank(entities.Stage(stage)) > entities.StageRank(p.CurrentStage) {
		p.CurrentStage = entities.Stage(stage)
	}

	p.UpdatedAt = time.Now().UTC()
	BeforeSave(&p)
	return u.repo.Save(ctx, p)
}

// Update applies a partial, multi-stage update. When ItemID is set, a
// preshipment "items" payload edits only that item instead of replacing the
// whole list.
func (u *ProcessUseCase) Update(ctx context.Context, id string, cmd UpdateProcessCommand) (entities.Process, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Process{}, ErrInvalidProcessID
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}

	for stage, payload := range cmd.Stages {
		if !updatableStages[stage] {
			return entities.Process{}, ErrInvalidStage
		}
		dates.NormalizeInPlace(payload)

		if stage == "preshipment" {
			if itemPayload, ok := payload["items"].(map[string]any); ok && cmd.ItemID != "" {
				item := p.Preshipment.FindItemByID(cmd.ItemID)
				if item == nil {
					return entities.Process{}, ErrItemNotFound
				}
				if err := mergeInto(item, itemPayload); err != nil {
					return entities.Process{}, err
				}
				delete(payload, "items")
			}
		}

		if err := mergeStage(&p, stage, payload); err != nil {
			return entities.Process{}, err
		}
	}

	// The inception copy of the code is what users edit; keep the top-level
	// code in sync with it.
	if p.Inception.ImportCode != "" {
		p.ImportCode = p.Inception.ImportCode
	}

	p.UpdatedAt = time.Now().UTC()
	BeforeSave(&p)
	return u.repo.Save(ctx, p)
}

func (u *ProcessUseCase) Void(ctx context.Context, id string) (entities.Process, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}

	p.Voided = true
	p.UpdatedAt = time.Now().UTC()
	BeforeSave(&p)
	return u.repo.Save(ctx, p)
}

func (u *ProcessUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProcessID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProcessNotFound
	}
	return nil
}

// DeleteItem removes one preshipment item by its business code.
func (u *ProcessUseCase) DeleteItem(ctx context.Context, id, code string) (entities.Process, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Process{}, ErrInvalidItemCode
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Process{}, err
	}
	if len(p.Preshipment.Items) == 0 {
		return entities.Process{}, ErrProcessHasNoItems
	}
	if !p.Preshipment.RemoveItemByCode(code) {
		return entities.Process{}, ErrItemNotFound
	}

	p.UpdatedAt = time.Now().UTC()
	BeforeSave(&p)
	return u.repo.Save(ctx, p)
}

// PreviewCode shows the code the next create would produce, without touching
// the counter.
func (u *ProcessUseCase) PreviewCode(ctx context.Context, processType, regime string, extensions int) (CodePreview, error) {
	processType = strings.TrimSpace(processType)
	regime = strings.TrimSpace(regime)
	if processType == "" {
		return CodePreview{}, ErrInvalidProcessType
	}
	if regime == "" {
		return CodePreview{}, ErrInvalidRegime
	}

	current, err := u.counter.CurrentValue(ctx, sequenceCounterID)
	if err != nil {
		return CodePreview{}, ErrCounterUninitialized
	}

	year := time.Now().UTC().Year()
	nextSeq := current + 1
	return CodePreview{
		Base: entities.BuildImportCode(processType, regime, year, nextSeq, 0),
		Full: entities.BuildImportCode(processType, regime, year, nextSeq, extensions),
	}, nil
}

// mergeStage decodes a field map onto the named stage sub-record. Only the
// provided keys are overwritten; unknown keys are ignored.
func mergeStage(p *entities.Process, stage string, payload map[string]any) error {
	var target any
	switch stage {
	case "inception":
		target = &p.Inception
	case "preshipment":
		target = &p.Preshipment
	case "postshipment":
		target = &p.Postshipment
	case "customs":
		target = &p.Customs
	case "dispatch":
		target = &p.Dispatch
	case "derived":
		target = &p.Derived
	default:
		return ErrInvalidStage
	}
	if err := mergeInto(target, payload); err != nil {
		return err
	}
	if stage == "preshipment" {
		for i := range p.Preshipment.Items {
			if p.Preshipment.Items[i].ID == "" {
				p.Preshipment.Items[i].ID = uuid.NewString()
			}
		}
	}
	return nil
}

// mergeInto JSON-round-trips a field map onto a struct, which gives partial-
// update semantics for free: absent keys keep their value, explicit nulls
// clear pointer fields.
func mergeInto(target any, payload map[string]any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, target)
}
