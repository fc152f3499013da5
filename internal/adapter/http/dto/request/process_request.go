package request

import (
	"encoding/json"
	"strings"
	"time"

	"controlimport/internal/domain/dates"
	"controlimport/internal/domain/entities"
	"controlimport/internal/usecase"
)

// CreateProcessRequest is the inception payload sent by the frontend. Date
// fields are `any` because clients send whatever their widgets produce —
// date-only strings, full timestamps, or Excel serials on re-submission of
// exported data — and all of them are funneled through the flexible parser.
type CreateProcessRequest struct {
	Type                   string           `json:"type" binding:"required"`
	Regime                 string           `json:"regime" binding:"required"`
	Extensions             []string         `json:"extensions"`
	ImportCode             string           `json:"import_code"`
	Supplier               string           `json:"supplier"`
	CommercialInvoice      string           `json:"commercial_invoice"`
	PurchaseOrder          string           `json:"purchase_order"`
	Description            string           `json:"description"`
	Reference              string           `json:"reference"`
	Priority               string           `json:"priority"`
	BrokerNotificationDate any              `json:"broker_notification_date"`
	OriginCountry          string           `json:"origin_country"`
	InvoiceDate            any              `json:"invoice_date"`
	InvoiceValue           *float64         `json:"invoice_value"`
	Items                  []map[string]any `json:"items"`
}

// ToCommand converts the payload into the domain command, normalizing every
// date on the way in.
func (r CreateProcessRequest) ToCommand() (usecase.CreateProcessCommand, error) {
	items, err := toItems(r.Items)
	if err != nil {
		return usecase.CreateProcessCommand{}, err
	}

	return usecase.CreateProcessCommand{
		Type:                   strings.TrimSpace(r.Type),
		Regime:                 strings.TrimSpace(r.Regime),
		ExtensionCount:         len(r.Extensions),
		ImportCode:             strings.TrimSpace(r.ImportCode),
		Supplier:               r.Supplier,
		CommercialInvoice:      r.CommercialInvoice,
		PurchaseOrder:          r.PurchaseOrder,
		Description:            r.Description,
		Reference:              r.Reference,
		Priority:               r.Priority,
		BrokerNotificationDate: toDate(r.BrokerNotificationDate),
		OriginCountry:          r.OriginCountry,
		InvoiceDate:            toDate(r.InvoiceDate),
		InvoiceValue:           r.InvoiceValue,
		Items:                  items,
	}, nil
}

// UpdateProcessRequest is a partial update: any subset of stages, each a
// field map, optionally scoped to one preshipment item.
type UpdateProcessRequest struct {
	ItemID       string         `json:"item_id"`
	Inception    map[string]any `json:"inception"`
	Preshipment  map[string]any `json:"preshipment"`
	Postshipment map[string]any `json:"postshipment"`
	Customs      map[string]any `json:"customs"`
	Dispatch     map[string]any `json:"dispatch"`
	Derived      map[string]any `json:"derived"`
}

func (r UpdateProcessRequest) ToCommand() usecase.UpdateProcessCommand {
	stages := map[string]map[string]any{}
	for name, payload := range map[string]map[string]any{
		"inception":    r.Inception,
		"preshipment":  r.Preshipment,
		"postshipment": r.Postshipment,
		"customs":      r.Customs,
		"dispatch":     r.Dispatch,
		"derived":      r.Derived,
	} {
		if payload != nil {
			stages[name] = payload
		}
	}
	return usecase.UpdateProcessCommand{Stages: stages, ItemID: strings.TrimSpace(r.ItemID)}
}

// IngestRequest wraps the pre-parsed spreadsheet rows of a bulk load.
type IngestRequest struct {
	Rows []usecase.IngestRow `json:"rows" binding:"required"`
}

func toDate(v any) *time.Time {
	if v == nil {
		return nil
	}
	t, ok := dates.ParseFlexible(v)
	if !ok {
		return nil
	}
	return &t
}

// toItems converts raw item maps into typed items. Dates are normalized in
// the map first so date-only strings survive the JSON round-trip into
// time fields.
func toItems(raw []map[string]any) ([]entities.Item, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	items := make([]entities.Item, 0, len(raw))
	for _, m := range raw {
		dates.NormalizeInPlace(m)
		b, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		var item entities.Item
		if err := json.Unmarshal(b, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
