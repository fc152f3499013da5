package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"controlimport/internal/domain/dates"
	"controlimport/internal/domain/entities"
	"controlimport/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrIngestNoRows     = errors.New("ingest payload contains no rows")
	ErrIngestValidation = errors.New("ingest rows failed validation")
)

// IngestRow is one parsed spreadsheet row. Date cells come through as
// whatever the parser produced — ISO strings, RFC3339 strings or Excel
// serial numbers — and are converted here; the file format itself is the
// caller's problem. Rows sharing an import code fold into one process, each
// row optionally contributing a cargo item.
type IngestRow struct {
	ImportCode               string   `json:"import_code"`
	Type                     string   `json:"type"`
	Regime                   string   `json:"regime"`
	Priority                 string   `json:"priority"`
	Supplier                 string   `json:"supplier"`
	Description              string   `json:"description"`
	OriginCountry            string   `json:"origin_country"`
	InvoiceDate              any      `json:"invoice_date"`
	InvoiceValue             *float64 `json:"invoice_value"`
	TransportMode            string   `json:"transport_mode"`
	TransportCompany         string   `json:"transport_company"`
	ActualShipDate           any      `json:"actual_ship_date"`
	ActualPortArrivalDate    any      `json:"actual_port_arrival_date"`
	ElectronicSubmissionDate any      `json:"electronic_submission_date"`
	AuthorizedReleaseDate    any      `json:"authorized_release_date"`
	InspectionType           string   `json:"inspection_type"`
	ReleaseCode              string   `json:"release_code"`
	ContainerType            string   `json:"container_type"`
	ActualPortDispatchDate   any      `json:"actual_port_dispatch_date"`
	WarehouseDeliveryDate    any      `json:"warehouse_delivery_date"`
	ItemCode                 string   `json:"item_code"`
	ItemDescription          string   `json:"item_description"`
	RequestedQuintals        *float64 `json:"requested_quintals"`
	DispatchedQuintals       *float64 `json:"dispatched_quintals"`
	RequestedBoxes           *float64 `json:"requested_boxes"`
	DispatchedBoxes          *float64 `json:"dispatched_boxes"`
}

// IngestResult reports what a bulk load produced.
type IngestResult struct {
	Created int      `json:"created"`
	IDs     []string `json:"ids"`
	Errors  []string `json:"errors,omitempty"`
}

// IIngestUseCase loads pre-parsed spreadsheet rows as processes.
type IIngestUseCase interface {
	IngestRows(ctx context.Context, rows []IngestRow) (IngestResult, error)
}

type IngestUseCase struct {
	repo interfaces.IProcessRepository
}

var _ IIngestUseCase = (*IngestUseCase)(nil)

func NewIngestUseCase(repo interfaces.IProcessRepository) *IngestUseCase {
	return &IngestUseCase{repo: repo}
}

// IngestRows groups rows into processes by import code and persists them.
// All rows are validated up front; any error rejects the whole batch, so a
// re-upload after a fix never half-applies. Codes in the file are trusted
// as-is: bulk loads mirror an external system and do not draw sequences.
func (u *IngestUseCase) IngestRows(ctx context.Context, rows []IngestRow) (IngestResult, error) {
	if len(rows) == 0 {
		return IngestResult{}, ErrIngestNoRows
	}

	var rowErrors []string
	byCode := map[string]*entities.Process{}
	order := []string{}

	for i, row := range rows {
		code := strings.TrimSpace(row.ImportCode)
		if code == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: missing import code", i+1))
			continue
		}

		p, seen := byCode[code]
		if !seen {
			if strings.TrimSpace(row.Type) == "" {
				rowErrors = append(rowErrors, fmt.Sprintf("row %d: missing process type for %s", i+1, code))
				continue
			}
			p = newIngestedProcess(code, row)
			byCode[code] = p
			order = append(order, code)
		}

		if itemCode := strings.TrimSpace(row.ItemCode); itemCode != "" {
			p.Preshipment.Items = append(p.Preshipment.Items, entities.Item{
				ID:                 uuid.NewString(),
				Code:               itemCode,
				Description:        row.ItemDescription,
				RequestedQuintals:  row.RequestedQuintals,
				DispatchedQuintals: row.DispatchedQuintals,
				RequestedBoxes:     row.RequestedBoxes,
				DispatchedBoxes:    row.DispatchedBoxes,
			})
		}
	}

	if len(rowErrors) > 0 {
		return IngestResult{Errors: rowErrors}, ErrIngestValidation
	}

	result := IngestResult{IDs: make([]string, 0, len(order))}
	for _, code := range order {
		p := byCode[code]
		BeforeSave(p)
		created, err := u.repo.Create(ctx, *p)
		if err != nil {
			return result, err
		}
		result.Created++
		result.IDs = append(result.IDs, created.ID)
	}
	return result, nil
}

func newIngestedProcess(code string, row IngestRow) *entities.Process {
	now := time.Now().UTC()
	return &entities.Process{
		ID:           uuid.NewString(),
		Type:         strings.TrimSpace(row.Type),
		ImportCode:   code,
		CurrentStage: entities.StageInception,
		Inception: entities.Inception{
			Priority:    row.Priority,
			ImportCode:  code,
			Supplier:    row.Supplier,
			Regime:      strings.TrimSpace(row.Regime),
			Description: row.Description,
		},
		Preshipment: entities.Preshipment{
			OriginCountry: row.OriginCountry,
			InvoiceDate:   flexDate(row.InvoiceDate),
			InvoiceValue:  row.InvoiceValue,
		},
		Postshipment: entities.Postshipment{
			TransportMode:         row.TransportMode,
			TransportCompany:      row.TransportCompany,
			ActualShipDate:        flexDate(row.ActualShipDate),
			ActualPortArrivalDate: flexDate(row.ActualPortArrivalDate),
		},
		Customs: entities.Customs{
			ElectronicSubmissionDate: flexDate(row.ElectronicSubmissionDate),
			AuthorizedReleaseDate:    flexDate(row.AuthorizedReleaseDate),
			InspectionType:           row.InspectionType,
			ReleaseCode:              row.ReleaseCode,
		},
		Dispatch: entities.Dispatch{
			ContainerType:               row.ContainerType,
			ActualPortDispatchDate:      flexDate(row.ActualPortDispatchDate),
			ActualWarehouseDeliveryDate: flexDate(row.WarehouseDeliveryDate),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// flexDate converts an ISO string or Excel serial cell to a noon-UTC date,
// nil for blank or unparseable cells.
func flexDate(v any) *time.Time {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	t, ok := dates.ParseFlexible(v)
	if !ok {
		return nil
	}
	return &t
}
