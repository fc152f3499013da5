// Package metrics computes the operational-reporting bundle stored on every
// process. Unlike the sla package these figures are raw calendar and
// business-day gaps with no rule matrix behind them; they are recomputed on
// every save so the stored numbers can never drift from the stage dates.
package metrics

import (
	"strings"
	"time"

	"controlimport/internal/domain/dates"
	"controlimport/internal/domain/entities"
)

// Customs clearance labels, ordered by pipeline progress.
const (
	ClearanceDispatched      = "dispatched"
	ClearanceFolderDelivered = "folder-delivered"
	ClearanceUnderReview     = "under-review"
)

// Compute rebuilds the derived bundle for one process. Manually-entered
// fields (folder notes, range figures) are carried over from the previous
// bundle; every computed field is overwritten.
func Compute(p *entities.Process) entities.DerivedMetrics {
	return entities.DerivedMetrics{
		ProcessStatus:                     string(p.Status),
		CustomsClearanceStatus:            clearanceStatus(p),
		InternationalTransitDays:          calendarDays(p.Postshipment.ActualShipDate, p.Postshipment.ActualPortArrivalDate),
		BusinessDaysSubmissionToRelease:   businessDays(p.Customs.ElectronicSubmissionDate, p.Customs.AuthorizedReleaseDate),
		BusinessDaysEtaToRelease:          businessDays(p.Customs.AuthorizedReleaseDate, p.Postshipment.ActualPortArrivalDate),
		CalendarDaysArrivalToPortDispatch: calendarDays(p.Postshipment.ActualPortArrivalDate, p.Dispatch.ActualPortDispatchDate),
		CalendarDaysArrivalToWarehouse:    calendarDays(p.Postshipment.ActualPortArrivalDate, p.Dispatch.ActualWarehouseDeliveryDate),
		BusinessDaysInvoicing:             businessDays(p.Dispatch.CostInvoiceDate, p.Dispatch.ActualWarehouseDeliveryDate),
		FolderNotes:                       p.Derived.FolderNotes,
		RangeSubmissionToRelease:          p.Derived.RangeSubmissionToRelease,
		RangeEtaToSubmission:              p.Derived.RangeEtaToSubmission,
		RangeFolders:                      p.Derived.RangeFolders,
		ActualBusinessDaysEtaToSubmission: actualEtaToSubmission(p),
		BusinessDaysSubmissionToClearance: businessDays(p.Customs.ElectronicSubmissionDate, p.Customs.AuthorizedReleaseDate),
	}
}

// clearanceStatus labels the customs progress from the latest milestone
// reached: dispatched from port, cost folder delivered, or release code
// under review. Empty when none applies.
func clearanceStatus(p *entities.Process) string {
	switch {
	case p.Dispatch.ActualPortDispatchDate != nil:
		return ClearanceDispatched
	case p.Dispatch.CostInvoiceDate != nil:
		return ClearanceFolderDelivered
	case p.Customs.ReleaseCode != "":
		return ClearanceUnderReview
	default:
		return ""
	}
}

// calendarDays is the floored whole-day gap between two dates, 0 when the
// interval is reversed, nil when either side is missing.
func calendarDays(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	diff := int(dates.Noon(*end).Sub(dates.Noon(*start)).Hours() / 24)
	if diff < 0 {
		diff = 0
	}
	return &diff
}

func businessDays(start, end *time.Time) *int {
	if start == nil || end == nil {
		return nil
	}
	days := dates.BusinessDays(*start, *end)
	return &days
}

var (
	allowedRegimes    = []string{"10", "21", "91"}
	allowedPriorities = []string{"NORMAL", "PRIORIDAD"}
	allowedTransports = []string{"AEREO", "MARITIMO", "TERRESTRE"}
)

// actualEtaToSubmission measures the real ETA-to-electronic-submission
// business-day gap, but only for the shipment profiles the reporting side
// tracks: an allow-listed regime, priority and transport mode, with a cargo
// text naming either bucket. Submissions ahead of arrival count as 0.
func actualEtaToSubmission(p *entities.Process) *int {
	arrival := p.Postshipment.ActualPortArrivalDate
	submission := p.Customs.ElectronicSubmissionDate
	if arrival == nil || submission == nil {
		return nil
	}

	if !contains(allowedRegimes, strings.TrimSpace(p.Inception.Regime)) ||
		!contains(allowedPriorities, strings.ToUpper(strings.TrimSpace(p.Inception.Priority))) ||
		!contains(allowedTransports, strings.ToUpper(strings.TrimSpace(p.Postshipment.TransportMode))) {
		return nil
	}

	cargoText := strings.ToLower(p.Dispatch.ContainerType)
	if !strings.Contains(cargoText, "carga suelta") && !strings.Contains(cargoText, "contenedor") {
		return nil
	}

	zero := 0
	if dates.Noon(*submission).Before(dates.Noon(*arrival)) {
		return &zero
	}
	days := dates.BusinessDays(*arrival, *submission)
	return &days
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
