package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ProcessStatus represents the lifecycle of an import process.
//
// Domain notes:
//   - Status is never set by callers; it is recomputed from stage dates and
//     the voided flag on every save (see ComputeStatus).
//   - A voided process stays voided regardless of any other field.

type ProcessStatus string

const (
	StatusCustoms               ProcessStatus = "customs"
	StatusVoided                ProcessStatus = "voided"
	StatusConcluded             ProcessStatus = "concluded"
	StatusHistorical            ProcessStatus = "historical"
	StatusPendingOriginDispatch ProcessStatus = "pending-origin-dispatch"
	StatusInTransit             ProcessStatus = "in-transit"
)

// Stage identifies one step of the fixed import pipeline. currentStage only
// ever advances; an update naming an earlier stage can still edit that
// stage's data but never moves currentStage backwards.

type Stage string

const (
	StageInception    Stage = "inception"
	StagePreshipment  Stage = "preshipment"
	StagePostshipment Stage = "postshipment"
	StageCustoms      Stage = "customs"
	StageDispatch     Stage = "dispatch"
	StageFinalized    Stage = "finalized"
)

var stageOrder = []Stage{
	StageInception,
	StagePreshipment,
	StagePostshipment,
	StageCustoms,
	StageDispatch,
	StageFinalized,
}

// StageRank returns the pipeline position of a stage, or -1 for an unknown one.
func StageRank(s Stage) int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Inception holds the data captured when a process is opened.
type Inception struct {
	Priority               string     `json:"priority" dynamodbav:"priority"`
	ImportCode             string     `json:"import_code" dynamodbav:"import_code"`
	Supplier               string     `json:"supplier" dynamodbav:"supplier"`
	CommercialInvoice      string     `json:"commercial_invoice" dynamodbav:"commercial_invoice"`
	PurchaseOrder          string     `json:"purchase_order" dynamodbav:"purchase_order"`
	Regime                 string     `json:"regime" dynamodbav:"regime"`
	Description            string     `json:"description" dynamodbav:"description"`
	BrokerNotificationDate *time.Time `json:"broker_notification_date" dynamodbav:"broker_notification_date"`
	Reference              string     `json:"reference" dynamodbav:"reference"`
}

// Item is a line of cargo inside the preshipment stage. Code is the business
// identifier, unique within the owning process; ID is the storage identifier
// used by item-level partial updates.
type Item struct {
	ID                      string     `json:"id" dynamodbav:"id"`
	Code                    string     `json:"code" dynamodbav:"code"`
	Description             string     `json:"description" dynamodbav:"description"`
	RequestedQuintals       *float64   `json:"requested_quintals" dynamodbav:"requested_quintals"`
	RequestedBoxes          *float64   `json:"requested_boxes" dynamodbav:"requested_boxes"`
	DispatchedQuintals      *float64   `json:"dispatched_quintals" dynamodbav:"dispatched_quintals"`
	DispatchedBoxes         *float64   `json:"dispatched_boxes" dynamodbav:"dispatched_boxes"`
	DelayCauses             string     `json:"delay_causes" dynamodbav:"delay_causes"`
	UnloadingIssues         string     `json:"unloading_issues" dynamodbav:"unloading_issues"`
	TemperatureAnomalies    string     `json:"temperature_anomalies" dynamodbav:"temperature_anomalies"`
	ArrivalPort             string     `json:"arrival_port" dynamodbav:"arrival_port"`
	Brand                   string     `json:"brand" dynamodbav:"brand"`
	SKU                     string     `json:"sku" dynamodbav:"sku"`
	WarehouseEntryWeek      *int       `json:"warehouse_entry_week" dynamodbav:"warehouse_entry_week"`
	Year                    *int       `json:"year" dynamodbav:"year"`
	RequestWeek             *int       `json:"request_week" dynamodbav:"request_week"`
	DeltaReqVsLoad          *float64   `json:"delta_req_vs_load" dynamodbav:"delta_req_vs_load"`
	DeltaRequestVsETD       *time.Time `json:"delta_request_vs_etd" dynamodbav:"delta_request_vs_etd"`
	DeltaRequestVsLoad      *time.Time `json:"delta_request_vs_load" dynamodbav:"delta_request_vs_load"`
	LeadTimeLoadToWarehouse *time.Time `json:"lead_time_load_to_warehouse" dynamodbav:"lead_time_load_to_warehouse"`
	LeadTimeRoundTripWeek   *int       `json:"lead_time_round_trip_week" dynamodbav:"lead_time_round_trip_week"`
	Month                   *int       `json:"month" dynamodbav:"month"`
	RequiredWeek            *int       `json:"required_week" dynamodbav:"required_week"`
	OnTime                  string     `json:"on_time" dynamodbav:"on_time"`
	TenderTransitTime       *float64   `json:"tender_transit_time" dynamodbav:"tender_transit_time"`
	TransitTimeDelta        *float64   `json:"transit_time_delta" dynamodbav:"transit_time_delta"`
	SatUN                   *float64   `json:"sat_un" dynamodbav:"sat_un"`
	SatCONT                 *float64   `json:"sat_cont" dynamodbav:"sat_cont"`
	PrimaryFreight          *float64   `json:"primary_freight" dynamodbav:"primary_freight"`
	OtherCosts              *float64   `json:"other_costs" dynamodbav:"other_costs"`
	Insurance               *float64   `json:"insurance" dynamodbav:"insurance"`
	Total                   *float64   `json:"total" dynamodbav:"total"`
}

// Preshipment covers supplier, permit, guarantee and pickup data plus the
// cargo items.
type Preshipment struct {
	OriginCountry               string     `json:"origin_country" dynamodbav:"origin_country"`
	InvoiceDate                 *time.Time `json:"invoice_date" dynamodbav:"invoice_date"`
	InvoiceValue                *float64   `json:"invoice_value" dynamodbav:"invoice_value"`
	PaymentTerms                string     `json:"payment_terms" dynamodbav:"payment_terms"`
	Quantity                    *float64   `json:"quantity" dynamodbav:"quantity"`
	UnitOfMeasure               string     `json:"unit_of_measure" dynamodbav:"unit_of_measure"`
	Items                       []Item     `json:"items" dynamodbav:"items"`
	PermitIssuerEntity          string     `json:"permit_issuer_entity" dynamodbav:"permit_issuer_entity"`
	ImportPermitNumber          string     `json:"import_permit_number" dynamodbav:"import_permit_number"`
	RegimeRequestDate           *time.Time `json:"regime_request_date" dynamodbav:"regime_request_date"`
	Reg21Letter                 string     `json:"reg21_letter" dynamodbav:"reg21_letter"`
	GuaranteeRequestDate        *time.Time `json:"guarantee_request_date" dynamodbav:"guarantee_request_date"`
	Insurer                     string     `json:"insurer" dynamodbav:"insurer"`
	GuaranteeNumber             string     `json:"guarantee_number" dynamodbav:"guarantee_number"`
	InsuredAmount               *float64   `json:"insured_amount" dynamodbav:"insured_amount"`
	GuaranteeStartDate          *time.Time `json:"guarantee_start_date" dynamodbav:"guarantee_start_date"`
	GuaranteeEndDate            *time.Time `json:"guarantee_end_date" dynamodbav:"guarantee_end_date"`
	GuaranteeCdaNumber          string     `json:"guarantee_cda_number" dynamodbav:"guarantee_cda_number"`
	PolicySentDate              *time.Time `json:"policy_sent_date" dynamodbav:"policy_sent_date"`
	OriginalDocumentReceiptDate *time.Time `json:"original_document_receipt_date" dynamodbav:"original_document_receipt_date"`
	PolicyNumber                string     `json:"policy_number" dynamodbav:"policy_number"`
	Incoterms                   string     `json:"incoterms" dynamodbav:"incoterms"`
	EstimatedPickupDate         *time.Time `json:"estimated_pickup_date" dynamodbav:"estimated_pickup_date"`
	SupplierPickupDate          *time.Time `json:"supplier_pickup_date" dynamodbav:"supplier_pickup_date"`
	ActualPickupDate            *time.Time `json:"actual_pickup_date" dynamodbav:"actual_pickup_date"`
	WarehouseRequiredDate       *time.Time `json:"warehouse_required_date" dynamodbav:"warehouse_required_date"`
	MaxWarehouseRequiredDate    *time.Time `json:"max_warehouse_required_date" dynamodbav:"max_warehouse_required_date"`
	ClarificationLetter         string     `json:"clarification_letter" dynamodbav:"clarification_letter"`
	CertificateOfOrigin         string     `json:"certificate_of_origin" dynamodbav:"certificate_of_origin"`
	PackingList                 string     `json:"packing_list" dynamodbav:"packing_list"`
	ExpensesLetter              string     `json:"expenses_letter" dynamodbav:"expenses_letter"`
	ProcedenceCountry           string     `json:"procedence_country" dynamodbav:"procedence_country"`
	CallOff                     string     `json:"call_off" dynamodbav:"call_off"`
	CallOffDate                 *time.Time `json:"call_off_date" dynamodbav:"call_off_date"`
}

// Postshipment covers the international leg: bills of lading, carrier and the
// shipment/arrival dates driving the in-transit and customs statuses.
type Postshipment struct {
	MasterBL                 string     `json:"master_bl" dynamodbav:"master_bl"`
	HouseBL                  string     `json:"house_bl" dynamodbav:"house_bl"`
	TransportMode            string     `json:"transport_mode" dynamodbav:"transport_mode"`
	TransportCompany         string     `json:"transport_company" dynamodbav:"transport_company"`
	Forwarder                string     `json:"forwarder" dynamodbav:"forwarder"`
	EstimatedShipDate        *time.Time `json:"estimated_ship_date" dynamodbav:"estimated_ship_date"`
	ActualShipDate           *time.Time `json:"actual_ship_date" dynamodbav:"actual_ship_date"`
	EstimatedPortArrivalDate *time.Time `json:"estimated_port_arrival_date" dynamodbav:"estimated_port_arrival_date"`
	ActualPortArrivalDate    *time.Time `json:"actual_port_arrival_date" dynamodbav:"actual_port_arrival_date"`
	GuideNumber              string     `json:"guide_number" dynamodbav:"guide_number"`
	OriginalDocsReceiptDate  *time.Time `json:"original_docs_receipt_date" dynamodbav:"original_docs_receipt_date"`
	LoadingPort              string     `json:"loading_port" dynamodbav:"loading_port"`
}

// Customs covers the clearance stage: electronic submission, settlement and
// the authorized-release milestone the SLA evaluators key on.
type Customs struct {
	ElectronicSubmissionDate *time.Time `json:"electronic_submission_date" dynamodbav:"electronic_submission_date"`
	SettlementPaymentDate    *time.Time `json:"settlement_payment_date" dynamodbav:"settlement_payment_date"`
	AuthorizedReleaseDate    *time.Time `json:"authorized_release_date" dynamodbav:"authorized_release_date"`
	InspectionType           string     `json:"inspection_type" dynamodbav:"inspection_type"`
	ReleaseCode              string     `json:"release_code" dynamodbav:"release_code"`
	EcuapassDeliveryNumber   string     `json:"ecuapass_delivery_number" dynamodbav:"ecuapass_delivery_number"`
	SettlementNumber         string     `json:"settlement_number" dynamodbav:"settlement_number"`
	AuthorizationCdaNumber   string     `json:"authorization_cda_number" dynamodbav:"authorization_cda_number"`
	CargoNumber              string     `json:"cargo_number" dynamodbav:"cargo_number"`
	CustomsStatus            string     `json:"customs_status" dynamodbav:"customs_status"`
}

// Dispatch covers the last mile: port dispatch, warehouse delivery and cost
// invoicing. CostInvoiceDate present flips the process to historical.
type Dispatch struct {
	CostInvoiceDate                *time.Time `json:"cost_invoice_date" dynamodbav:"cost_invoice_date"`
	ContainerNumber                string     `json:"container_number" dynamodbav:"container_number"`
	Weight                         *float64   `json:"weight" dynamodbav:"weight"`
	Packages                       *int       `json:"packages" dynamodbav:"packages"`
	ContainerType                  string     `json:"container_type" dynamodbav:"container_type"`
	EstimatedPortDispatchDate      *time.Time `json:"estimated_port_dispatch_date" dynamodbav:"estimated_port_dispatch_date"`
	ActualPortDispatchDate         *time.Time `json:"actual_port_dispatch_date" dynamodbav:"actual_port_dispatch_date"`
	EstimatedWarehouseDeliveryDate *time.Time `json:"estimated_warehouse_delivery_date" dynamodbav:"estimated_warehouse_delivery_date"`
	ActualWarehouseDeliveryDate    *time.Time `json:"actual_warehouse_delivery_date" dynamodbav:"actual_warehouse_delivery_date"`
	FreeDays                       *int       `json:"free_days" dynamodbav:"free_days"`
	CarrierConfirmed               *int       `json:"carrier_confirmed" dynamodbav:"carrier_confirmed"`
	CasDate                        *time.Time `json:"cas_date" dynamodbav:"cas_date"`
	EmptyContainerReturnDate       *time.Time `json:"empty_container_return_date" dynamodbav:"empty_container_return_date"`
	StorageCost                    *float64   `json:"storage_cost" dynamodbav:"storage_cost"`
	Demurrage                      *float64   `json:"demurrage" dynamodbav:"demurrage"`
	Notes                          string     `json:"notes" dynamodbav:"notes"`
	WeightRecordDate               *time.Time `json:"weight_record_date" dynamodbav:"weight_record_date"`
}

// DerivedMetrics is the operational-reporting bundle recomputed on every save.
// FolderNotes and the Range* fields are entered manually and survive
// recomputation; everything else is overwritten.
type DerivedMetrics struct {
	ProcessStatus                     string   `json:"process_status" dynamodbav:"process_status"`
	CustomsClearanceStatus            string   `json:"customs_clearance_status" dynamodbav:"customs_clearance_status"`
	InternationalTransitDays          *int     `json:"international_transit_days" dynamodbav:"international_transit_days"`
	BusinessDaysSubmissionToRelease   *int     `json:"business_days_submission_to_release" dynamodbav:"business_days_submission_to_release"`
	BusinessDaysEtaToRelease          *int     `json:"business_days_eta_to_release" dynamodbav:"business_days_eta_to_release"`
	CalendarDaysArrivalToPortDispatch *int     `json:"calendar_days_arrival_to_port_dispatch" dynamodbav:"calendar_days_arrival_to_port_dispatch"`
	CalendarDaysArrivalToWarehouse    *int     `json:"calendar_days_arrival_to_warehouse" dynamodbav:"calendar_days_arrival_to_warehouse"`
	BusinessDaysInvoicing             *int     `json:"business_days_invoicing" dynamodbav:"business_days_invoicing"`
	FolderNotes                       string   `json:"folder_notes" dynamodbav:"folder_notes"`
	RangeSubmissionToRelease          *float64 `json:"range_submission_to_release" dynamodbav:"range_submission_to_release"`
	RangeEtaToSubmission              *float64 `json:"range_eta_to_submission" dynamodbav:"range_eta_to_submission"`
	RangeFolders                      *float64 `json:"range_folders" dynamodbav:"range_folders"`
	ActualBusinessDaysEtaToSubmission *int     `json:"actual_business_days_eta_to_submission" dynamodbav:"actual_business_days_eta_to_submission"`
	BusinessDaysSubmissionToClearance *int     `json:"business_days_submission_to_clearance" dynamodbav:"business_days_submission_to_clearance"`
}

// Process is one tracked import case persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI (sequence-index): sequence, for import-code conflict checks
type Process struct {
	ID           string         `json:"id" dynamodbav:"id"`
	Type         string         `json:"type" dynamodbav:"type"`
	ImportCode   string         `json:"import_code" dynamodbav:"import_code"`
	Status       ProcessStatus  `json:"status" dynamodbav:"status"`
	Voided       bool           `json:"voided" dynamodbav:"voided"`
	CurrentStage Stage          `json:"current_stage" dynamodbav:"current_stage"`
	Inception    Inception      `json:"inception" dynamodbav:"inception"`
	Preshipment  Preshipment    `json:"preshipment" dynamodbav:"preshipment"`
	Postshipment Postshipment   `json:"postshipment" dynamodbav:"postshipment"`
	Customs      Customs        `json:"customs" dynamodbav:"customs"`
	Dispatch     Dispatch       `json:"dispatch" dynamodbav:"dispatch"`
	Derived      DerivedMetrics `json:"derived" dynamodbav:"derived"`
	CreatedAt    time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// ComputeStatus derives the lifecycle status from stage data. The checks are
// ordered: later-stage facts dominate earlier ones, and voided overrides all.
func ComputeStatus(p *Process) ProcessStatus {
	switch {
	case p.Voided:
		return StatusVoided
	case p.Dispatch.CostInvoiceDate != nil:
		return StatusHistorical
	case p.Dispatch.ActualPortDispatchDate != nil:
		return StatusConcluded
	case p.Postshipment.ActualShipDate != nil:
		return StatusInTransit
	case p.Postshipment.ActualPortArrivalDate != nil:
		return StatusCustoms
	case p.CurrentStage == StageInception:
		return StatusPendingOriginDispatch
	default:
		return StatusPendingOriginDispatch
	}
}

// BuildImportCode formats the official process code:
// {type}-{regime}-{year}-{seq:03d}, plus one zero-padded sub-sequence segment
// per declared extension.
func BuildImportCode(processType, regime string, year, seq, extensions int) string {
	code := fmt.Sprintf("%s-%s-%d-%03d", processType, regime, year, seq)
	for i := 0; i < extensions; i++ {
		code += fmt.Sprintf("-%03d", i+1)
	}
	return code
}

// ExtractSequence pulls the sequence number out of a user-entered import code.
// Returns false when the code has no parseable sequence segment.
func ExtractSequence(code string) (int, bool) {
	if code == "" {
		return 0, false
	}
	parts := strings.Split(code, "-")
	if len(parts) < 4 {
		return 0, false
	}
	seq, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return 0, false
	}
	return seq, true
}

// FindItemByID returns the item with the given storage id, or nil.
func (p *Preshipment) FindItemByID(id string) *Item {
	for i := range p.Items {
		if p.Items[i].ID == id {
			return &p.Items[i]
		}
	}
	return nil
}

// RemoveItemByCode deletes the item carrying the business code. Returns false
// when no item matches.
func (p *Preshipment) RemoveItemByCode(code string) bool {
	kept := p.Items[:0]
	removed := false
	for _, it := range p.Items {
		if it.Code == code {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	p.Items = kept
	return removed
}
