package sla

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"controlimport/internal/domain/entities"
)

// ThresholdKind distinguishes the two rule flavors in the matrices.
type ThresholdKind string

const (
	// KindTolerance: exceeding the threshold is late, meeting it is fine.
	KindTolerance ThresholdKind = "tolerance"
	// KindExactLeadTime: only the exact date n business days before the
	// anchor is compliant; earlier and later both count as late.
	KindExactLeadTime ThresholdKind = "exact-lead-time"
)

// Threshold is the resolved SLA for one process. Days keeps the signed value
// from the matrix (negative for exact-lead-time rules). A nil *Threshold
// means the SLA is undetermined: missing attributes, no matching rule, or a
// not-applicable sentinel in the table.
type Threshold struct {
	Kind ThresholdKind
	Days int
}

// LeadDays returns the business-day anticipation of an exact-lead-time rule.
func (t Threshold) LeadDays() int {
	if t.Days < 0 {
		return -t.Days
	}
	return t.Days
}

func newThreshold(days int) *Threshold {
	if days == notApplicable {
		return nil
	}
	if days < 0 {
		return &Threshold{Kind: KindExactLeadTime, Days: days}
	}
	return &Threshold{Kind: KindTolerance, Days: days}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText strips diacritics, upper-cases and trims, so that values
// typed with or without accents ("AÉREO" vs "AEREO") hit the same rule row.
func normalizeText(s string) string {
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

// classifyCargo buckets the free-text container-type field by substring.
// Empty result means the text names neither bucket and no rule can apply.
func classifyCargo(containerType string) CargoClass {
	switch {
	case strings.Contains(containerType, "SUELTA"):
		return CargoLoose
	case strings.Contains(containerType, "CONTAINER"), strings.Contains(containerType, "CONTENEDOR"):
		return CargoContainer
	default:
		return ""
	}
}

// ruleInputs are the normalized shipment attributes every resolver keys on.
type ruleInputs struct {
	Regime     string
	Priority   string
	Mode       string
	Cargo      CargoClass
	Inspection string
}

func (in ruleInputs) priority() bool { return in.Priority == "PRIORIDAD" }

// resolveInputs reads and normalizes the matrix key attributes off the
// process. ok is false when any required attribute is blank or the cargo text
// classifies to neither bucket.
func resolveInputs(p *entities.Process, needInspection bool) (ruleInputs, bool) {
	in := ruleInputs{
		Regime:     strings.TrimSpace(p.Inception.Regime),
		Priority:   normalizeText(p.Inception.Priority),
		Mode:       normalizeText(p.Postshipment.TransportMode),
		Inspection: normalizeText(p.Customs.InspectionType),
	}
	containerType := normalizeText(p.Dispatch.ContainerType)

	if in.Regime == "" || in.Priority == "" || in.Mode == "" || containerType == "" {
		return ruleInputs{}, false
	}
	if needInspection && in.Inspection == "" {
		return ruleInputs{}, false
	}

	in.Cargo = classifyCargo(containerType)
	if in.Cargo == "" {
		return ruleInputs{}, false
	}
	return in, true
}

// pickInspection selects the per-inspection-type threshold by substring match
// on the normalized aforo text. ok is false for unrecognized inspection text.
func pickInspection(t inspectionThresholds, inspection string) (int, bool) {
	switch {
	case strings.Contains(inspection, "AUTOMATICO"):
		return t.Automatic, true
	case strings.Contains(inspection, "DOCUMENTAL"):
		return t.Documentary, true
	case strings.Contains(inspection, "FISICO"):
		return t.Physical, true
	default:
		return 0, false
	}
}

// ResolveSubmissionThreshold resolves the port-arrival-to-electronic-submission
// SLA. Nil means undetermined, which callers must distinguish from "compliant".
func ResolveSubmissionThreshold(p *entities.Process) *Threshold {
	in, ok := resolveInputs(p, false)
	if !ok {
		return nil
	}
	rule := findThresholdRule(submissionMatrix, in.Regime, in.Mode, in.Cargo)
	if rule == nil {
		return nil
	}
	if in.priority() {
		return newThreshold(rule.Priority)
	}
	return newThreshold(rule.Normal)
}

// ResolveSubmissionReleaseThreshold resolves the electronic-submission-to-
// authorized-release SLA, differentiated by inspection type.
func ResolveSubmissionReleaseThreshold(p *entities.Process) *Threshold {
	in, ok := resolveInputs(p, true)
	if !ok {
		return nil
	}
	rule := findInspectionRule(submissionReleaseMatrix, in.Regime, in.Mode, in.Cargo)
	if rule == nil {
		return nil
	}
	thresholds := rule.Normal
	if in.priority() {
		thresholds = rule.Priority
	}
	days, ok := pickInspection(thresholds, in.Inspection)
	if !ok {
		return nil
	}
	return newThreshold(days)
}

// ResolveReleaseThreshold resolves the port-arrival-to-authorized-release SLA,
// differentiated by inspection type. The -999 table rows resolve to nil.
func ResolveReleaseThreshold(p *entities.Process) *Threshold {
	in, ok := resolveInputs(p, true)
	if !ok {
		return nil
	}
	rule := findInspectionRule(releaseMatrix, in.Regime, in.Mode, in.Cargo)
	if rule == nil {
		return nil
	}
	thresholds := rule.Normal
	if in.priority() {
		thresholds = rule.Priority
	}
	days, ok := pickInspection(thresholds, in.Inspection)
	if !ok {
		return nil
	}
	return newThreshold(days)
}

// ResolveDeliveryThreshold resolves the authorized-release-to-warehouse-
// delivery SLA. Always a tolerance.
func ResolveDeliveryThreshold(p *entities.Process) *Threshold {
	in, ok := resolveInputs(p, false)
	if !ok {
		return nil
	}
	rule := findThresholdRule(deliveryMatrix, in.Regime, in.Mode, in.Cargo)
	if rule == nil {
		return nil
	}
	if in.priority() {
		return newThreshold(rule.Priority)
	}
	return newThreshold(rule.Normal)
}
