package sla

import (
	"time"

	"controlimport/internal/domain/dates"
	"controlimport/internal/domain/entities"
)

// TimingResult is one compliance verdict for a stage-to-stage transition.
// Fields are pointers because a resolved rule with not-yet-measurable dates
// (delivery timing) reports the threshold alone, with all day fields nil —
// "not yet measurable" is distinct from "not applicable" (a nil result).
type TimingResult struct {
	Threshold          int           `json:"threshold"`
	RuleKind           ThresholdKind `json:"rule_kind"`
	TargetDate         *time.Time    `json:"target_date,omitempty"`
	ActualBusinessDays *int          `json:"actual_business_days"`
	Late               *bool         `json:"late"`
	Overage            *int          `json:"overage"`
}

func toleranceResult(threshold, actual int) *TimingResult {
	late := actual > threshold
	overage := 0
	if late {
		overage = actual - threshold
	}
	return &TimingResult{
		Threshold:          threshold,
		RuleKind:           KindTolerance,
		ActualBusinessDays: &actual,
		Late:               &late,
		Overage:            &overage,
	}
}

func exactLeadResult(t *Threshold, anchor, event time.Time, actual int) *TimingResult {
	target := dates.SubtractBusinessDays(anchor, t.LeadDays())
	late := !event.Equal(target)
	return &TimingResult{
		Threshold:          t.Days,
		RuleKind:           KindExactLeadTime,
		TargetDate:         &target,
		ActualBusinessDays: &actual,
		Late:               &late,
	}
}

// EvaluateSubmissionTiming scores the port-arrival vs. electronic-submission
// transition. Tolerance rules compare the ETA-to-submission business-day gap
// against the threshold; exact-lead-time rules demand the submission to land
// exactly n business days before arrival, flagging earlier and later alike.
func EvaluateSubmissionTiming(p *entities.Process) *TimingResult {
	if p.Postshipment.ActualPortArrivalDate == nil || p.Customs.ElectronicSubmissionDate == nil {
		return nil
	}
	threshold := ResolveSubmissionThreshold(p)
	if threshold == nil {
		return nil
	}

	eta := dates.Noon(*p.Postshipment.ActualPortArrivalDate)
	submission := dates.Noon(*p.Customs.ElectronicSubmissionDate)
	actual := dates.BusinessDays(eta, submission)

	switch threshold.Kind {
	case KindTolerance:
		if threshold.Days == 0 {
			// The submission matrix never carries a zero tolerance; treat
			// one as unresolvable rather than inventing a meaning for it.
			return nil
		}
		return toleranceResult(threshold.Days, actual)
	case KindExactLeadTime:
		return exactLeadResult(threshold, eta, submission, actual)
	default:
		return nil
	}
}

// EvaluateReleaseTiming scores the port-arrival vs. authorized-release
// transition with the same two-branch logic. The business-day gap is counted
// from release to ETA, the direction the reporting side expects.
func EvaluateReleaseTiming(p *entities.Process) *TimingResult {
	if p.Postshipment.ActualPortArrivalDate == nil || p.Customs.AuthorizedReleaseDate == nil {
		return nil
	}
	threshold := ResolveReleaseThreshold(p)
	if threshold == nil {
		return nil
	}

	eta := dates.Noon(*p.Postshipment.ActualPortArrivalDate)
	release := dates.Noon(*p.Customs.AuthorizedReleaseDate)
	actual := dates.BusinessDays(release, eta)

	switch threshold.Kind {
	case KindTolerance:
		return toleranceResult(threshold.Days, actual)
	case KindExactLeadTime:
		return exactLeadResult(threshold, eta, release, actual)
	default:
		return nil
	}
}

// EvaluateDeliveryTiming scores the authorized-release vs. warehouse-delivery
// transition. Tolerance only. A resolved rule with either date missing still
// yields a result carrying the threshold, with the day fields nil.
func EvaluateDeliveryTiming(p *entities.Process) *TimingResult {
	threshold := ResolveDeliveryThreshold(p)
	if threshold == nil {
		return nil
	}

	release := p.Customs.AuthorizedReleaseDate
	delivery := p.Dispatch.ActualWarehouseDeliveryDate
	if release == nil || delivery == nil {
		return &TimingResult{Threshold: threshold.Days, RuleKind: KindTolerance}
	}

	actual := dates.BusinessDays(*release, *delivery)
	return toleranceResult(threshold.Days, actual)
}

// EvaluateSubmissionToRelease scores the electronic-submission vs.
// authorized-release transition against the inspection-keyed matrix.
// Tolerance only.
func EvaluateSubmissionToRelease(p *entities.Process) *TimingResult {
	if p.Customs.ElectronicSubmissionDate == nil || p.Customs.AuthorizedReleaseDate == nil {
		return nil
	}
	threshold := ResolveSubmissionReleaseThreshold(p)
	if threshold == nil {
		return nil
	}

	actual := dates.BusinessDays(*p.Customs.ElectronicSubmissionDate, *p.Customs.AuthorizedReleaseDate)
	return toleranceResult(threshold.Days, actual)
}

// TransitMetrics bundles the four verdicts for read-path enrichment.
type TransitMetrics struct {
	SubmissionTiming    *TimingResult `json:"submission_timing"`
	SubmissionToRelease *TimingResult `json:"submission_to_release"`
	ReleaseTiming       *TimingResult `json:"release_timing"`
	DeliveryTiming      *TimingResult `json:"delivery_timing"`
}

// EvaluateTransitMetrics runs all four evaluators over one process.
func EvaluateTransitMetrics(p *entities.Process) TransitMetrics {
	return TransitMetrics{
		SubmissionTiming:    EvaluateSubmissionTiming(p),
		SubmissionToRelease: EvaluateSubmissionToRelease(p),
		ReleaseTiming:       EvaluateReleaseTiming(p),
		DeliveryTiming:      EvaluateDeliveryTiming(p),
	}
}
