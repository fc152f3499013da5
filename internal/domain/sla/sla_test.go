package sla

import (
	"testing"
	"time"

	"controlimport/internal/domain/entities"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return &t
}

// maritimeContainer is the regime-10 ocean-container profile used across the
// compliance scenarios.
func maritimeContainer() entities.Process {
	return entities.Process{
		Inception:    entities.Inception{Regime: "10", Priority: "NORMAL"},
		Postshipment: entities.Postshipment{TransportMode: "MARITIMO"},
		Dispatch:     entities.Dispatch{ContainerType: "CONTENEDOR"},
	}
}

func TestResolveSubmissionThreshold(t *testing.T) {
	t.Run("maritime container is exact lead time", func(t *testing.T) {
		p := maritimeContainer()
		th := ResolveSubmissionThreshold(&p)
		if th == nil {
			t.Fatal("expected a threshold")
		}
		if th.Kind != KindExactLeadTime || th.Days != -1 || th.LeadDays() != 1 {
			t.Fatalf("unexpected threshold %+v", th)
		}
	})

	t.Run("air loose cargo is tolerance", func(t *testing.T) {
		p := maritimeContainer()
		p.Postshipment.TransportMode = "AEREO"
		p.Dispatch.ContainerType = "CARGA SUELTA"
		th := ResolveSubmissionThreshold(&p)
		if th == nil || th.Kind != KindTolerance || th.Days != 1 {
			t.Fatalf("unexpected threshold %+v", th)
		}
	})

	t.Run("accents and case do not matter", func(t *testing.T) {
		p := maritimeContainer()
		p.Postshipment.TransportMode = "aéreo"
		p.Dispatch.ContainerType = "carga suelta"
		p.Inception.Priority = "prioridad"
		th := ResolveSubmissionThreshold(&p)
		if th == nil || th.Days != 1 {
			t.Fatalf("unexpected threshold %+v", th)
		}
	})

	t.Run("missing attribute resolves to nil", func(t *testing.T) {
		p := maritimeContainer()
		p.Dispatch.ContainerType = ""
		if th := ResolveSubmissionThreshold(&p); th != nil {
			t.Fatalf("expected nil, got %+v", th)
		}
	})

	t.Run("unclassifiable cargo resolves to nil", func(t *testing.T) {
		p := maritimeContainer()
		p.Dispatch.ContainerType = "PALLETS"
		if th := ResolveSubmissionThreshold(&p); th != nil {
			t.Fatalf("expected nil, got %+v", th)
		}
	})

	t.Run("unmatched regime resolves to nil", func(t *testing.T) {
		p := maritimeContainer()
		p.Inception.Regime = "99"
		if th := ResolveSubmissionThreshold(&p); th != nil {
			t.Fatalf("expected nil, got %+v", th)
		}
	})
}

func TestResolveReleaseThreshold(t *testing.T) {
	t.Run("not applicable cell resolves to nil", func(t *testing.T) {
		p := maritimeContainer()
		p.Inception.Regime = "20"
		p.Postshipment.TransportMode = "AEREO"
		p.Dispatch.ContainerType = "CARGA SUELTA"
		p.Customs.InspectionType = "AFORO AUTOMATICO"
		if th := ResolveReleaseThreshold(&p); th != nil {
			t.Fatalf("expected nil for n/a cell, got %+v", th)
		}
	})

	t.Run("documentary inspection on same row resolves", func(t *testing.T) {
		p := maritimeContainer()
		p.Inception.Regime = "20"
		p.Postshipment.TransportMode = "AEREO"
		p.Dispatch.ContainerType = "CARGA SUELTA"
		p.Customs.InspectionType = "AFORO DOCUMENTAL"
		th := ResolveReleaseThreshold(&p)
		if th == nil || th.Kind != KindTolerance || th.Days != 3 {
			t.Fatalf("unexpected threshold %+v", th)
		}
	})

	t.Run("unknown inspection resolves to nil", func(t *testing.T) {
		p := maritimeContainer()
		p.Customs.InspectionType = "ALEATORIO"
		if th := ResolveReleaseThreshold(&p); th != nil {
			t.Fatalf("expected nil, got %+v", th)
		}
	})

	t.Run("missing inspection resolves to nil", func(t *testing.T) {
		p := maritimeContainer()
		if th := ResolveReleaseThreshold(&p); th != nil {
			t.Fatalf("expected nil, got %+v", th)
		}
	})
}

func TestEvaluateSubmissionTiming(t *testing.T) {
	t.Run("exact lead time on target date is compliant", func(t *testing.T) {
		p := maritimeContainer()
		p.Postshipment.ActualPortArrivalDate = datePtr(2024, time.March, 1)    // Friday
		p.Customs.ElectronicSubmissionDate = datePtr(2024, time.February, 29) // Thursday
		res := EvaluateSubmissionTiming(&p)
		if res == nil {
			t.Fatal("expected a result")
		}
		if res.RuleKind != KindExactLeadTime {
			t.Fatalf("expected exact-lead-time, got %s", res.RuleKind)
		}
		if res.Late == nil || *res.Late {
			t.Fatalf("expected compliant, got %+v", res)
		}
		if res.TargetDate == nil || !res.TargetDate.Equal(*datePtr(2024, time.February, 29)) {
			t.Fatalf("unexpected target date %v", res.TargetDate)
		}
	})

	t.Run("exact lead time off target is late", func(t *testing.T) {
		p := maritimeContainer()
		p.Postshipment.ActualPortArrivalDate = datePtr(2024, time.March, 1)
		p.Customs.ElectronicSubmissionDate = datePtr(2024, time.March, 4) // Monday after
		res := EvaluateSubmissionTiming(&p)
		if res == nil || res.Late == nil || !*res.Late {
			t.Fatalf("expected late, got %+v", res)
		}
	})

	t.Run("tolerance overage", func(t *testing.T) {
		p := maritimeContainer()
		p.Postshipment.TransportMode = "AEREO"
		p.Dispatch.ContainerType = "CARGA SUELTA"
		p.Postshipment.ActualPortArrivalDate = datePtr(2024, time.March, 4) // Monday
		p.Customs.ElectronicSubmissionDate = datePtr(2024, time.March, 6)   // Wednesday, 2 business days
		res := EvaluateSubmissionTiming(&p)
		if res == nil || res.RuleKind != KindTolerance {
			t.Fatalf("expected tolerance result, got %+v", res)
		}
		if res.Late == nil || !*res.Late || res.Overage == nil || *res.Overage != 1 {
			t.Fatalf("expected late by 1, got %+v", res)
		}
	})

	t.Run("missing dates yield nil", func(t *testing.T) {
		p := maritimeContainer()
		p.Postshipment.ActualPortArrivalDate = datePtr(2024, time.March, 1)
		if res := EvaluateSubmissionTiming(&p); res != nil {
			t.Fatalf("expected nil, got %+v", res)
		}
	})
}

func TestEvaluateReleaseTiming(t *testing.T) {
	t.Run("release after arrival counts zero days", func(t *testing.T) {
		p := maritimeContainer()
		p.Customs.InspectionType = "AFORO DOCUMENTAL"
		p.Postshipment.ActualPortArrivalDate = datePtr(2024, time.March, 1)
		p.Customs.AuthorizedReleaseDate = datePtr(2024, time.March, 6)
		res := EvaluateReleaseTiming(&p)
		if res == nil {
			t.Fatal("expected a result")
		}
		// Day count runs from release to ETA, the reporting convention.
		if res.ActualBusinessDays == nil || *res.ActualBusinessDays != 0 {
			t.Fatalf("expected 0 business days, got %+v", res.ActualBusinessDays)
		}
		if res.Late == nil || *res.Late {
			t.Fatalf("expected compliant, got %+v", res)
		}
	})

	t.Run("unresolvable rule yields nil", func(t *testing.T) {
		p := maritimeContainer()
		p.Postshipment.ActualPortArrivalDate = datePtr(2024, time.March, 1)
		p.Customs.AuthorizedReleaseDate = datePtr(2024, time.March, 6)
		if res := EvaluateReleaseTiming(&p); res != nil {
			t.Fatalf("expected nil without inspection type, got %+v", res)
		}
	})
}

func TestEvaluateDeliveryTiming(t *testing.T) {
	t.Run("resolved rule without dates reports threshold only", func(t *testing.T) {
		p := maritimeContainer()
		res := EvaluateDeliveryTiming(&p)
		if res == nil {
			t.Fatal("expected a threshold-only result")
		}
		if res.Threshold != 1 || res.Late != nil || res.ActualBusinessDays != nil {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("delivery past tolerance is late", func(t *testing.T) {
		p := maritimeContainer()
		p.Customs.AuthorizedReleaseDate = datePtr(2024, time.March, 4)      // Monday
		p.Dispatch.ActualWarehouseDeliveryDate = datePtr(2024, time.March, 6) // Wednesday
		res := EvaluateDeliveryTiming(&p)
		if res == nil || res.Late == nil || !*res.Late || *res.Overage != 1 {
			t.Fatalf("expected late by 1, got %+v", res)
		}
	})

	t.Run("unresolvable profile yields nil", func(t *testing.T) {
		p := entities.Process{}
		if res := EvaluateDeliveryTiming(&p); res != nil {
			t.Fatalf("expected nil, got %+v", res)
		}
	})
}

func TestEvaluateSubmissionToRelease(t *testing.T) {
	p := maritimeContainer()
	p.Customs.InspectionType = "AFORO DOCUMENTAL"
	p.Customs.ElectronicSubmissionDate = datePtr(2024, time.March, 4) // Monday
	p.Customs.AuthorizedReleaseDate = datePtr(2024, time.March, 6)    // Wednesday

	res := EvaluateSubmissionToRelease(&p)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Threshold != 2 || res.ActualBusinessDays == nil || *res.ActualBusinessDays != 2 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Late == nil || *res.Late {
		t.Fatalf("expected compliant at the threshold, got %+v", res)
	}
}

func TestEvaluateTransitMetrics(t *testing.T) {
	p := maritimeContainer()
	p.Customs.InspectionType = "AFORO DOCUMENTAL"
	p.Postshipment.ActualPortArrivalDate = datePtr(2024, time.March, 1)
	p.Customs.ElectronicSubmissionDate = datePtr(2024, time.February, 29)
	p.Customs.AuthorizedReleaseDate = datePtr(2024, time.March, 5)

	m := EvaluateTransitMetrics(&p)
	if m.SubmissionTiming == nil || m.SubmissionToRelease == nil || m.ReleaseTiming == nil {
		t.Fatalf("expected all measurable verdicts, got %+v", m)
	}
	if m.DeliveryTiming == nil || m.DeliveryTiming.Late != nil {
		t.Fatalf("expected threshold-only delivery verdict, got %+v", m.DeliveryTiming)
	}
}
