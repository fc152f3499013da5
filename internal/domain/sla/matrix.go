// Package sla holds the static service-level decision matrices for customs
// timing and the evaluators that turn stage dates into compliance verdicts.
//
// The matrices are kept as plain data rows mirroring the business tables
// row for row, so that every rule stays auditable and tests can enumerate
// them. A lookup key is (regime membership, transport mode, cargo class);
// two of the tables are further keyed by customs inspection type.
package sla

// CargoClass is the normalized cargo-type bucket used as a matrix key.
type CargoClass string

const (
	CargoLoose     CargoClass = "CARGA SUELTA"
	CargoContainer CargoClass = "CONTENEDOR"
)

// notApplicable is the sentinel the business tables use for combinations that
// carry no SLA. It never leaks out of resolvers: the typed Threshold boundary
// maps it to nil.
const notApplicable = -999

// inspectionThresholds carries one threshold per customs inspection type
// (aforo automatico / documental / fisico).
type inspectionThresholds struct {
	Automatic   int
	Documentary int
	Physical    int
}

// thresholdRule rows key a single day-count per priority level. Negative
// values are exact-lead-time rules (the event must land exactly n business
// days before the anchor), positive values are tolerances.
type thresholdRule struct {
	Regimes  []string
	Mode     string
	Cargo    CargoClass
	Normal   int
	Priority int
}

// inspectionRule rows differentiate the threshold by inspection type on top
// of the priority level.
type inspectionRule struct {
	Regimes  []string
	Mode     string
	Cargo    CargoClass
	Normal   inspectionThresholds
	Priority inspectionThresholds
}

// submissionMatrix governs port arrival (ETA) vs. electronic submission.
var submissionMatrix = []thresholdRule{
	{Regimes: []string{"10"}, Mode: "AEREO", Cargo: CargoLoose, Normal: 1, Priority: 1},
	{Regimes: []string{"10"}, Mode: "AEREO COURIER - CONSUMO", Cargo: CargoLoose, Normal: 2, Priority: 1},
	{Regimes: []string{"20", "21", "31"}, Mode: "AEREO", Cargo: CargoLoose, Normal: 2, Priority: 2},
	{Regimes: []string{"10", "20", "21", "31"}, Mode: "MARITIMO", Cargo: CargoLoose, Normal: -1, Priority: -1},
	{Regimes: []string{"10", "20", "21", "31"}, Mode: "MARITIMO", Cargo: CargoContainer, Normal: -1, Priority: -1},
	{Regimes: []string{"10"}, Mode: "TERRESTRE", Cargo: CargoLoose, Normal: 2, Priority: 2},
	{Regimes: []string{"20", "21", "31"}, Mode: "TERRESTRE", Cargo: CargoLoose, Normal: 3, Priority: 2},
}

// submissionReleaseMatrix governs electronic submission vs. authorized
// release, by inspection type.
var submissionReleaseMatrix = []inspectionRule{
	{
		Regimes: []string{"10"}, Mode: "AEREO", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: 0, Documentary: 1, Physical: 3},
		Priority: inspectionThresholds{Automatic: 0, Documentary: 1, Physical: 1},
	},
	{
		Regimes: []string{"10"}, Mode: "MARITIMO", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: 0, Documentary: 3, Physical: 3},
		Priority: inspectionThresholds{Automatic: 0, Documentary: 2, Physical: 3},
	},
	{
		Regimes: []string{"10"}, Mode: "MARITIMO", Cargo: CargoContainer,
		Normal:   inspectionThresholds{Automatic: 0, Documentary: 2, Physical: 2},
		Priority: inspectionThresholds{Automatic: 0, Documentary: 2, Physical: 2},
	},
	{
		Regimes: []string{"10"}, Mode: "TERRESTRE", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: 0, Documentary: 1, Physical: 1},
		Priority: inspectionThresholds{Automatic: 0, Documentary: 1, Physical: 1},
	},
}

// releaseMatrix governs port arrival (ETA) vs. authorized release, by
// inspection type. -999 rows are combinations with no applicable SLA.
var releaseMatrix = []inspectionRule{
	{
		Regimes: []string{"10"}, Mode: "AEREO", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: 1, Documentary: 2, Physical: 4},
		Priority: inspectionThresholds{Automatic: 1, Documentary: 2, Physical: 2},
	},
	{
		Regimes: []string{"10"}, Mode: "AEREO COURIER - CONSUMO", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: 2, Documentary: 3, Physical: 4},
		Priority: inspectionThresholds{Automatic: 1, Documentary: 2, Physical: 2},
	},
	{
		Regimes: []string{"20", "21", "31"}, Mode: "AEREO", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: notApplicable, Documentary: 3, Physical: 4},
		Priority: inspectionThresholds{Automatic: notApplicable, Documentary: 3, Physical: 3},
	},
	{
		Regimes: []string{"10"}, Mode: "MARITIMO", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: -1, Documentary: 3, Physical: 3},
		Priority: inspectionThresholds{Automatic: -1, Documentary: 2, Physical: 3},
	},
	{
		Regimes: []string{"20", "21", "31"}, Mode: "MARITIMO", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: notApplicable, Documentary: 3, Physical: 3},
		Priority: inspectionThresholds{Automatic: notApplicable, Documentary: 2, Physical: 3},
	},
	{
		Regimes: []string{"10"}, Mode: "MARITIMO", Cargo: CargoContainer,
		Normal:   inspectionThresholds{Automatic: -1, Documentary: 2, Physical: 2},
		Priority: inspectionThresholds{Automatic: -1, Documentary: 2, Physical: 2},
	},
	{
		Regimes: []string{"20", "21", "31"}, Mode: "MARITIMO", Cargo: CargoContainer,
		Normal:   inspectionThresholds{Automatic: notApplicable, Documentary: 2, Physical: 2},
		Priority: inspectionThresholds{Automatic: notApplicable, Documentary: 2, Physical: 2},
	},
	{
		Regimes: []string{"10"}, Mode: "TERRESTRE", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: 2, Documentary: 3, Physical: 3},
		Priority: inspectionThresholds{Automatic: 2, Documentary: 3, Physical: 3},
	},
	{
		Regimes: []string{"20", "21", "31"}, Mode: "TERRESTRE", Cargo: CargoLoose,
		Normal:   inspectionThresholds{Automatic: notApplicable, Documentary: 4, Physical: 4},
		Priority: inspectionThresholds{Automatic: notApplicable, Documentary: 3, Physical: 3},
	},
}

// deliveryMatrix governs authorized release vs. actual warehouse delivery.
// All rules here are tolerances.
var deliveryMatrix = []thresholdRule{
	{Regimes: []string{"10"}, Mode: "AEREO", Cargo: CargoLoose, Normal: 0, Priority: 0},
	{Regimes: []string{"10"}, Mode: "AEREO COURIER - CONSUMO", Cargo: CargoLoose, Normal: 0, Priority: 0},
	{Regimes: []string{"20", "21", "31"}, Mode: "AEREO", Cargo: CargoLoose, Normal: 0, Priority: 0},
	{Regimes: []string{"10", "20", "21", "31"}, Mode: "MARITIMO", Cargo: CargoLoose, Normal: 1, Priority: 1},
	{Regimes: []string{"10", "20", "21", "31"}, Mode: "MARITIMO", Cargo: CargoContainer, Normal: 1, Priority: 1},
	{Regimes: []string{"10", "20", "21", "31"}, Mode: "TERRESTRE", Cargo: CargoLoose, Normal: 1, Priority: 1},
}

func findThresholdRule(rules []thresholdRule, regime, mode string, cargo CargoClass) *thresholdRule {
	for i := range rules {
		r := &rules[i]
		if r.Mode == mode && r.Cargo == cargo && containsString(r.Regimes, regime) {
			return r
		}
	}
	return nil
}

func findInspectionRule(rules []inspectionRule, regime, mode string, cargo CargoClass) *inspectionRule {
	for i := range rules {
		r := &rules[i]
		if r.Mode == mode && r.Cargo == cargo && containsString(r.Regimes, regime) {
			return r
		}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
