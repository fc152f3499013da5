package response

import (
	"controlimport/internal/domain/entities"
	"controlimport/internal/domain/sla"
	"controlimport/internal/usecase"
)

// ProcessResponse is the stored process enriched with the SLA timing
// verdicts, which are computed on the read path and never persisted.
type ProcessResponse struct {
	entities.Process
	TransitMetrics sla.TransitMetrics `json:"transit_metrics"`
}

func FromProcess(p entities.Process) ProcessResponse {
	return ProcessResponse{
		Process:        p,
		TransitMetrics: sla.EvaluateTransitMetrics(&p),
	}
}

func FromProcessList(processes []entities.Process) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(processes))
	for _, p := range processes {
		out = append(out, FromProcess(p))
	}
	return out
}

// CodePreviewResponse carries the base code plus the extension-suffixed
// variant.
type CodePreviewResponse struct {
	CodeBase string `json:"code_base"`
	CodeFull string `json:"code_full"`
}

func FromCodePreview(p usecase.CodePreview) CodePreviewResponse {
	return CodePreviewResponse{CodeBase: p.Base, CodeFull: p.Full}
}

// IngestResponse reports a bulk load.
type IngestResponse struct {
	OK      bool     `json:"ok"`
	Created int      `json:"created"`
	IDs     []string `json:"ids"`
}

func FromIngestResult(r usecase.IngestResult) IngestResponse {
	return IngestResponse{OK: true, Created: r.Created, IDs: r.IDs}
}
