package tool

import (
	"context"
	"fmt"
	"strings"

	"billing-agent/internal/application/port/output"
	"billing-agent/internal/domain/entity"
)

const (
	MsgNoPDFFound    = "Error: No PDF found. Please upload the bill."
	MsgPDFUnreadable = "Error: Could not read PDF data."
)

var _ output.ToolPort = (*PDFTextTool)(nil)

// PDFTextTool finds the uploaded bill among the session artifacts and
// returns its text.
type PDFTextTool struct {
	store     output.ArtifactStore
	extractor output.PDFTextExtractor
	logger    output.LoggerPort
}

func NewPDFTextTool(store output.ArtifactStore, extractor output.PDFTextExtractor, logger output.LoggerPort) *PDFTextTool {
	return &PDFTextTool{store: store, extractor: extractor, logger: logger}
}

func (t *PDFTextTool) Name() entity.ToolName { return entity.ToolGetPDFText }
func (t *PDFTextTool) Description() string {
	return "Finds a PDF in the session and extracts its text content. Call this first whenever the user has uploaded a bill. Returns the plain text of every page joined by newlines, or an error message starting with 'Error:' when no readable PDF is available."
}
func (t *PDFTextTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (t *PDFTextTool) Execute(ctx context.Context, args string) (string, error) {
	session, ok := entity.SessionFromContext(ctx)
	if !ok {
		return "", fmt.Errorf("no session bound to tool call")
	}

	infos, err := t.store.List(ctx, session)
	if err != nil {
		return "", fmt.Errorf("list artifacts: %w", err)
	}

	candidate, ok := findPDF(infos)
	if !ok {
		t.logger.Info("No PDF artifact in session", "session", session.ID, "artifacts", len(infos))
		return MsgNoPDFFound, nil
	}

	artifact, err := t.store.Load(ctx, session, candidate.Name)
	if err != nil {
		return "", fmt.Errorf("load artifact %q: %w", candidate.Name, err)
	}
	if len(artifact.Data) == 0 {
		t.logger.Warn("PDF artifact has no data", "name", candidate.Name)
		return MsgPDFUnreadable, nil
	}

	t.logger.Info("Extracting PDF text", "name", candidate.Name, "version", artifact.Version, "bytes", len(artifact.Data))
	return t.extractor.ExtractText(ctx, artifact.Data)
}

// findPDF picks the first artifact that looks like a PDF by name or by
// declared content type.
func findPDF(infos []entity.ArtifactInfo) (entity.ArtifactInfo, bool) {
	for _, info := range infos {
		if strings.Contains(strings.ToLower(info.Name), "pdf") {
			return info, true
		}
		switch info.MimeType {
		case entity.MimeTypePDF, entity.MimeTypeOctetStream:
			return info, true
		}
	}
	return entity.ArtifactInfo{}, false
}
