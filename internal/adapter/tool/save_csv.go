package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"billing-agent/internal/application/port/output"
	"billing-agent/internal/domain/entity"
)

var _ output.ToolPort = (*SaveCSVTool)(nil)

// SaveCSVTool stores model-produced CSV text as a session artifact. The
// content is not validated.
type SaveCSVTool struct {
	store  output.ArtifactStore
	logger output.LoggerPort
}

func NewSaveCSVTool(store output.ArtifactStore, logger output.LoggerPort) *SaveCSVTool {
	return &SaveCSVTool{store: store, logger: logger}
}

func (t *SaveCSVTool) Name() entity.ToolName { return entity.ToolSaveCSV }
func (t *SaveCSVTool) Description() string {
	return "Saves the generated CSV string as a session artifact with content type text/csv. Pass the complete CSV text, including the header row, in 'csv_data'. The file is stored as 'extracted_charges.csv' unless 'filename' is given."
}
func (t *SaveCSVTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"csv_data": map[string]interface{}{
				"type":        "string",
				"description": "Complete CSV content to save",
			},
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Artifact name",
				"default":     entity.DefaultCSVFilename,
			},
		},
		"required": []string{"csv_data"},
	}
}

func (t *SaveCSVTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		CSVData  string `json:"csv_data"`
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if input.Filename == "" {
		input.Filename = entity.DefaultCSVFilename
	}

	session, ok := entity.SessionFromContext(ctx)
	if !ok {
		return "", fmt.Errorf("no session bound to tool call")
	}

	version, err := t.store.Save(ctx, session, input.Filename, entity.Artifact{
		Name:     input.Filename,
		MimeType: entity.MimeTypeCSV,
		Data:     []byte(input.CSVData),
	})
	if err != nil {
		return "", fmt.Errorf("save artifact %q: %w", input.Filename, err)
	}

	t.logger.Info("CSV artifact saved", "name", input.Filename, "version", version, "bytes", len(input.CSVData))
	return fmt.Sprintf("Successfully saved %s to artifacts.", input.Filename), nil
}
