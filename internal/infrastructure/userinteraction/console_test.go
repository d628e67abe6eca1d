package userinteraction

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatToolArguments_SaveCSV(t *testing.T) {
	assert.Equal(t, "File: extracted_charges.csv (2 rows)",
		formatToolArguments("save_csv_artifact", `{"csv_data":"line,charge\nv1,15\n"}`))
	assert.Equal(t, "File: march.csv (0 rows)",
		formatToolArguments("save_csv_artifact", `{"csv_data":"","filename":"march.csv"}`))
	assert.Equal(t, "", formatToolArguments("save_csv_artifact", `not json`))
	assert.Equal(t, "", formatToolArguments("get_pdf_text_from_artifact", `{}`))
}

func TestFormatToolResult(t *testing.T) {
	assert.Equal(t, "Extracted 3 characters, 2 lines", formatToolResult("get_pdf_text_from_artifact", "A\nB"))
	assert.Equal(t, "Successfully saved x.csv to artifacts.", formatToolResult("save_csv_artifact", "Successfully saved x.csv to artifacts."))
}

func TestConsoleUserInteraction_WritesToWriter(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	ui := NewWriterUserInteraction(&buf)
	ctx := context.Background()

	ui.ShowIteration(ctx, 1, 10)
	ui.ShowToolStart(ctx, "get_pdf_text_from_artifact", "{}")
	ui.ShowToolResult(ctx, "get_pdf_text_from_artifact", "Error: No PDF found. Please upload the bill.", true)

	out := buf.String()
	assert.Contains(t, out, "Iteration 1/10")
	assert.Contains(t, out, "Reading PDF bill")
	assert.Contains(t, out, "❌ Error: No PDF found. Please upload the bill.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	assert.Equal(t, "a...", truncate("aéé", 2))
	assert.Equal(t, "Кон...", truncate("Конец счёта", 7))
}
