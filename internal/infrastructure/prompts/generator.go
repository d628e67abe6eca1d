package prompts

import (
	"bytes"
	"text/template"

	"billing-agent/internal/domain/entity"
)

type BillingPromptData struct {
	VoiceLines []string
	Rules      []entity.ChargeRule
	ReadTool   string
	SaveTool   string
	Filename   string
}

func NewBillingPromptData(lines entity.VoiceLines, rules []entity.ChargeRule) BillingPromptData {
	return BillingPromptData{
		VoiceLines: lines.Names(),
		Rules:      rules,
		ReadTool:   entity.ToolGetPDFText.String(),
		SaveTool:   entity.ToolSaveCSV.String(),
		Filename:   entity.DefaultCSVFilename,
	}
}

// GenerateBillingPrompt renders the instruction given to the model once at
// startup.
func GenerateBillingPrompt(baseTemplate string, data BillingPromptData) (string, error) {
	tmpl, err := template.New("billing").Option("missingkey=error").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
