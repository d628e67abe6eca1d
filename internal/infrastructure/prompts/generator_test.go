package prompts

import (
	"strings"
	"testing"

	"billing-agent/internal/domain/entity"
)

func TestGenerateBillingPrompt(t *testing.T) {
	data := NewBillingPromptData(
		entity.VoiceLines{V1: "Dad", V2: "Mom", V3: "Kid", V4: "Tablet"},
		entity.DefaultChargeRules,
	)

	result, err := GenerateBillingPrompt(BillingPrompt, data)
	if err != nil {
		t.Fatalf("GenerateBillingPrompt failed: %v", err)
	}

	if !strings.Contains(result, `["Dad", "Mom", "Kid", "Tablet"]`) {
		t.Error("Result should list the configured voice lines")
	}

	for _, want := range []string{
		"'Kickback discount shown above' -> charge = 15",
		"'Includes $5.00 AutoPay and $10.00 Kickback' -> charge = 15",
		"'Use less than 2.0GB...' -> charge = 25",
		"'Includes $5.00 AutoPay' -> charge = 5",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Result should contain rule %q", want)
		}
	}

	if !strings.Contains(result, "'get_pdf_text_from_artifact' tool") {
		t.Error("Result should name the read tool")
	}

	if !strings.Contains(result, "'save_csv_artifact' tool to save the final 'extracted_charges.csv'") {
		t.Error("Result should name the save tool and default filename")
	}

	t.Logf("Generated prompt:\n%s", result)
}

func TestGenerateBillingPromptRulesKeepOrder(t *testing.T) {
	result, err := GenerateBillingPrompt(BillingPrompt, NewBillingPromptData(entity.VoiceLines{}, entity.DefaultChargeRules))
	if err != nil {
		t.Fatalf("GenerateBillingPrompt failed: %v", err)
	}

	combined := strings.Index(result, "AutoPay and $10.00 Kickback")
	plain := strings.Index(result, "'Includes $5.00 AutoPay' ->")
	if combined < 0 || plain < 0 || combined > plain {
		t.Error("Combined AutoPay rule should be listed before the plain one")
	}
}

func TestGenerateBillingPromptEmptyVoiceLines(t *testing.T) {
	result, err := GenerateBillingPrompt(BillingPrompt, NewBillingPromptData(entity.VoiceLines{}, nil))
	if err != nil {
		t.Fatalf("GenerateBillingPrompt failed: %v", err)
	}

	if !strings.Contains(result, `["", "", "", ""]`) {
		t.Error("Unset voice lines should be embedded verbatim as empty names")
	}
}

func TestGenerateBillingPromptInvalidTemplate(t *testing.T) {
	_, err := GenerateBillingPrompt(`Test {{.InvalidField}}`, BillingPromptData{})
	if err == nil {
		t.Error("Expected error for invalid template, got nil")
	}
}
