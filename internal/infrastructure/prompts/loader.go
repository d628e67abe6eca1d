package prompts

import (
	_ "embed"
)

//go:embed billing.txt
var BillingPrompt string
