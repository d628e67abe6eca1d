package entity

// VoiceLines maps the line identifiers v1..v4 to the names the operator
// configured. Empty names are kept as is.
type VoiceLines struct {
	V1 string
	V2 string
	V3 string
	V4 string
}

func (v VoiceLines) Names() []string {
	return []string{v.V1, v.V2, v.V3, v.V4}
}

// ChargeRule assigns a charge amount to a bill line containing Pattern.
type ChargeRule struct {
	Pattern string
	Amount  int
}

// DefaultChargeRules is ordered: the longer AutoPay pattern must be checked
// before the plain AutoPay one.
var DefaultChargeRules = []ChargeRule{
	{Pattern: "Kickback discount shown above", Amount: 15},
	{Pattern: "Includes $5.00 AutoPay and $10.00 Kickback", Amount: 15},
	{Pattern: "Use less than 2.0GB...", Amount: 25},
	{Pattern: "Includes $5.00 AutoPay", Amount: 5},
}
