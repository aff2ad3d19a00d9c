package landing

import (
	"encoding/json"
	"fmt"
)

// BillingPeriod selects which price of each plan is displayed.
type BillingPeriod int

const (
	Monthly BillingPeriod = iota
	Yearly
)

func (p BillingPeriod) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("BillingPeriod(%d)", int(p))
	}
}

func (p BillingPeriod) MarshalText() ([]byte, error) {
	switch p {
	case Monthly, Yearly:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("unknown billing period %d", int(p))
	}
}

func (p *BillingPeriod) UnmarshalText(text []byte) error {
	switch string(text) {
	case "monthly":
		*p = Monthly
	case "yearly":
		*p = Yearly
	default:
		return fmt.Errorf("unknown billing period %q", text)
	}
	return nil
}

// PricingToggle is the page-wide monthly/yearly switch. The zero value is
// monthly.
type PricingToggle struct {
	period BillingPeriod
}

func (t *PricingToggle) Toggle() {
	if t.period == Yearly {
		t.period = Monthly
		return
	}
	t.period = Yearly
}

func (t PricingToggle) Period() BillingPeriod {
	return t.period
}

func (t PricingToggle) IsYearly() bool {
	return t.period == Yearly
}

// DisplayPrice is the price shown for plan under the current period.
func (t PricingToggle) DisplayPrice(plan Plan) int {
	if t.IsYearly() {
		return plan.PriceYearly
	}
	return plan.PriceMonthly
}

// PeriodUnit is the per-unit suffix shown after the price.
func (t PricingToggle) PeriodUnit() string {
	if t.IsYearly() {
		return "year"
	}
	return "month"
}

// Savings reports the yearly saving for plan; ok is false while monthly
// billing is shown.
func (t PricingToggle) Savings(plan Plan) (amount int, ok bool) {
	if !t.IsYearly() {
		return 0, false
	}
	return YearlySavings(plan), true
}

// YearlySavings is twelve monthly payments minus the yearly price. Always
// derived from the plan, never stored.
func YearlySavings(plan Plan) int {
	return plan.PriceMonthly*12 - plan.PriceYearly
}

func (t PricingToggle) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.period)
}

func (t *PricingToggle) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.period)
}
