// Package entitlement exposes the read-only subscription tier table.
// Billing itself (checkout, webhooks, status) lives outside this
// service; only the quota and spread allow-list each tier grants is
// visible here.
package entitlement

// Tier identifies a subscription level.
type Tier string

const (
	TierFree Tier = "free"
	TierPlus Tier = "plus"
	TierPro  Tier = "pro"
)

// UnlimitedReadings marks a tier with no monthly reading cap.
const UnlimitedReadings = -1

// Config is what one tier grants.
type Config struct {
	Tier            Tier     `json:"tier"`
	Name            string   `json:"name"`
	MonthlyReadings int      `json:"monthly_readings"`
	// Spreads is the allow-list of spread ids. Nil means all spreads.
	Spreads      []string `json:"spreads,omitempty"`
	CloudJournal bool     `json:"cloud_journal"`
}

// tiers mirrors the product subscription table. Order is display order.
var tiers = []Config{
	{
		Tier:            TierFree,
		Name:            "Seeker",
		MonthlyReadings: 5,
		Spreads:         []string{"single", "three-card", "five-card"},
	},
	{
		Tier:            TierPlus,
		Name:            "Enlightened",
		MonthlyReadings: 50,
		CloudJournal:    true,
	},
	{
		Tier:            TierPro,
		Name:            "Mystic",
		MonthlyReadings: UnlimitedReadings,
		CloudJournal:    true,
	},
}

// Tiers returns every tier configuration in display order.
func Tiers() []Config {
	return tiers
}

// Lookup resolves a tier name. Unknown names resolve to the free tier
// so a stale or garbled client claim degrades rather than fails.
func Lookup(t Tier) Config {
	for _, cfg := range tiers {
		if cfg.Tier == t {
			return cfg
		}
	}
	return tiers[0]
}

// CanUseSpread reports whether the tier's allow-list admits the spread.
func (c Config) CanUseSpread(spreadID string) bool {
	if c.Spreads == nil {
		return true
	}
	for _, id := range c.Spreads {
		if id == spreadID {
			return true
		}
	}
	return false
}
