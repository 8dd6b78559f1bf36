package domain

// Tier represents a patron's membership class
type Tier string

const (
	TierStudent Tier = "STUDENT"
	TierFaculty Tier = "FACULTY"
	TierGuest   Tier = "GUEST"
)

// MembershipPolicy holds the circulation terms for one membership tier
type MembershipPolicy struct {
	LoanPeriodDays int     `json:"loan_period_days"`
	MaxActiveLoans int     `json:"max_active_loans"`
	FinePerDay     float64 `json:"fine_per_day"` // LKR per overdue day
}

// PolicyTable maps membership tiers to their circulation terms.
// The table is open: new tiers can be registered without touching the
// fine calculator or the circulation service.
type PolicyTable struct {
	policies map[Tier]MembershipPolicy
}

// DefaultPolicies returns the standard tier table
func DefaultPolicies() *PolicyTable {
	return &PolicyTable{
		policies: map[Tier]MembershipPolicy{
			TierStudent: {LoanPeriodDays: 14, MaxActiveLoans: 5, FinePerDay: 50},
			TierFaculty: {LoanPeriodDays: 30, MaxActiveLoans: 10, FinePerDay: 20},
			TierGuest:   {LoanPeriodDays: 7, MaxActiveLoans: 2, FinePerDay: 100},
		},
	}
}

// Lookup returns the policy for a tier
func (t *PolicyTable) Lookup(tier Tier) (MembershipPolicy, error) {
	policy, ok := t.policies[tier]
	if !ok {
		return MembershipPolicy{}, ErrUnknownTier
	}
	return policy, nil
}

// Register adds or replaces the policy for a tier
func (t *PolicyTable) Register(tier Tier, policy MembershipPolicy) {
	t.policies[tier] = policy
}

// Tiers returns all registered tiers
func (t *PolicyTable) Tiers() []Tier {
	tiers := make([]Tier, 0, len(t.policies))
	for tier := range t.policies {
		tiers = append(tiers, tier)
	}
	return tiers
}

// ParseTier validates a tier string coming from the request layer against
// the registered tiers
func (t *PolicyTable) ParseTier(s string) (Tier, error) {
	tier := Tier(s)
	if _, ok := t.policies[tier]; !ok {
		return "", ErrUnknownTier
	}
	return tier, nil
}
