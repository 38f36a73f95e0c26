package domain

// Unlimited marks a quota with no cap, for both job credits and talent
// access days.
const Unlimited = -1

type PlanTier string

const (
	PlanFree         PlanTier = "FREE"
	PlanLite         PlanTier = "LITE"
	PlanProfessional PlanTier = "PROFESSIONAL"
	PlanEnterprise   PlanTier = "ENTERPRISE"
)

func (t PlanTier) Valid() bool {
	switch t {
	case PlanFree, PlanLite, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// Plan is one row of the fixed pricing table. Not user-editable.
type Plan struct {
	Tier             PlanTier `json:"tier"`
	Name             string   `json:"name"`
	Price            int      `json:"price"` // monthly, USD
	JobLimit         int      `json:"job_limit"`
	TalentAccessDays int      `json:"talent_access_days"`
	Features         []string `json:"features"`
}

var plans = map[PlanTier]Plan{
	PlanFree: {
		Tier:             PlanFree,
		Name:             "Free Starter",
		Price:            0,
		JobLimit:         1,
		TalentAccessDays: 7,
		Features:         []string{"1 Active Job Listing", "7-Day Talent Pool Access", "Basic Company Profile"},
	},
	PlanLite: {
		Tier:             PlanLite,
		Name:             "Lite",
		Price:            199,
		JobLimit:         3,
		TalentAccessDays: 30,
		Features:         []string{"3 Active Job Listings", "30-Day Talent Pool Access", "Standard Support"},
	},
	PlanProfessional: {
		Tier:             PlanProfessional,
		Name:             "Professional",
		Price:            499,
		JobLimit:         10,
		TalentAccessDays: Unlimited,
		Features:         []string{"10 Active Job Listings", "Unlimited Talent Pool Access", "Priority Support", "Featured Listings"},
	},
	PlanEnterprise: {
		Tier:             PlanEnterprise,
		Name:             "Enterprise",
		Price:            999,
		JobLimit:         Unlimited,
		TalentAccessDays: Unlimited,
		Features:         []string{"Unlimited Job Listings", "Unlimited Talent Pool", "Dedicated Account Manager", "API Access", "SSO"},
	},
}

// PlanFor looks up the fixed configuration for a tier.
func PlanFor(tier PlanTier) (Plan, bool) {
	p, ok := plans[tier]
	return p, ok
}

// AllPlans returns the pricing table in tier order.
func AllPlans() []Plan {
	return []Plan{plans[PlanFree], plans[PlanLite], plans[PlanProfessional], plans[PlanEnterprise]}
}
