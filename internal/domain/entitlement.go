package domain

import (
	"context"
	"fmt"
	"time"
)

// Entitlement is a computed permission. A denial is a normal control-flow
// result, not an error; callers must check Allowed before acting.
type Entitlement struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() Entitlement { return Entitlement{Allowed: true} }

func deny(reason string) Entitlement { return Entitlement{Allowed: false, Reason: reason} }

// CanPostJob decides whether a company may create another posting given its
// current count of active jobs. Recomputed on every call; nothing is cached.
func CanPostJob(c *Company, activeJobs int) Entitlement {
	if c == nil {
		return deny("Company not found")
	}
	if c.Subscription.JobCredits == Unlimited {
		return allow()
	}
	if activeJobs < c.Subscription.JobCredits {
		return allow()
	}
	return deny(fmt.Sprintf("Plan limit reached (%d/%d). Upgrade for more.", activeJobs, c.Subscription.JobCredits))
}

// CanAccessTalent decides whether a company may search the talent pool.
// An unset expiry is treated as unlimited access for every tier; tiers that
// meter access get a concrete expiry at subscription time, so the unset
// branch is only reachable for legacy records.
func CanAccessTalent(c *Company, now time.Time) Entitlement {
	if c == nil {
		return deny("Company not found")
	}
	exp := c.Subscription.TalentAccessExpiresAt
	if exp == nil {
		return allow()
	}
	if exp.After(now) {
		return allow()
	}
	return deny("Talent Pool access has expired.")
}

type SubscriptionUsecase interface {
	CanPostJob(ctx context.Context, companyID string) (Entitlement, error)
	CanAccessTalent(ctx context.Context, companyID string) (Entitlement, error)
	// Upgrade replaces the company's subscription with a fresh record for
	// the given tier. No proration; a downgrade below the current active
	// job count only blocks further posts, it never deactivates jobs.
	Upgrade(ctx context.Context, companyID string, tier PlanTier) (*Company, error)
	ListPlans(ctx context.Context) []Plan
}
