package domain

// Principal kinds carried in the token. One token shape serves all three.
const (
	KindAthlete      = "ATHLETE"
	KindOrganization = "ORGANIZATION"
	KindDonor        = "DONOR"
)

// Opportunity kinds as they appear in routes and application records.
const (
	OpportunityEvent         = "event"
	OpportunitySponsorship   = "sponsorship"
	OpportunityTravelSupport = "travel-support"
)

// KnownOpportunityType reports whether t names one of the three kinds.
func KnownOpportunityType(t string) bool {
	switch t {
	case OpportunityEvent, OpportunitySponsorship, OpportunityTravelSupport:
		return true
	}
	return false
}

const (
	OpportunityOpen   = "OPEN"
	OpportunityClosed = "CLOSED"
)

const (
	ApplicationPending  = "PENDING"
	ApplicationAccepted = "ACCEPTED"
	ApplicationRejected = "REJECTED"
)

const (
	DonationPending   = "PENDING"
	DonationCompleted = "COMPLETED"
	DonationFailed    = "FAILED"
)
