package models

import "time"

// Status is the pipeline stage of a lead. Values outside the known set are kept as-is.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusProposal  Status = "proposal"
	StatusClosed    Status = "closed"
)

// KnownStatuses in pipeline order.
var KnownStatuses = []Status{StatusNew, StatusContacted, StatusQualified, StatusProposal, StatusClosed}

// Converted reports whether the lead counts towards the conversion rate.
func (s Status) Converted() bool {
	return s == StatusQualified || s == StatusProposal
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Source is the channel a lead came from. Open set.
type Source string

const (
	SourceWebsite  Source = "website"
	SourceFacebook Source = "facebook"
	SourceLinkedIn Source = "linkedin"
	SourceGoogle   Source = "google"
	SourceReferral Source = "referral"
)

// KnownSources are offered in the source filter; other values still match.
var KnownSources = []Source{SourceWebsite, SourceFacebook, SourceLinkedIn, SourceGoogle, SourceReferral}

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	Source    Source    `json:"source"`
	Status    Status    `json:"status"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// PhoneOr returns the phone number or fallback when it is absent.
func (l Lead) PhoneOr(fallback string) string {
	if l.Phone == nil {
		return fallback
	}
	return *l.Phone
}

func (l Lead) CompanyOr(fallback string) string {
	if l.Company == nil {
		return fallback
	}
	return *l.Company
}
