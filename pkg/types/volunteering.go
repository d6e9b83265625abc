package types

import "time"

// VolunteeringResourceForm holds the validated values of the volunteering
// signup dialog.
type VolunteeringResourceForm struct {
	Name           string
	Category       int
	Town           string
	Description    string
	AvailableUntil string
	CountyCoverage []string
}

// DonateVolunteeringRequest is the payload handed to the dialog's submitter.
type DonateVolunteeringRequest struct {
	Name           string   `json:"name"`
	Category       int      `json:"category"`
	Town           string   `json:"town,omitempty"`
	Description    string   `json:"description,omitempty"`
	AvailableUntil string   `json:"available_until,omitempty"`
	CountyCoverage []string `json:"county_coverage"`
	Type           int      `json:"type"`
}

// VolunteeringSubmission is the url-encoded shape of the dialog form. Every
// field stays a string so the schema sees exactly what was posted.
type VolunteeringSubmission struct {
	Name           string   `form:"name"`
	Town           string   `form:"town"`
	Description    string   `form:"description"`
	AvailableUntil string   `form:"available_until"`
	CountyCoverage []string `form:"county_coverage"`
}

// VolunteeringResource is a stored DonateVolunteeringRequest.
type VolunteeringResource struct {
	ID             string     `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Category       int        `db:"category" json:"category"`
	Type           int        `db:"type" json:"type"`
	Town           *string    `db:"town" json:"town,omitempty"`
	Description    *string    `db:"description" json:"description,omitempty"`
	AvailableUntil *time.Time `db:"available_until" json:"available_until,omitempty"`
	CountyCoverage []string   `db:"county_coverage" json:"county_coverage"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
