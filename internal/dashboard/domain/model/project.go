package model

import "time"

// Project is the wire model the platform API exposes for fundraising
// projects. Date fields stay strings as received; they are parsed only for
// sorting, never rewritten.
type Project struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	GoalAmount      float64          `json:"goalAmount"`
	CollectedAmount float64          `json:"collectedAmount"`
	CurrencyCode    string           `json:"currencyCode,omitempty"`
	IsApproved      bool             `json:"isApproved"`
	NpoID           string           `json:"npoId,omitempty"`
	NpoName         string           `json:"npoName,omitempty"`
	CategoryID      string           `json:"categoryId,omitempty"`
	Category        *Category        `json:"category,omitempty"`
	CoverImagePath  string           `json:"coverImagePath,omitempty"`
	Media           []ProjectMedia   `json:"media,omitempty"`
	Addresses       []ProjectAddress `json:"addresses,omitempty"`
	CreatedOn       string           `json:"createdOn,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	StartDate       string           `json:"startDate,omitempty"`
	EndDate         string           `json:"endDate,omitempty"`
}

// ProjectMedia is one uploaded file attached to a project.
type ProjectMedia struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	ContentType string `json:"contentType,omitempty"`
}

// ProjectAddress is a physical location attached to a project. Street, city
// and country are required on the platform side.
type ProjectAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
}

// IsComplete reports whether the address carries every field the platform
// requires. Incomplete addresses are dropped before sending.
func (a ProjectAddress) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.Country != ""
}

// dateLayouts lists the formats the platform has been seen emitting.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.9999999", // .NET DateTime without zone
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseWireDate parses a platform date string, returning the zero time when
// the value is empty or matches no known layout.
func ParseWireDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// EffectiveCreatedAt returns the date the project counts as created on for
// sorting: createdOn, then createdAt, then startDate, first parseable wins.
// Projects with no parseable date sort as earliest possible.
func (p *Project) EffectiveCreatedAt() time.Time {
	for _, candidate := range []string{p.CreatedOn, p.CreatedAt, p.StartDate} {
		if t := ParseWireDate(candidate); !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

// CreateProjectRequest is the payload for creating a project through the
// dashboard.
type CreateProjectRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	GoalAmount   float64          `json:"goalAmount"`
	CurrencyCode string           `json:"currencyCode,omitempty"`
	CategoryID   string           `json:"categoryId"`
	StartDate    string           `json:"startDate,omitempty"`
	EndDate      string           `json:"endDate,omitempty"`
	Addresses    []ProjectAddress `json:"addresses,omitempty"`
}

// UpdateProjectRequest is the payload for editing a project. The platform
// treats it as a full update of the listed fields.
type UpdateProjectRequest struct {
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	GoalAmount   float64          `json:"goalAmount"`
	CurrencyCode string           `json:"currencyCode,omitempty"`
	CategoryID   string           `json:"categoryId"`
	StartDate    string           `json:"startDate,omitempty"`
	EndDate      string           `json:"endDate,omitempty"`
	Addresses    []ProjectAddress `json:"addresses,omitempty"`
}
