// Package domain holds DTOs for results http and service contracts
package domain

import (
	"encoding/json"
	"time"

	"complaints/internal/core/displaystate"
)

// DefaultSize is the page size used when a search does not ask for one
const DefaultSize = 10

// Agreement is a credit card agreement filed by the complaint's company
type Agreement struct {
	Issuer    string  `json:"issuer" example:"Acme Bank"`
	Name      string  `json:"name" example:"Acme Card"`
	Offered   string  `json:"offered" example:"Jan. 15, 2018"`
	PK        int64   `json:"pk" example:"2979"`
	Slug      string  `json:"slug" example:"acme-bank"`
	Withdrawn *string `json:"withdrawn"`
	Size      string  `json:"size" example:"110KB"`
	URI       string  `json:"uri" example:"https://consumerfinance.gov"`
}

// Complaint is one row of the results panel
type Complaint struct {
	Company                 string      `json:"company" example:"foo"`
	CompanyPublicResponse   string      `json:"company_public_response" example:"Closed"`
	CompanyResponse         string      `json:"company_response" example:"Closed"`
	ComplaintID             string      `json:"complaint_id" example:"1"`
	ComplaintWhatHappened   string      `json:"complaint_what_happened" example:"Lorem Ipsum"`
	ConsumerConsentProvided string      `json:"consumer_consent_provided" example:"Yes"`
	ConsumerDisputed        string      `json:"consumer_disputed" example:"No"`
	DateReceived            time.Time   `json:"date_received" example:"2013-02-03T12:00:00Z"`
	DateSentToCompany       time.Time   `json:"date_sent_to_company" example:"2013-01-01T12:00:00Z"`
	Issue                   string      `json:"issue" example:"Foo"`
	Product                 string      `json:"product" example:"Bar"`
	State                   string      `json:"state" example:"DC"`
	SubIssue                string      `json:"sub_issue" example:"Baz"`
	SubProduct              string      `json:"sub_product" example:"Qaz"`
	SubmittedVia            string      `json:"submitted_via" example:"email"`
	Timely                  string      `json:"timely" example:"yes"`
	ZipCode                 string      `json:"zip_code" example:"200XX"`
	HasNarrative            bool        `json:"has_narrative" example:"true"`
	Agreements              []Agreement `json:"agreements"`
}

// SearchInput is a page request against the complaints index
type SearchInput struct {
	From         int      `json:"from" validate:"min=0,max=10000" example:"0"`
	Size         int      `json:"size,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
	SearchTerm   string   `json:"searchTerm,omitempty" validate:"max=256,nocontrol" example:"overdraft"`
	Company      []string `json:"company,omitempty" validate:"max=20,dive,min=1,max=200,nocontrol"`
	Product      []string `json:"product,omitempty" validate:"max=20,dive,min=1,max=200,nocontrol"`
	State        []string `json:"state,omitempty" validate:"max=60,dive,len=2,uppercase,alpha"`
	HasNarrative bool     `json:"has_narrative,omitempty" example:"false"`
}

// PageSize returns Size or the default when unset
func (in SearchInput) PageSize() int {
	if in.Size <= 0 {
		return DefaultSize
	}
	return in.Size
}

// ShowsNarratives reports whether the page displays complaint narratives
func (in SearchInput) ShowsNarratives() bool { return in.HasNarrative || in.SearchTerm != "" }

// SnapshotInput is a caller supplied results snapshot
// items are opaque records, only their count matters for the banner
type SnapshotInput struct {
	Items            []json.RawMessage `json:"items"`
	Total            int               `json:"total" validate:"min=0" example:"1"`
	DocCount         int               `json:"doc_count" validate:"min=0" example:"100"`
	Error            string            `json:"error" validate:"max=1024" example:""`
	HasDataIssue     bool              `json:"hasDataIssue" example:"false"`
	IsDataStale      bool              `json:"isDataStale" example:"false"`
	IsNarrativeStale bool              `json:"isNarrativeStale" example:"false"`
}

// Snapshot converts the input into the resolver's view
func (in SnapshotInput) Snapshot() displaystate.Snapshot {
	s := displaystate.FromItems(in.Items, in.Total, in.DocCount)
	s.Error = in.Error
	s.HasDataIssue = in.HasDataIssue
	s.IsDataStale = in.IsDataStale
	s.IsNarrativeStale = in.IsNarrativeStale
	return s
}

// Panel is a resolved search page
// Items is empty unless the banner kind is normal
type Panel struct {
	Variant     displaystate.Variant `json:"variant"`
	Items       []Complaint          `json:"items"`
	Total       int                  `json:"total" example:"1"`
	DocCount    int                  `json:"doc_count" example:"100"`
	From        int                  `json:"from" example:"0"`
	Size        int                  `json:"size" example:"10"`
	LastIndexed string               `json:"last_indexed,omitempty" example:"2018-01-01T00:00:00Z"`
}

// Resolution is a banner resolved from a caller supplied snapshot
type Resolution struct {
	Variant  displaystate.Variant `json:"variant"`
	Items    []json.RawMessage    `json:"items"`
	Total    int                  `json:"total" example:"1"`
	DocCount int                  `json:"doc_count" example:"100"`
}

// Status reports the dataset quality flags currently applied to every search
type Status struct {
	Variant          displaystate.Variant `json:"variant"`
	IsDataStale      bool                 `json:"isDataStale" example:"false"`
	IsNarrativeStale bool                 `json:"isNarrativeStale" example:"false"`
	HasDataIssue     bool                 `json:"hasDataIssue" example:"false"`
	LastIndexed      string               `json:"last_indexed,omitempty" example:"2018-01-01T00:00:00Z"`
}
