// models/client.go
package models

import "time"

// ClientStatus is the closed set of pipeline states. Any state may move to
// any other; only entry into StatusSold carries extra requirements.
type ClientStatus string

const (
	StatusNew          ClientStatus = "new"
	StatusWaitingOffer ClientStatus = "waitingOffer"
	StatusFollowUp     ClientStatus = "followUp"
	StatusSold         ClientStatus = "sold"
	StatusPostponed    ClientStatus = "postponed"
	StatusRejected     ClientStatus = "rejected"
)

// AllStatuses lists every pipeline state, in pipeline order.
var AllStatuses = []ClientStatus{
	StatusNew, StatusWaitingOffer, StatusFollowUp,
	StatusSold, StatusPostponed, StatusRejected,
}

// ParseStatus validates a raw status value.
func ParseStatus(s string) (ClientStatus, bool) {
	switch ClientStatus(s) {
	case StatusNew, StatusWaitingOffer, StatusFollowUp,
		StatusSold, StatusPostponed, StatusRejected:
		return ClientStatus(s), true
	}
	return "", false
}

// Currency identifies the denomination of a price leg.
type Currency string

const (
	CurrencySAR Currency = "SAR"
	CurrencyEGP Currency = "EGP" // base currency
)

// ParseCurrency validates a raw currency value.
func ParseCurrency(s string) (Currency, bool) {
	switch Currency(s) {
	case CurrencySAR, CurrencyEGP:
		return Currency(s), true
	}
	return "", false
}

// Note is one entry in a client's append-only note log.
type Note struct {
	Text       string       `bson:"text" json:"text"`
	AuthorID   string       `bson:"authorId" json:"authorId"`
	AuthorName string       `bson:"authorName" json:"authorName"`
	At         time.Time    `bson:"at" json:"at"`
	Status     ClientStatus `bson:"status" json:"status"`
}

// Client is a prospect/booking record.
type Client struct {
	ID               string       `bson:"id" json:"id"`
	Source           string       `bson:"source" json:"source"`
	ClientName       string       `bson:"clientName" json:"clientName"`
	WhatsappNumber   string       `bson:"whatsappNumber" json:"whatsappNumber"`
	TravelDate       string       `bson:"travelDate,omitempty" json:"travelDate,omitempty"`
	DepartureAirport string       `bson:"departureAirport,omitempty" json:"departureAirport,omitempty"`
	ArrivalAirport   string       `bson:"arrivalAirport,omitempty" json:"arrivalAirport,omitempty"`
	FollowUpDate     string       `bson:"followUpDate,omitempty" json:"followUpDate,omitempty"`
	PassportURL      string       `bson:"passportUrl,omitempty" json:"passportUrl,omitempty"`
	Notes            string       `bson:"notes,omitempty" json:"notes,omitempty"`
	NoteLog          []Note       `bson:"noteLog,omitempty" json:"noteLog,omitempty"`
	Status           ClientStatus `bson:"status" json:"status"`

	AssignedTo string     `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	AssignedAt *time.Time `bson:"assignedAt,omitempty" json:"assignedAt,omitempty"`

	// Present only once sold.
	CostPrice    float64  `bson:"costPrice,omitempty" json:"costPrice,omitempty"`
	CostCurrency Currency `bson:"costCurrency,omitempty" json:"costCurrency,omitempty"`
	SellPrice    float64  `bson:"sellPrice,omitempty" json:"sellPrice,omitempty"`
	SellCurrency Currency `bson:"sellCurrency,omitempty" json:"sellCurrency,omitempty"`
	Profit       float64  `bson:"profit,omitempty" json:"profit,omitempty"`

	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SaleDetails is the mandatory profit breakdown accompanying a transition
// into StatusSold. Prices are pointers so a payload that omits one is
// distinguishable from an explicit zero; absence rejects the transition.
type SaleDetails struct {
	CostPrice    *float64 `json:"costPrice"`
	CostCurrency Currency `json:"costCurrency"`
	SellPrice    *float64 `json:"sellPrice"`
	SellCurrency Currency `json:"sellCurrency"`
}

// ClientPatch describes a partial update to a client document. The store
// applies it as a single atomic update; fields left nil are untouched, so a
// status change can never clobber intake or assignment fields. AppendNote is
// applied as an array append, never a full-array rewrite.
type ClientPatch struct {
	Status *ClientStatus

	// Assignment: non-nil AssignedTo sets the assignee; an empty value
	// clears both assignedTo and assignedAt.
	AssignedTo *string
	AssignedAt *time.Time

	CostPrice    *float64
	CostCurrency *Currency
	SellPrice    *float64
	SellCurrency *Currency
	Profit       *float64

	AppendNote *Note
	UpdatedAt  time.Time
}
