package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// EventDetails is an event-planning lead captured from staff or the public
// web form.
type EventDetails struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Contact
	ClientName    string  `gorm:"not null" json:"clientName" binding:"required"`
	ClientEmail   string  `gorm:"not null" json:"clientEmail" binding:"required"`
	ClientPhone   string  `gorm:"not null" json:"clientPhone" binding:"required"`
	ClientAddress *string `json:"clientAddress"`

	// Event
	EventType      *string `json:"eventType"`
	EventDate      *string `gorm:"type:varchar(10)" json:"eventDate"`     // YYYY-MM-DD
	EventStartTime *string `gorm:"type:varchar(8)" json:"eventStartTime"` // HH:MM[:SS]
	EventEndTime   *string `gorm:"type:varchar(8)" json:"eventEndTime"`
	GuestCount     *int    `json:"guestCount"`

	// Location
	EventLocation *string `json:"eventLocation"`
	LocationType  *string `json:"locationType"`
	VenueReserved bool    `gorm:"not null;default:false" json:"venueReserved"`

	// Requested services
	DecorationStyle      *string `json:"decorationStyle"`
	CateringType         *string `json:"cateringType"`
	IncludeDrinks        bool    `gorm:"not null;default:false" json:"includeDrinks"`
	EntertainmentType    *string `json:"entertainmentType"`
	Photography          bool    `gorm:"not null;default:false" json:"photography"`
	Transportation       bool    `gorm:"not null;default:false" json:"transportation"`
	InvitationManagement bool    `gorm:"not null;default:false" json:"invitationManagement"`
	OtherServices        *string `gorm:"type:text" json:"otherServices"`

	// Budget
	Budget          *decimal.Decimal            `gorm:"type:decimal(10,2)" json:"budget"`
	ServicePriority datatypes.JSONSlice[string] `json:"servicePriority"`

	// Additional details
	ColorsOrThemes      *string `json:"colorsOrThemes"`
	SpecialRequirements *string `gorm:"type:text" json:"specialRequirements"`
	AdditionalComments  *string `gorm:"type:text" json:"additionalComments"`

	// Follow-up
	RequiresMeeting      bool    `gorm:"not null;default:false" json:"requiresMeeting"`
	PreferredMeetingTime *string `json:"preferredMeetingTime"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for the EventDetails model
func (EventDetails) TableName() string {
	return "event_details"
}
