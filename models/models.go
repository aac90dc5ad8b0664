package models

import (
	"time"
)

// AdminAccount lives in the `admins` collection, keyed by the uid the identity
// service issued. `active` is the only gate the admin panel checks.
type AdminAccount struct {
	UID       string    `bson:"uid" json:"uid"`
	Email     string    `bson:"email" json:"email"`
	Username  string    `bson:"username,omitempty" json:"username,omitempty"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

// AdminUserLink maps a login username to the uid-keyed admin record so the
// panel can offer username logins. There is no transactional link between the
// two collections; the tools write both and accept the gap.
type AdminUserLink struct {
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	UID       string    `bson:"uid" json:"uid"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ServiceOffering is one bookable salon service. Name is unique by convention
// only; the seeder checks before inserting.
type ServiceOffering struct {
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Price       float64   `bson:"price" json:"price"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SalonConfig is the settings/config singleton the booking frontend reads.
type SalonConfig struct {
	ID               string   `bson:"_id,omitempty" json:"-"`
	OpeningTime      string   `bson:"openingTime" json:"openingTime"` // HH:MM
	ClosingTime      string   `bson:"closingTime" json:"closingTime"` // HH:MM
	TimeStep         int      `bson:"timeStep" json:"timeStep"`       // minutes
	Resources        int      `bson:"resources" json:"resources"`     // parallel stations
	BufferTime       int      `bson:"bufferTime" json:"bufferTime"`   // minutes
	ClosedDaysOfWeek []int    `bson:"closedDaysOfWeek" json:"closedDaysOfWeek"`
	ClosedDates      []string `bson:"closedDates" json:"closedDates"` // ISO dates
}

// AuthUser is the identity-service account record in `authUsers`. The uid it
// carries is immutable once issued.
type AuthUser struct {
	UID          string    `bson:"uid" json:"uid"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	DisplayName  string    `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
