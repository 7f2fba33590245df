package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// StaffUser is a field-clinic staff account. Passwords are stored as bcrypt
// hashes, never plaintext.
type StaffUser struct {
	ID         string `bson:"_id,omitempty"`
	Username   string `bson:"username"`
	Email      string `bson:"email"`
	Password   string `bson:"password"`
	Role       string `bson:"role"`
	ClinicSite string `bson:"clinicSite,omitempty"`
	TimeModel  `bson:",inline"`
}
