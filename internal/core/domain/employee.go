package domain

import "time"

// Employee is the subject record managed by the API. IDs are opaque strings
// assigned by the data store on creation.
type Employee struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	FirstName   string    `json:"first_name" bson:"first_name"`
	LastName    string    `json:"last_name" bson:"last_name"`
	Position    string    `json:"position" bson:"position"`
	DateOfBirth time.Time `json:"date_of_birth" bson:"date_of_birth"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone" bson:"phone"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
