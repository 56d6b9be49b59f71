package models

// Student is a student enrolment embedded in a course document.
type Student struct {
	ID       string `bson:"id" json:"id" example:"s-1001"`
	Name     string `bson:"name,omitempty" json:"name,omitempty" example:"Ada Lovelace"`
	Approved bool   `bson:"approved" json:"approved" example:"false"`
}
