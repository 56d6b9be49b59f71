package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is one course document awaiting (or past) an approval decision.
// Code is the only key used to match a course for any mutation.
type Course struct {
	ID       *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty" swaggertype:"string" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
	Code     string              `bson:"code" json:"code" example:"CS101"`
	Title    string              `bson:"title,omitempty" json:"title,omitempty" example:"Introduction to Programming"`
	Approved bool                `bson:"approved" json:"approved" example:"false"`
	Students []Student           `bson:"students,omitempty" json:"students,omitempty"`
}

// State derives the approval state of a stored course.
func (c *Course) State() CourseState {
	if c == nil {
		return StateGone
	}
	if c.Approved {
		return StateApproved
	}
	return StatePending
}

// Student returns the embedded student with the given id, or nil.
func (c *Course) Student(id string) *Student {
	if c == nil {
		return nil
	}
	for i := range c.Students {
		if c.Students[i].ID == id {
			return &c.Students[i]
		}
	}
	return nil
}

// ApprovedStudents counts students whose enrolment was approved.
func (c *Course) ApprovedStudents() int {
	n := 0
	for _, s := range c.Students {
		if s.Approved {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers can hand courses out without sharing the students slice.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	if c.ID != nil {
		id := *c.ID
		out.ID = &id
	}
	if c.Students != nil {
		out.Students = make([]Student, len(c.Students))
		copy(out.Students, c.Students)
	}
	return &out
}
