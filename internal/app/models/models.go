package models

// CourseState is the approval state of a course.
type CourseState string

const (
	// StatePending means no approval decision has been stored yet.
	StatePending CourseState = "pending"
	// StateApproved means the course document carries approved=true.
	StateApproved CourseState = "approved"
	// StateGone means the course was rejected. Rejection deletes the document, so this state is never stored.
	StateGone CourseState = "gone"
)
