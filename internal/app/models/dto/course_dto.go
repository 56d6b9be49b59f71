package dto

// ApproveCourseResponse is returned by POST /api/courses/approve/:code
type ApproveCourseResponse struct {
	Message  string `json:"message" example:"Course with code CS101 approved"`
	Approved bool   `json:"approved" example:"true"`
}

// RejectResult mirrors the store's delete outcome
type RejectResult struct {
	DeletedCount int64 `json:"deletedCount" example:"1"`
}

// RejectCourseResponse is returned by POST /api/courses/reject/:code
type RejectCourseResponse struct {
	Message string       `json:"message" example:"Course with code CS101 rejected"`
	Result  RejectResult `json:"result"`
}

// StudentDecisionResponse is returned by the student approve/reject endpoints
type StudentDecisionResponse struct {
	Message   string `json:"message" example:"Student s-1001 approved for course CS101"`
	Code      string `json:"code" example:"CS101"`
	StudentID string `json:"studentId" example:"s-1001"`
	Approved  bool   `json:"approved" example:"true"`
}
