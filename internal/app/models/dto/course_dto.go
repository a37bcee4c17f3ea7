package dto

// CreateCourseRequest represents a new catalog entry
type CreateCourseRequest struct {
	Name     string   `json:"name" binding:"required"`
	Duration string   `json:"duration"`
	Fee      float64  `json:"fee" binding:"gte=0"`
	Subjects []string `json:"subjects"`
}

// UpdateCourseRequest represents an update to a catalog entry
type UpdateCourseRequest struct {
	Name     string   `json:"name" binding:"required"`
	Duration string   `json:"duration"`
	Fee      float64  `json:"fee" binding:"gte=0"`
	Subjects []string `json:"subjects"`
}
