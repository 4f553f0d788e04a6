package models

// Status values shared by exams and resource categories
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Blog post status values
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Exam-info section types
const (
	SectionPattern      = "pattern"
	SectionSyllabus     = "syllabus"
	SectionEligibility  = "eligibility"
	SectionDates        = "dates"
	SectionNotification = "notification"
)
