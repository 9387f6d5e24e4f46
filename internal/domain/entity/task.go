package entity

import "time"

// Task is an interactive prompt presented at a video pause point and answered
// by a TaskSubmission. Content is literal text for KindText, a URL otherwise.
type Task struct {
	ID          string      `json:"id"`
	Type        ContentKind `json:"type"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
}
