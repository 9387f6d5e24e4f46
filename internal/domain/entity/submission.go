package entity

import "time"

// TaskSubmission is an end user's answer to a Task, scoped to the Video during
// which it was prompted. FileURL follows the same shape rule as Task.Content:
// literal text for KindText, a URL otherwise.
type TaskSubmission struct {
	ID             string      `json:"id"`
	TaskID         string      `json:"taskId"`
	UserID         string      `json:"userId"`
	VideoID        string      `json:"videoId"`
	SubmissionType ContentKind `json:"submissionType"`
	FileURL        string      `json:"fileUrl"`
	CreatedAt      time.Time   `json:"createdAt"`

	// Resolved at read time; nil when the reference dangles.
	User  *UserRef `json:"user"`
	Task  *Task    `json:"task"`
	Video *Video   `json:"video"`
}
