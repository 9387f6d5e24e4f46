package entity

import "time"

// PauseTime is an embedded sub-record of a Video: a timestamp at which
// playback pauses, optionally presenting a task. The task reference may be
// absent, and may dangle after the task is deleted.
type PauseTime struct {
	TimeInSeconds int     `json:"timeInSeconds"`
	TaskID        *string `json:"taskId"`
}

// Video is a media asset. The pause list keeps insertion order exactly as
// written (it is never sorted by time, and duplicate timestamps are allowed);
// updates replace the whole list. MediaURL is the durable URL returned by the
// external media store.
type Video struct {
	ID          string      `json:"id"`
	CategoryID  string      `json:"categoryId"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	MediaURL    string      `json:"mediaUrl"`
	Duration    int         `json:"duration"` // seconds
	PauseTimes  []PauseTime `json:"pauseTimes"`
	CreatedAt   time.Time   `json:"createdAt"`

	// Category is resolved at read time; nil when the reference dangles.
	Category *Category `json:"category"`
}
