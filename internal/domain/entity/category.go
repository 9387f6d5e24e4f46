package entity

import "time"

// Category groups videos. Videos reference it by id; deleting a category does
// not cascade, so a video may outlive its category (reads then resolve the
// reference to null).
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
