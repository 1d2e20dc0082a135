package model

import "time"

// Status is the progress state of a task.
type Status string

// Task statuses.
const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Priority is the urgency of a task.
type Priority string

// Task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Statuses lists every accepted Status in display order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusComplete}

// Priorities lists every accepted Priority in ascending urgency.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Task is a personal to-do item owned by exactly one user.
type Task struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"size:50;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Status    Status    `json:"status" gorm:"size:20;not null"`
	Priority  Priority  `json:"priority" gorm:"size:20;not null"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// Apply overwrites the client-editable fields of t with in.
func (t *Task) Apply(in TaskInput) {
	t.Title = in.Title
	t.Content = in.Content
	t.Status = in.Status
	t.Priority = in.Priority
}
