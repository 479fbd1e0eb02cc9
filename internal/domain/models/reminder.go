package models

// Reminder is a follow-up reminder stored independently of job records.
type Reminder struct {
	ID       int64  `json:"id"`
	JobTitle string `json:"jobTitle"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// CreateReminderRequest carries the fields supplied by the reminder form.
type CreateReminderRequest struct {
	JobTitle string `json:"jobTitle"`
	Date     string `json:"date"`
}
