package dto

import "time"

// NotificationPayload is the dispatcher's input: one message, one recipient.
type NotificationPayload struct {
	Type  string
	Title string
	Desc  string
	From  string
	To    string
	URL   string
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
}
