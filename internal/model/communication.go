package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationStatusUpdate       NotificationType = "status-update"
	NotificationInterviewScheduled NotificationType = "interview-scheduled"
	NotificationDocumentRequired   NotificationType = "document-required"
	NotificationReminder           NotificationType = "reminder"
	NotificationDeadline           NotificationType = "deadline-approaching"
)

// CommunicationLog holds the application's message and notification
// history. Both lists are append-only and insertion-ordered; nothing is
// ever edited, removed, or reordered.
type CommunicationLog struct {
	Messages      []Message      `json:"messages,omitempty"`
	Notifications []Notification `json:"notifications,omitempty"`
}

type Message struct {
	ID          uuid.UUID           `json:"id"`
	From        uuid.UUID           `json:"from"`
	To          uuid.UUID           `json:"to"`
	Subject     string              `json:"subject"`
	Body        string              `json:"body"`
	SentAt      time.Time           `json:"sent_at"`
	ReadAt      *time.Time          `json:"read_at,omitempty"`
	Attachments []MessageAttachment `json:"attachments,omitempty"`
}

type MessageAttachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

type Notification struct {
	ID             uuid.UUID        `json:"id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Body           string           `json:"body"`
	SentAt         time.Time        `json:"sent_at"`
	ReadAt         *time.Time       `json:"read_at,omitempty"`
	ActionRequired bool             `json:"action_required"`
}

type SendMessageRequest struct {
	To          uuid.UUID           `json:"to" binding:"required"`
	Subject     string              `json:"subject" binding:"required,max=500"`
	Body        string              `json:"body" binding:"required,max=10000"`
	Attachments []MessageAttachment `json:"attachments"`
}

type NotifyRequest struct {
	Type           NotificationType `json:"type" binding:"required,oneof=status-update interview-scheduled document-required reminder deadline-approaching"`
	Title          string           `json:"title" binding:"required,max=500"`
	Body           string           `json:"body" binding:"required,max=5000"`
	ActionRequired bool             `json:"action_required"`
}
