package response

import (
	"time"

	"flashsale-scheduler/internal/infra/notifier"
)

type NotificationResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Severity   string    `json:"severity"`
	ScheduleID string    `json:"scheduleId,omitempty"`
	ProductID  string    `json:"productId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func FromNotification(n notifier.Notification) NotificationResponse {
	res := NotificationResponse{
		ID:         n.ID.String(),
		Kind:       string(n.Kind),
		Title:      n.Title,
		Message:    n.Message,
		Severity:   string(n.Severity),
		ProductID:  n.ProductID,
		OccurredAt: n.OccurredAt,
		ExpiresAt:  n.ExpiresAt,
	}
	if n.HasSchedule() {
		res.ScheduleID = n.ScheduleID.String()
	}
	return res
}

func FromNotifications(items []notifier.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(items))
	for i, n := range items {
		res[i] = FromNotification(n)
	}
	return res
}
