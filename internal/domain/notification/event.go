package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSaleStarted       Kind = "sale_started"
	KindSaleEnded         Kind = "sale_ended"
	KindScheduleCreated   Kind = "schedule_created"
	KindScheduleCancelled Kind = "schedule_cancelled"
	KindStatusChanged     Kind = "status_changed"
	KindAccount           Kind = "account"
	KindWarning           Kind = "warning"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Event is a transient user-facing message. It has no id until a sink accepts it.
type Event struct {
	Kind       Kind
	Title      string
	Message    string
	Severity   Severity
	ScheduleID uuid.UUID
	ProductID  string
	OccurredAt time.Time
}

func SaleStarted(scheduleID uuid.UUID, productID, productTitle string, at time.Time) Event {
	return Event{
		Kind:       KindSaleStarted,
		Title:      "Sale started",
		Message:    fmt.Sprintf("The price of %q has been updated.", productTitle),
		Severity:   SeveritySuccess,
		ScheduleID: scheduleID,
		ProductID:  productID,
		OccurredAt: at,
	}
}

func SaleEnded(scheduleID uuid.UUID, productID, productTitle string, at time.Time) Event {
	return Event{
		Kind:       KindSaleEnded,
		Title:      "Sale ended",
		Message:    fmt.Sprintf("The price of %q has returned to its original value.", productTitle),
		Severity:   SeverityInfo,
		ScheduleID: scheduleID,
		ProductID:  productID,
		OccurredAt: at,
	}
}

func ScheduleCreated(scheduleID uuid.UUID, productID string, at time.Time) Event {
	return Event{
		Kind:       KindScheduleCreated,
		Title:      "Schedule created",
		Message:    "The flash sale has been scheduled.",
		Severity:   SeveritySuccess,
		ScheduleID: scheduleID,
		ProductID:  productID,
		OccurredAt: at,
	}
}

func ScheduleCancelled(scheduleID uuid.UUID, productID string, at time.Time) Event {
	return Event{
		Kind:       KindScheduleCancelled,
		Title:      "Schedule cancelled",
		Message:    "The price adjustment has been removed.",
		Severity:   SeverityWarning,
		ScheduleID: scheduleID,
		ProductID:  productID,
		OccurredAt: at,
	}
}

func StatusChanged(productID, status string, at time.Time) Event {
	return Event{
		Kind:       KindStatusChanged,
		Title:      "Status updated",
		Message:    fmt.Sprintf("The listing is now %s.", status),
		Severity:   SeverityInfo,
		ProductID:  productID,
		OccurredAt: at,
	}
}

func Account(title, message string, at time.Time) Event {
	return Event{
		Kind:       KindAccount,
		Title:      title,
		Message:    message,
		Severity:   SeveritySuccess,
		OccurredAt: at,
	}
}

func Warning(title, message string, at time.Time) Event {
	return Event{
		Kind:       KindWarning,
		Title:      title,
		Message:    message,
		Severity:   SeverityWarning,
		OccurredAt: at,
	}
}

func (e Event) HasSchedule() bool {
	return e.ScheduleID != uuid.Nil
}
