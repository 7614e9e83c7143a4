package response

import (
	"time"

	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/usecase/queries"
)

type ScheduleResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductTitle string    `json:"productTitle,omitempty"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Type         string    `json:"type"`
	Value        float64   `json:"value"`
	Status       string    `json:"status"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromScheduleView(v queries.ScheduleView) ScheduleResponse {
	return ScheduleResponse{
		ID:           v.ID.String(),
		ProductID:    v.ProductID,
		ProductTitle: v.ProductTitle,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Type:         v.Type,
		Value:        v.Value.InexactFloat64(),
		Status:       v.Status,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
	}
}

func FromScheduleViews(views []queries.ScheduleView) []ScheduleResponse {
	res := make([]ScheduleResponse, len(views))
	for i, v := range views {
		res[i] = FromScheduleView(v)
	}
	return res
}

func FromSchedule(s schedule.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        s.ID().String(),
		ProductID: s.ProductID(),
		StartTime: s.StartTime(),
		EndTime:   s.EndTime(),
		Type:      s.Adjustment().Type().String(),
		Value:     s.Adjustment().Value().InexactFloat64(),
		Status:    s.Status().String(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
	}
}
