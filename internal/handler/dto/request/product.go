package request

import "time"

type ProductListQuery struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=all active paused"`
	Sort   string `form:"sort" binding:"omitempty,oneof=default price-asc price-desc stock-asc stock-desc"`
}

type SuggestionRequest struct {
	Goal      string     `json:"goal" binding:"required"`
	StartTime *time.Time `json:"startTime,omitempty"`
}
