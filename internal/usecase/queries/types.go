package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView is the dashboard row for one listing.
type ProductView struct {
	ID            string
	Title         string
	Category      string
	Image         string
	Permalink     string
	Stock         int
	OriginalPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Status        string
	IsActiveSale  bool
	IsProcessing  bool
}

type ScheduleView struct {
	ID           uuid.UUID
	ProductID    string
	ProductTitle string
	StartTime    time.Time
	EndTime      time.Time
	Type         string
	Value        decimal.Decimal
	Status       string
	IsActive     bool
	CreatedAt    time.Time
}

type DashboardStats struct {
	TotalProducts    int
	ActiveSales      int
	PendingSchedules int
	PausedProducts   int
}

const (
	StatusFilterAll    = "all"
	StatusFilterActive = "active"
	StatusFilterPaused = "paused"

	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortStockAsc  = "stock-asc"
	SortStockDesc = "stock-desc"
)

type ProductFilter struct {
	Search string
	Status string
	Sort   string
}
