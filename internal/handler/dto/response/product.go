package response

import (
	"time"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/usecase/commands"
	"flashsale-scheduler/internal/usecase/queries"
)

type ProductResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	Permalink     string  `json:"permalink,omitempty"`
	Stock         int     `json:"stock"`
	OriginalPrice float64 `json:"originalPrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	Status        string  `json:"status"`
	IsActiveSale  bool    `json:"isActiveSale"`
	IsProcessing  bool    `json:"isProcessing"`
}

func FromProductView(v queries.ProductView) ProductResponse {
	return ProductResponse{
		ID:            v.ID,
		Title:         v.Title,
		Category:      v.Category,
		Image:         v.Image,
		Permalink:     v.Permalink,
		Stock:         v.Stock,
		OriginalPrice: v.OriginalPrice.InexactFloat64(),
		CurrentPrice:  v.CurrentPrice.InexactFloat64(),
		Status:        v.Status,
		IsActiveSale:  v.IsActiveSale,
		IsProcessing:  v.IsProcessing,
	}
}

func FromProductViews(views []queries.ProductView) []ProductResponse {
	res := make([]ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}

// FromProduct renders a product straight from the catalog, as returned by a status toggle.
func FromProduct(p product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID(),
		Title:         p.Title(),
		Category:      p.Category(),
		Image:         p.Image(),
		Permalink:     p.Permalink(),
		Stock:         p.Stock(),
		OriginalPrice: p.OriginalPrice().InexactFloat64(),
		CurrentPrice:  p.CurrentPrice().InexactFloat64(),
		Status:        p.Status().String(),
		IsActiveSale:  p.IsDiscounted(),
	}
}

type StatsResponse struct {
	TotalProducts    int `json:"totalProducts"`
	ActiveSales      int `json:"activeSales"`
	PendingSchedules int `json:"pendingSchedules"`
	PausedProducts   int `json:"pausedProducts"`
}

func FromStats(s *queries.DashboardStats) *StatsResponse {
	return &StatsResponse{
		TotalProducts:    s.TotalProducts,
		ActiveSales:      s.ActiveSales,
		PendingSchedules: s.PendingSchedules,
		PausedProducts:   s.PausedProducts,
	}
}

type SuggestionResponse struct {
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reasoning string    `json:"reasoning"`
	Fallback  bool      `json:"fallback"`
}

func FromSuggestion(r *commands.SuggestionResult) *SuggestionResponse {
	return &SuggestionResponse{
		ProductID: r.ProductID,
		Type:      r.Type.String(),
		Value:     r.Value.InexactFloat64(),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reasoning: r.Reasoning,
		Fallback:  r.Fallback,
	}
}
