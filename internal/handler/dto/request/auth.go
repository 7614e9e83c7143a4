package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type MarketplaceCallbackRequest struct {
	Code string `json:"code" binding:"required"`
}
