package response

import "flashsale-scheduler/internal/usecase/commands"

type UserResponse struct {
	Name        string `json:"name"`
	Marketplace bool   `json:"marketplace"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

func FromSession(s *commands.Session) *LoginResponse {
	return &LoginResponse{
		AccessToken: s.AccessToken,
		User:        UserResponse{Name: s.UserName, Marketplace: s.Marketplace},
	}
}

type AuthURLResponse struct {
	URL string `json:"url"`
}
