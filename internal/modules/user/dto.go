package user

import "doctorsportal/internal/domain"

type RegisterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type UpsertStatus string

const (
	StatusCreated UpsertStatus = "created"
	StatusExisted UpsertStatus = "existed"
)

// UpsertResult tells the caller whether Register inserted a row.
type UpsertResult struct {
	Status UpsertStatus `json:"status"`
	User   *domain.User `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
