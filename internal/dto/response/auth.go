package response

import (
	"time"

	"airline-ops/internal/data/entity"
)

type UserResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Role        entity.UserRole `json:"role"`
	PassengerID *string         `json:"passenger_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RegisterResponse struct {
	User        UserResponse `json:"user"`
	PassengerID string       `json:"passenger_id"`
}

type LoginResponse struct {
	User      UserResponse       `json:"user"`
	Passenger *PassengerResponse `json:"passenger,omitempty"`
}

// UserToResponse never carries the password hash out of the service layer.
func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	if user.PassengerID != nil {
		id := user.PassengerID.String()
		resp.PassengerID = &id
	}

	return resp
}
