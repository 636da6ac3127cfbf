package domain

type UserRole string

const (
	UserRoleCitizen UserRole = "citizen"
	UserRoleHub     UserRole = "hub"
)

type User struct {
	ID             int32    `json:"user_id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	PasswordHash   string   `json:"-"`
	Role           UserRole `json:"role"`
	RewardsBalance int32    `json:"rewards_balance"`
	CreatedOn      string   `json:"created_at"`
	UpdatedOn      string   `json:"updated_at,omitempty"`
}
