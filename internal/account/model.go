package account

import (
	"time"

	"gympulse/internal/auth"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleTrainer, RoleAdmin:
		return true
	}
	return false
}

type Account struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

func (a *Account) Password() auth.HashedPassword {
	return auth.StoredPassword(a.PasswordHash)
}

func (a *Account) Identity() auth.Identity {
	return auth.Identity{UserID: a.ID, Email: a.Email, Role: string(a.Role)}
}

// TrainerProfile extends an Account with role trainer. One per account.
type TrainerProfile struct {
	ID             int       `db:"id" json:"id"`
	AccountID      int       `db:"account_id" json:"account_id"`
	Mobile         string    `db:"mobile" json:"mobile"`
	Gender         string    `db:"gender" json:"gender"`
	Experience     int       `db:"experience" json:"experience"`
	Specialization string    `db:"specialization" json:"specialization"`
	JoiningPeriod  string    `db:"joining_period" json:"joining_period"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Trainer struct {
	Account *Account        `json:"account"`
	Profile *TrainerProfile `json:"profile"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterTrainerRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Password       string `json:"password" validate:"required,min=8"`
	Mobile         string `json:"mobile" validate:"required,numeric,len=10"`
	Gender         string `json:"gender" validate:"required,oneof=male female other"`
	Experience     int    `json:"experience" validate:"gte=0,lte=60"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	JoiningPeriod  string `json:"joining_period" validate:"required,max=50"`
}

type LoginResponse struct {
	Success      bool     `json:"success"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         *Account `json:"user"`
}
