package account

import (
	"context"
	"errors"
	"fmt"

	"gympulse/internal/auth"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Account, auth.TokenPair, error)
	Login(ctx context.Context, req LoginRequest) (*Account, auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, *Account, error)
	GetByID(ctx context.Context, id int) (*Account, error)
	RegisterTrainer(ctx context.Context, req RegisterTrainerRequest) (*Trainer, error)
	GetTrainer(ctx context.Context, accountID int) (*Trainer, error)
	Deactivate(ctx context.Context, id int) error
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Account, auth.TokenPair, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, auth.TokenPair{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, auth.TokenPair{}, ErrEmailExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}

	a, err := s.repo.Create(ctx, req.Name, req.Email, hashed, RoleUser)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}

	tokens, err := auth.GenerateTokens(a.Identity(), s.jwtSecret)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}
	return a, tokens, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Account, auth.TokenPair, error) {
	a, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, auth.TokenPair{}, ErrInvalidCredentials
		}
		return nil, auth.TokenPair{}, err
	}

	if !a.Password().Matches(req.Password) {
		return nil, auth.TokenPair{}, ErrInvalidCredentials
	}
	if !a.IsActive {
		return nil, auth.TokenPair{}, ErrAccountInactive
	}

	tokens, err := auth.GenerateTokens(a.Identity(), s.jwtSecret)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}
	return a, tokens, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, *Account, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, ErrInvalidRefresh
	}

	a, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}
	if !a.IsActive {
		return "", nil, ErrAccountInactive
	}

	// Re-issue from the stored row so a changed role takes effect.
	access, err := auth.GenerateAccessToken(a.Identity(), s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return access, a, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) RegisterTrainer(ctx context.Context, req RegisterTrainerRequest) (*Trainer, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateTrainer(ctx, req.Name, req.Email, hashed, TrainerProfile{
		Mobile:         req.Mobile,
		Gender:         req.Gender,
		Experience:     req.Experience,
		Specialization: req.Specialization,
		JoiningPeriod:  req.JoiningPeriod,
	})
}

func (s *service) GetTrainer(ctx context.Context, accountID int) (*Trainer, error) {
	a, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a.Role != RoleTrainer {
		return nil, ErrTrainerNotFound
	}

	p, err := s.repo.GetTrainerProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &Trainer{Account: a, Profile: p}, nil
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
