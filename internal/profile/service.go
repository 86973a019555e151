package profile

import (
	"context"
	"time"

	"gympulse/internal/account"
)

// AccountFinder resolves the owning account of a profile.
type AccountFinder interface {
	FindByID(ctx context.Context, id int) (*account.Account, error)
}

type Service interface {
	Create(ctx context.Context, req CreateProfileRequest) (*View, error)
	Get(ctx context.Context, accountID int) (*View, error)
}

type service struct {
	repo     Repository
	accounts AccountFinder
	now      func() time.Time
}

func NewService(repo Repository, accounts AccountFinder) Service {
	return &service{repo: repo, accounts: accounts, now: time.Now}
}

func (s *service) view(p *Profile) *View {
	now := s.now()
	return &View{
		Profile:              p,
		IsSubscriptionActive: p.IsSubscriptionActive(now),
		RemainingDays:        p.RemainingDays(now),
	}
}

func (s *service) Create(ctx context.Context, req CreateProfileRequest) (*View, error) {
	if _, err := s.accounts.FindByID(ctx, req.AccountID); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsForAccount(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProfileExists
	}

	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.view(p), nil
}

func (s *service) Get(ctx context.Context, accountID int) (*View, error) {
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.view(p), nil
}
