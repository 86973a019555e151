package subscription

import (
	"context"
	"time"

	"gympulse/internal/account"
	"gympulse/internal/events"
	"gympulse/internal/logger"
	"gympulse/internal/metrics"
	"gympulse/internal/profile"
)

// expiringWindow is the number of remaining days at or below which a
// subscription counts as expiring and may be renewed early.
const expiringWindow = 7

type AccountFinder interface {
	FindByID(ctx context.Context, id int) (*account.Account, error)
}

type ProfileFinder interface {
	FindByAccountID(ctx context.Context, accountID int) (*profile.Profile, error)
}

type EventPublisher interface {
	PublishRenewal(ctx context.Context, ev events.SubscriptionRenewed) error
}

type Mailer interface {
	SendRenewalConfirmation(ctx context.Context, to, name string, months int, amount int64, newEnd time.Time) error
}

type Service interface {
	GetStatus(ctx context.Context, userID int) (*Status, error)
	Renew(ctx context.Context, req RenewRequest) (*RenewResult, error)
	History(ctx context.Context, userID int) ([]Renewal, error)
}

type service struct {
	repo      Repository
	accounts  AccountFinder
	profiles  ProfileFinder
	publisher EventPublisher
	mailer    Mailer
	now       func() time.Time
}

// NewService wires the subscription service. publisher and mailer may be nil.
func NewService(repo Repository, accounts AccountFinder, profiles ProfileFinder, publisher EventPublisher, mailer Mailer) Service {
	return &service{
		repo:      repo,
		accounts:  accounts,
		profiles:  profiles,
		publisher: publisher,
		mailer:    mailer,
		now:       time.Now,
	}
}

// StatusAt derives the subscription flags for p at now.
func StatusAt(p *profile.Profile, now time.Time) *Status {
	active := p.IsSubscriptionActive(now)
	expired := p.IsExpired(now)
	remaining := p.RemainingDays(now)

	return &Status{
		IsActive:              active,
		IsExpired:             expired,
		ExpiringSoon:          active && remaining <= expiringWindow,
		RemainingDays:         remaining,
		SubscriptionStartDate: p.SubscriptionStartDate,
		SubscriptionEndDate:   p.SubscriptionEndDate,
		TargetMonths:          p.TargetMonths,
		CanRenew:              expired || remaining <= expiringWindow,
		PaymentStatus:         p.PaymentStatus,
	}
}

func (s *service) GetStatus(ctx context.Context, userID int) (*Status, error) {
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	p, err := s.profiles.FindByAccountID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return StatusAt(p, s.now()), nil
}

func (s *service) Renew(ctx context.Context, req RenewRequest) (*RenewResult, error) {
	if req.UserID == 0 || req.RenewalMonths == 0 {
		return nil, ErrMissingFields
	}
	amount, ok := Price(req.RenewalMonths)
	if !ok {
		return nil, ErrInvalidMonths
	}

	acc, err := s.accounts.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p, err := s.repo.ApplyRenewal(ctx, req.UserID, req.RenewalMonths, amount, req.PaymentMethod, now)
	if err != nil {
		return nil, err
	}

	res := &RenewResult{
		Amount:      amount,
		NewEndDate:  *p.SubscriptionEndDate,
		RenewalDays: req.RenewalMonths * DaysPerMonth,
	}
	s.afterRenewal(ctx, acc, req, res, now)
	return res, nil
}

// afterRenewal runs the side effects of a committed renewal. Failures are
// logged and never reach the caller.
func (s *service) afterRenewal(ctx context.Context, acc *account.Account, req RenewRequest, res *RenewResult, now time.Time) {
	metrics.RecordRenewal(req.RenewalMonths, res.Amount)

	if s.publisher != nil {
		err := s.publisher.PublishRenewal(ctx, events.SubscriptionRenewed{
			UserID:        req.UserID,
			Months:        req.RenewalMonths,
			Amount:        res.Amount,
			PaymentMethod: req.PaymentMethod,
			NewEndDate:    res.NewEndDate,
			RenewedAt:     now,
		})
		if err != nil {
			logger.WithError(err).Warn("renewal event not published", "user_id", req.UserID)
		}
	}

	if s.mailer != nil {
		if err := s.mailer.SendRenewalConfirmation(ctx, acc.Email, acc.Name, req.RenewalMonths, res.Amount, res.NewEndDate); err != nil {
			logger.WithError(err).Warn("renewal email not queued", "user_id", req.UserID)
		}
	}
}

func (s *service) History(ctx context.Context, userID int) ([]Renewal, error) {
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListRenewals(ctx, userID)
}
