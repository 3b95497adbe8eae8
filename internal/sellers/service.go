// Package sellers handles seller applications and their review.
package sellers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bissquit/auctionhub/internal/domain"
	"github.com/bissquit/auctionhub/internal/pkg/ctxlog"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service implements seller application logic.
type Service struct {
	repo      Repository
	validator *validator.Validate
	now       func() time.Time
}

// NewService creates a new seller application service.
func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		validator: NewValidator(),
		now:       time.Now,
	}
}

// Submit validates and stores an application from the session user submittedBy.
func (s *Service) Submit(ctx context.Context, input ApplicationInput, submittedBy string) (*domain.SellerApplication, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.Background = strings.TrimSpace(input.Background)

	if err := Validate(s.validator, input); err != nil {
		return nil, err
	}

	app := &domain.SellerApplication{
		ID:            uuid.NewString(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Username:      input.Username,
		Email:         input.Email,
		Phone:         input.Phone,
		Category:      input.Category,
		Background:    input.Background,
		AgreesToTerms: input.AgreesToTerms,
		SubmittedBy:   submittedBy,
		Status:        domain.ApplicationStatusPending,
		SubmittedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	ctxlog.FromContext(ctx).Info("seller application submitted",
		"application_id", app.ID,
		"category", app.Category,
	)
	return app, nil
}

// List returns applications matching filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.SellerApplication, error) {
	apps, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// Approve accepts a pending application.
func (s *Service) Approve(ctx context.Context, id string) (*domain.SellerApplication, error) {
	return s.review(ctx, id, domain.ApplicationStatusApproved)
}

// Reject declines a pending application.
func (s *Service) Reject(ctx context.Context, id string) (*domain.SellerApplication, error) {
	return s.review(ctx, id, domain.ApplicationStatusRejected)
}

func (s *Service) review(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.SellerApplication, error) {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status.IsFinal() {
		return nil, ErrAlreadyReviewed
	}

	reviewedAt := s.now()
	app.Status = status
	app.ReviewedAt = &reviewedAt
	if err := s.repo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	ctxlog.FromContext(ctx).Info("seller application reviewed",
		"application_id", app.ID,
		"status", app.Status,
	)
	return app, nil
}
