package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dpetrovs/userreg/internal/common"
	"github.com/dpetrovs/userreg/internal/cryptox"
	"github.com/dpetrovs/userreg/internal/logging"
	"github.com/dpetrovs/userreg/internal/secretx"
	"github.com/google/uuid"
)

// Service owns the registration use case. It holds no per-request
// state, so arbitrarily many registrations may run concurrently.
type Service struct {
	repo   Repository
	hasher cryptox.Hasher
	logger logging.Logger
}

func NewService(repo Repository, hasher cryptox.Hasher, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger.With("module", "users"),
	}
}

// Register hashes the secret, then persists the user. Hash-before-
// persist is an invariant: storage only ever sees the derived hash,
// and a hashing failure aborts before any durable side effect. The
// plaintext is wiped as soon as hashing completes, success or not.
// Failures pass through unchanged; there are no retries and nothing
// to compensate.
func (s *Service) Register(ctx context.Context, username, email string, secret *secretx.Secret) error {
	s.logger.Info(ctx, "registering user", "username", username)

	hash, err := s.hasher.Hash(secret)
	secret.Zero()
	if err != nil {
		if errors.Is(err, common.ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	if err := s.repo.Create(ctx, username, email, hash); err != nil {
		return err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, username, email string) error {
	return s.repo.Update(ctx, id, username, email)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id)
}
