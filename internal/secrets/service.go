// Package secrets stores named secret values sealed at rest.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	dErrors "cardwise/pkg/domain-errors"
	"cardwise/pkg/platform/sentinel"
)

const maxNameLength = 128

// Backend persists sealed blobs by name.
type Backend interface {
	// Put stores sealed, replacing any prior value.
	Put(ctx context.Context, name string, sealed []byte) error
	// Get returns sentinel.ErrNotFound when no value exists.
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes the value; a missing value is not an error.
	Delete(ctx context.Context, name string) error
}

// Service saves, reads and deletes named secrets.
type Service struct {
	backend Backend
	sealer  *Sealer
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(backend Backend, sealer *Sealer, opts ...Option) (*Service, error) {
	if backend == nil {
		return nil, errors.New("secret backend is required")
	}
	if sealer == nil {
		return nil, errors.New("sealer is required")
	}
	svc := &Service{backend: backend, sealer: sealer}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "secret name cannot be empty")
	}
	if len(name) > maxNameLength {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("secret name exceeds %d bytes", maxNameLength))
	}
	return nil
}

// Save stores value under name, overwriting any previous value.
func (s *Service) Save(ctx context.Context, name, value string) error {
	if err := validateName(name); err != nil {
		return err
	}
	sealed, err := s.sealer.Seal(name, []byte(value))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seal secret")
	}
	if err := s.backend.Put(ctx, name, sealed); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save secret")
	}
	s.audit(ctx, "secret_saved", name)
	return nil
}

// Read returns the value stored under name.
func (s *Service) Read(ctx context.Context, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	sealed, err := s.backend.Get(ctx, name)
	if errors.Is(err, sentinel.ErrNotFound) {
		return "", dErrors.Wrap(err, dErrors.CodeNotFound, "secret not found")
	}
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read secret")
	}
	plaintext, err := s.sealer.Open(name, sealed)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to open secret")
	}
	return string(plaintext), nil
}

// Delete removes name. Deleting a missing secret succeeds.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.backend.Delete(ctx, name); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete secret")
	}
	s.audit(ctx, "secret_deleted", name)
	return nil
}

func (s *Service) audit(ctx context.Context, event, name string) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, event, "secret", name, "log_type", "audit")
	}
}
