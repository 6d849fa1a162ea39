// Package registry implements the admin endpoints that mint experiment
// tokens and list registered experiments.
package registry

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// ErrEmptyName is returned when an experiment is created without a name.
var ErrEmptyName = errors.New("experiment name must not be empty")

const (
	dbPrefix       = "sqlrest_"
	passwordLength = 24
)

var whitespace = regexp.MustCompile(`\s`)

// Service registers experiments and hands out their tokens.
type Service struct {
	repo    ports.ExperimentRepository
	entropy io.Reader
	now     func() time.Time
}

func NewService(repo ports.ExperimentRepository) *Service {
	return &Service{
		repo:    repo,
		entropy: rand.Reader,
		now:     time.Now,
	}
}

// Create registers a new experiment and returns its token.
func (s *Service) Create(ctx context.Context, name string) (*domain.CreatedExperiment, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	token, err := s.randomHex()
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	password, err := s.randomHex()
	if err != nil {
		return nil, fmt.Errorf("generating password: %w", err)
	}

	dbName := DatabaseName(name)
	reg := &domain.Registration{
		ID:         uuid.New().String(),
		Name:       name,
		Token:      token,
		DBName:     dbName,
		DBUser:     dbName,
		DBPassword: password[:passwordLength],
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	return &domain.CreatedExperiment{Name: reg.Name, Token: reg.Token}, nil
}

// List returns every registered experiment in registration order.
func (s *Service) List(ctx context.Context) ([]domain.Experiment, error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Experiment, 0, len(regs))
	for _, r := range regs {
		out = append(out, r.Record())
	}
	return out, nil
}

// DatabaseName derives the per-experiment database and user name.
func DatabaseName(experiment string) string {
	return dbPrefix + whitespace.ReplaceAllString(experiment, "_")
}

// randomHex returns the sha256 of 32 random bytes, hex encoded.
func (s *Service) randomHex() (string, error) {
	buf := make([]byte, 32)
	if _, err := io.ReadFull(s.entropy, buf); err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}
