package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/turf-kings/models"
	"golang.org/x/crypto/bcrypt"
)

// AccessService maps an access code to the role it unlocks. The tournament
// core never sees codes; only the HTTP layer asks this service.
type AccessService interface {
	Login(ctx context.Context, code string) (models.UserRole, error)
}

type accessCode struct {
	hash []byte
	role models.UserRole
}

type accessService struct {
	codes []accessCode
}

// NewAccessService hashes the configured codes once at startup.
func NewAccessService(adminCode string, captainCodes []string) (AccessService, error) {
	if strings.TrimSpace(adminCode) == "" {
		return nil, errors.New("admin code is required")
	}
	s := &accessService{}
	if err := s.add(adminCode, models.RoleAdmin); err != nil {
		return nil, err
	}
	admin := strings.TrimSpace(adminCode)
	for _, code := range captainCodes {
		code = strings.TrimSpace(code)
		if code == "" || code == admin {
			continue
		}
		if err := s.add(code, models.RoleCaptain); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *accessService) add(code string, role models.UserRole) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(code)), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash %s code: %w", role, err)
	}
	s.codes = append(s.codes, accessCode{hash: hash, role: role})
	return nil
}

// Login returns the role of the first matching code. The admin code is
// checked first, so it wins over a captain code with the same value.
func (s *accessService) Login(ctx context.Context, code string) (models.UserRole, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrInvalidAccessCode
	}
	for _, c := range s.codes {
		err := bcrypt.CompareHashAndPassword(c.hash, []byte(code))
		if err == nil {
			return c.role, nil
		}
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", fmt.Errorf("failed to compare access code: %w", err)
		}
	}
	return "", ErrInvalidAccessCode
}
