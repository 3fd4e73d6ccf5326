package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/domain/password"
)

const maxPasswordLength = 256

type PasswordService struct {
	defaultPolicy string
}

func NewPasswordService(defaultPolicy string) *PasswordService {
	defaultPolicy = strings.TrimSpace(defaultPolicy)
	if defaultPolicy == "" {
		defaultPolicy = password.PolicyBasic
	}
	return &PasswordService{defaultPolicy: defaultPolicy}
}

func (s *PasswordService) DefaultPolicy() string {
	return s.defaultPolicy
}

// Check grades a password under the named policy, or the service default
// when policy is empty. The password itself is never logged.
func (s *PasswordService) Check(ctx context.Context, policy, pw string) (password.Result, error) {
	_, span := startUsecaseSpan(ctx, "usecase.PasswordService.Check")
	defer span.End()

	if len(pw) > maxPasswordLength {
		return password.Result{}, invalidInput("password longer than %d bytes", maxPasswordLength)
	}
	if strings.TrimSpace(policy) == "" {
		policy = s.defaultPolicy
	}

	p, err := password.PolicyByName(policy)
	if err != nil {
		return password.Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p.Validate(pw), nil
}
