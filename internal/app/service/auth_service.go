package service

import (
	"context"
	"errors"

	"easytasks/internal/core/domain"
	"easytasks/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	tokens         ports.TokenManager
}

func NewAuthService(userRepository ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenManager) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, string, error) {
	exists, err := s.userRepository.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return domain.User{}, "", err
	}
	if exists {
		return domain.User{}, "", domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.userRepository.Create(ctx, domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.userRepository.GetByUsername(ctx, username)
	if err != nil {
		// An unknown username answers exactly like a bad password.
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

var _ ports.AuthService = (*AuthService)(nil)
