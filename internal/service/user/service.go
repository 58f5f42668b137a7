package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/garudasec/billing-backend-go/internal/domain/user"
)

// UserService manages back-office accounts. Only admins reach these
// operations; the middleware enforces that.
type UserService interface {
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	GetUser(ctx context.Context, id string) (user.UserResponse, error)
	ListUsers(ctx context.Context) ([]user.UserResponse, error)
	SetUserActive(ctx context.Context, id string, active bool) error
}

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(u), nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, len(users))
	for i, u := range users {
		responses[i] = toUserResponse(u)
	}
	return responses, nil
}

func (s *UserServiceImpl) SetUserActive(ctx context.Context, id string, active bool) error {
	return s.userRepo.SetActive(ctx, id, active)
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
