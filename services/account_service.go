package services

import (
	"shopkart/models"
	"shopkart/repositories"
)

// AccountService handles registration and login. The server stays
// stateless: no session token is issued, the client remembers the
// authenticated identity itself.
type AccountService struct {
	userRepo *repositories.UserRepository
}

func NewAccountService(store *repositories.FileStore) *AccountService {
	return &AccountService{
		userRepo: repositories.NewUserRepository(store),
	}
}

func (s *AccountService) Register(req models.RegisterRequest) (models.UserSummary, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.UserSummary{}, ErrMissingField
	}

	user, err := s.userRepo.Create(models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return models.UserSummary{}, err
	}

	return models.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *AccountService) Login(req models.LoginRequest) (models.UserProfile, error) {
	user, found, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return models.UserProfile{}, err
	}
	if !found || user.Password != req.Password {
		return models.UserProfile{}, ErrInvalidCredentials
	}

	return models.UserProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}
