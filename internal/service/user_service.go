package service

import (
	"log"

	"jetsetgo/internal/apperrors"
	"jetsetgo/internal/auth"
	"jetsetgo/internal/db"
	"jetsetgo/internal/entities"
	"jetsetgo/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(req *entities.SignupRequest) (int, error)
	Login(req *entities.LoginRequest) (*entities.LoginResponse, error)
	GetUserByEmail(email string) (*entities.UserProfile, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates a user with a bcrypt-hashed password. The email lookup
// runs first so an existing account is reported without touching the
// password at all.
func (s *userService) Register(req *entities.SignupRequest) (int, error) {
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &db.User{
		Name:     req.Name,
		Age:      *req.Age,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hash),
	}
	return s.repo.Create(user)
}

// Login distinguishes an unknown email from a wrong password so the client
// can prompt for signup instead of a retry.
func (s *userService) Login(req *entities.LoginRequest) (*entities.LoginResponse, error) {
	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrEmailNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	resp := &entities.LoginResponse{
		UserID: user.ID,
		Name:   user.Name,
		Age:    user.Age,
		Email:  user.Email,
		Phone:  user.Phone,
	}

	token, err := auth.IssueToken(user.ID, user.Email)
	if err != nil {
		// Login still succeeds; the client falls back to email-identified calls.
		log.Printf("could not issue session token for %s: %v", user.Email, err)
	} else {
		resp.Token = token
	}
	return resp, nil
}

func (s *userService) GetUserByEmail(email string) (*entities.UserProfile, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrEmailNotFound
	}
	return &entities.UserProfile{
		Name:  user.Name,
		Age:   user.Age,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}
