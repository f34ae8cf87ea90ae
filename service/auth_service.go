package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/blogkit/core"
	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/utils"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo core.UserRepositoryInterface
	config   *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo core.UserRepositoryInterface, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, config: cfg}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profile_picture"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"` // dùng khi không có email
	Password string `json:"password"`
}

// LoginResponse represents login response
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a new user account
func (s *AuthService) Register(req RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if err := utils.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := utils.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := utils.ValidatePassword(req.Password, s.config.Password); err != nil {
		return nil, err
	}

	// Check if email/username already exists
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, apperror.Conflict("duplicate_user", "Email already exists").WithField("email", "Email already exists")
	} else if !isNotFound(err) {
		return nil, apperror.Server(err, "failed to check email")
	}
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, apperror.Conflict("duplicate_user", "Username already exists").WithField("username", "Username already exists")
	} else if !isNotFound(err) {
		return nil, apperror.Server(err, "failed to check username")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Server(err, "failed to hash password")
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		Password:       hashedPassword,
		ProfilePicture: strings.TrimSpace(req.ProfilePicture),
	}
	if err := s.userRepo.Create(user); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("duplicate_user", "User already exists")
		}
		return nil, apperror.Server(err, "failed to create user")
	}
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if (email == "" && username == "") || req.Password == "" {
		return nil, apperror.Validation("Email (or username) and password are required", nil)
	}

	var user *models.User
	var err error
	if email != "" {
		user, err = s.userRepo.GetByEmail(email)
	} else {
		user, err = s.userRepo.GetByUsername(username)
	}
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Server(err, "failed to login")
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Username, s.config.JWT.Secret, s.config.JWT.Expiration)
	if err != nil {
		return nil, apperror.Server(err, "failed to generate token")
	}

	return &LoginResponse{Token: token, User: user}, nil
}

// Profile trả về thông tin user đang đăng nhập
func (s *AuthService) Profile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Server(err, "failed to get user")
	}
	return user, nil
}
