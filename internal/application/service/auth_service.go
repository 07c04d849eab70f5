package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/karibugroceries/karibu-api/internal/domain/entity"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/pkg/apperror"
	"github.com/karibugroceries/karibu-api/pkg/utils"
)

// placeholderContact is assigned to every session user; real contact details
// are not collected at login.
const placeholderContact = "+256 700 000 000"

// AuthService handles the name/role/branch login flow. There are no
// credentials: a session user is constructed from the selection and travels
// in a signed token for the session's lifetime.
type AuthService struct {
	jwtManager    *utils.JWTManager
	defaultBranch enum.Branch
}

// NewAuthService creates a new auth service
func NewAuthService(jwtManager *utils.JWTManager, defaultBranch enum.Branch) *AuthService {
	return &AuthService{jwtManager: jwtManager, defaultBranch: defaultBranch}
}

// LoginInput holds the login selection
type LoginInput struct {
	Name   string
	Role   enum.UserRole
	Branch enum.Branch
}

// LoginResult holds the session user and its signed token
type LoginResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// Login constructs a session user from the selection. Directors work across
// branches and are assigned the default branch; everyone else must pick one.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 2 {
		return nil, apperror.NewFieldError("name", "Name must be at least 2 characters")
	}
	if !input.Role.IsValid() {
		return nil, apperror.NewFieldError("role", "Unknown role")
	}

	branch := input.Branch
	if input.Role == enum.RoleDirector {
		branch = s.defaultBranch
	} else if !branch.IsValid() {
		return nil, apperror.NewFieldError("branch", "Please select a branch")
	}

	user := &entity.User{
		ID:      fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Name:    name,
		Role:    input.Role,
		Branch:  branch,
		Contact: placeholderContact,
	}

	token, err := s.jwtManager.GenerateSessionToken(user.ID, user.Name, user.Role, user.Branch)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}

// UserFromClaims reconstructs the session user from validated token claims
func (s *AuthService) UserFromClaims(claims *utils.SessionClaims) *entity.User {
	return &entity.User{
		ID:      claims.Subject,
		Name:    claims.Name,
		Role:    claims.Role,
		Branch:  claims.Branch,
		Contact: placeholderContact,
	}
}
