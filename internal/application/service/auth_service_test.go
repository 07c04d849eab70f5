package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/pkg/apperror"
	"github.com/karibugroceries/karibu-api/pkg/utils"
)

func newTestAuthService() *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(jwtManager, enum.BranchMaganjo)
}

func TestLoginCreatesSessionUser(t *testing.T) {
	svc := newTestAuthService()

	result, err := svc.Login(context.Background(), &LoginInput{
		Name:   "Mary Nalubega",
		Role:   enum.RoleSalesAgent,
		Branch: enum.BranchMatugga,
	})
	require.NoError(t, err)

	assert.Equal(t, "Mary Nalubega", result.User.Name)
	assert.Equal(t, enum.RoleSalesAgent, result.User.Role)
	assert.Equal(t, enum.BranchMatugga, result.User.Branch)
	assert.NotEmpty(t, result.User.ID)
	assert.NotEmpty(t, result.Token)
}

func TestLoginDirectorGetsDefaultBranch(t *testing.T) {
	svc := newTestAuthService()

	// directors work across branches, so the selection is ignored
	result, err := svc.Login(context.Background(), &LoginInput{
		Name:   "Grace Auma",
		Role:   enum.RoleDirector,
		Branch: enum.BranchMatugga,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.BranchMaganjo, result.User.Branch)
}

func TestLoginRejectsShortName(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), &LoginInput{
		Name:   " J ",
		Role:   enum.RoleManager,
		Branch: enum.BranchMaganjo,
	})
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), &LoginInput{
		Name:   "David Kato",
		Role:   enum.UserRole("accountant"),
		Branch: enum.BranchMaganjo,
	})
	assert.Error(t, err)
}

func TestLoginRequiresBranchForNonDirectors(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), &LoginInput{
		Name: "David Kato",
		Role: enum.RoleManager,
	})
	assert.Error(t, err)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(jwtManager, enum.BranchMaganjo)

	result, err := svc.Login(context.Background(), &LoginInput{
		Name:   "James Okello",
		Role:   enum.RoleManager,
		Branch: enum.BranchMatugga,
	})
	require.NoError(t, err)

	claims, err := jwtManager.ValidateSessionToken(result.Token)
	require.NoError(t, err)

	user := svc.UserFromClaims(claims)
	assert.Equal(t, result.User.ID, user.ID)
	assert.Equal(t, "James Okello", user.Name)
	assert.Equal(t, enum.RoleManager, user.Role)
	assert.Equal(t, enum.BranchMatugga, user.Branch)
}
