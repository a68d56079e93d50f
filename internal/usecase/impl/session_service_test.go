package impl

import (
	"context"
	"testing"

	"inador/internal/domain/constants"
	"inador/internal/domain/entity"
	domainerrors "inador/internal/domain/errors"
	"inador/internal/domain/repository"
	"inador/internal/domain/service"
	mockRepo "inador/internal/mocks/repository"
	mockService "inador/internal/mocks/service"
	"inador/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	desktopUserAgent = "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/142.0"
	mobileUserAgent  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
// The credit usecase is the real implementation backed by the account repo
// mock, so bootstrap exercises the actual account load path.
type sessionServiceFixtures struct {
	service          usecase.SessionUsecase
	identityProvider *mockService.MockIdentityProvider
	actionStore      *mockService.MockActionStore
	accountRepo      *mockRepo.MockAccountRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	identityProvider := mockService.NewMockIdentityProvider(t)
	actionStore := mockService.NewMockActionStore(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	cfg := newTestConfig()
	creditUsecase := NewCreditService(accountRepo, nil, cfg, newTestLogger())
	service := NewSessionService(identityProvider, actionStore, creditUsecase, cfg, newTestLogger())

	return sessionServiceFixtures{
		service:          service,
		identityProvider: identityProvider,
		actionStore:      actionStore,
		accountRepo:      accountRepo,
	}
}

func TestSessionService_Bootstrap_Unauthenticated(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")

	fx.actionStore.EXPECT().
		RedirectInProgress(ctx, "sess-1").
		Return(false, nil)

	result, err := fx.service.Bootstrap(ctx, sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{})
	require.NoError(t, err)
	assert.Nil(t, result.Session.Identity)
	assert.Nil(t, result.PendingAction)
	assert.Equal(t, entity.SessionUnauthenticated, sess.State)
}

func TestSessionService_Bootstrap_VerifiedTokenLoadsAccountAndPendingAction(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")
	identity := &entity.Identity{UID: "uid-1", Email: "uid-1@example.com"}

	fx.actionStore.EXPECT().
		RedirectInProgress(ctx, "sess-1").
		Return(false, nil)

	fx.identityProvider.EXPECT().
		Verify(mock.Anything, "token-1").
		Return(identity, nil)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(&entity.Account{ID: "uid-1", Credits: 30, StarterCreditsAvailable: true}, nil)

	fx.accountRepo.EXPECT().
		UpdateProfile(ctx, "uid-1", "uid-1@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.actionStore.EXPECT().
		TakePendingAction(ctx, "sess-1").
		Return(&entity.PendingAction{Kind: entity.PendingActionInvoke, Target: "generate"}, nil)

	result, err := fx.service.Bootstrap(ctx, sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{IDToken: "token-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionVerified, sess.State)
	assert.Equal(t, 30, sess.Credits)
	assert.True(t, sess.StarterCreditsAvailable)
	require.NotNil(t, result.PendingAction)
	assert.Equal(t, "generate", result.PendingAction.Target)
}

func TestSessionService_Bootstrap_AnonymousIdentitySkipsPendingAction(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")

	fx.actionStore.EXPECT().
		RedirectInProgress(ctx, "sess-1").
		Return(false, nil)

	fx.identityProvider.EXPECT().
		Verify(mock.Anything, "anon-token").
		Return(&entity.Identity{UID: "uid-anon", Anonymous: true}, nil)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-anon").
		Return(nil, repository.ErrAccountNotFound)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	result, err := fx.service.Bootstrap(ctx, sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{IDToken: "anon-token"})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionAnonymous, sess.State)
	assert.Equal(t, constants.StartingCredits, sess.Credits)
	// An anonymous session neither records a login nor consumes the action.
	assert.Nil(t, result.PendingAction)
}

func TestSessionService_Bootstrap_RejectedTokenContinuesUnauthenticated(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")

	fx.actionStore.EXPECT().
		RedirectInProgress(ctx, "sess-1").
		Return(false, nil)

	fx.identityProvider.EXPECT().
		Verify(mock.Anything, "stale-token").
		Return(nil, errors.Wrap(service.ErrTokenInvalid, "expired"))

	result, err := fx.service.Bootstrap(ctx, sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{IDToken: "stale-token"})
	require.NoError(t, err)
	assert.Nil(t, result.Session.Identity)
}

func TestSessionService_Bootstrap_RedirectTokenResolved(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")
	identity := &entity.Identity{UID: "uid-1", Email: "uid-1@example.com"}

	fx.identityProvider.EXPECT().
		Verify(mock.Anything, "redirect-token").
		Return(identity, nil)

	fx.actionStore.EXPECT().
		ClearRedirectInProgress(ctx, "sess-1").
		Return(nil)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(&entity.Account{ID: "uid-1", Credits: 10}, nil)

	fx.accountRepo.EXPECT().
		UpdateProfile(ctx, "uid-1", "uid-1@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.actionStore.EXPECT().
		TakePendingAction(ctx, "sess-1").
		Return(nil, nil)

	result, err := fx.service.Bootstrap(ctx, sess, entity.ClientProfile{UserAgent: mobileUserAgent}, service.Credentials{RedirectToken: "redirect-token"})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionVerified, sess.State)
	assert.Nil(t, result.PendingAction)
}

func TestSessionService_Bootstrap_AbandonedRedirectReportsFailure(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")

	fx.actionStore.EXPECT().
		RedirectInProgress(ctx, "sess-1").
		Return(true, nil)

	fx.actionStore.EXPECT().
		ClearRedirectInProgress(ctx, "sess-1").
		Return(nil)

	_, err := fx.service.Bootstrap(ctx, sess, entity.ClientProfile{UserAgent: mobileUserAgent}, service.Credentials{FailureCode: "unauthorized-domain"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.VerificationMessage("unauthorized-domain").Message(), appErr.Message())
}

func TestSessionService_Bootstrap_FailedRedirectVerificationMapped(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")

	fx.identityProvider.EXPECT().
		Verify(mock.Anything, "redirect-token").
		Return(nil, errors.Wrap(service.ErrNetworkRequestFailed, "dns failure"))

	fx.actionStore.EXPECT().
		ClearRedirectInProgress(ctx, "sess-1").
		Return(nil)

	_, err := fx.service.Bootstrap(ctx, sess, entity.ClientProfile{UserAgent: mobileUserAgent}, service.Credentials{RedirectToken: "redirect-token"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.VerificationMessage("network-request-failed").Message(), appErr.Message())
}

func TestSessionService_EnsureVerifiedIdentity_AlreadyVerified(t *testing.T) {
	fx := createTestSessionService(t)

	sess := verifiedSession("uid-1", 5)

	identity, err := fx.service.EnsureVerifiedIdentity(context.Background(), sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
}

func TestSessionService_EnsureVerifiedIdentity_ConstrainedClientStartsRedirect(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")

	fx.actionStore.EXPECT().
		MarkRedirectInProgress(ctx, "sess-1").
		Return(nil)

	_, err := fx.service.EnsureVerifiedIdentity(ctx, sess, entity.ClientProfile{UserAgent: mobileUserAgent}, service.Credentials{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrRedirectStarted))
}

func TestSessionService_EnsureVerifiedIdentity_DesktopWithoutTokenRequiresAuth(t *testing.T) {
	fx := createTestSessionService(t)

	sess := entity.NewSession("sess-1")

	_, err := fx.service.EnsureVerifiedIdentity(context.Background(), sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
}

func TestSessionService_EnsureVerifiedIdentity_FailureCodeMapped(t *testing.T) {
	fx := createTestSessionService(t)

	sess := entity.NewSession("sess-1")

	_, err := fx.service.EnsureVerifiedIdentity(context.Background(), sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{FailureCode: "popup-closed-by-user"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.VerificationMessage("popup-closed-by-user").Message(), appErr.Message())
}

func TestSessionService_EnsureVerifiedIdentity_PopupBlockedMapped(t *testing.T) {
	fx := createTestSessionService(t)

	sess := entity.NewSession("sess-1")

	fx.identityProvider.EXPECT().
		Verify(mock.Anything, "token-1").
		Return(nil, errors.Wrap(service.ErrPopupBlocked, "blocked"))

	_, err := fx.service.EnsureVerifiedIdentity(context.Background(), sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{IDToken: "token-1"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.VerificationMessage("popup-blocked").Message(), appErr.Message())
}

// An anonymous session upgrading to verified keeps its uid and therefore its
// account record and balance.
func TestSessionService_EnsureVerifiedIdentity_UpgradeKeepsBalance(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := entity.NewSession("sess-1")
	sess.Attach(&entity.Identity{UID: "uid-1", Anonymous: true})
	sess.Credits = 7

	fx.identityProvider.EXPECT().
		Verify(mock.Anything, "token-1").
		Return(&entity.Identity{UID: "uid-1", Email: "uid-1@example.com"}, nil)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(&entity.Account{ID: "uid-1", Credits: 7}, nil)

	fx.accountRepo.EXPECT().
		UpdateProfile(ctx, "uid-1", "uid-1@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)

	identity, err := fx.service.EnsureVerifiedIdentity(ctx, sess, entity.ClientProfile{UserAgent: desktopUserAgent}, service.Credentials{IDToken: "token-1"})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.True(t, sess.Verified())
	assert.Equal(t, 7, sess.Credits)
}

func TestSessionService_RecordPendingAction_RejectsInvalidAction(t *testing.T) {
	fx := createTestSessionService(t)

	err := fx.service.RecordPendingAction(context.Background(), "sess-1", &entity.PendingAction{Kind: "unknown", Target: "x"}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSessionService_RecordPendingAction_Saves(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	action := &entity.PendingAction{Kind: entity.PendingActionNavigate, Target: "/pricing"}

	fx.actionStore.EXPECT().
		SavePendingAction(ctx, "sess-1", action, true).
		Return(nil)

	err := fx.service.RecordPendingAction(ctx, "sess-1", action, true)
	require.NoError(t, err)
}

func TestSessionService_SignOut_ClearsLocalState(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 12)

	fx.identityProvider.EXPECT().
		Revoke(ctx, "uid-1").
		Return(nil)

	fx.actionStore.EXPECT().
		ClearRedirectInProgress(ctx, sess.ID).
		Return(nil)

	err := fx.service.SignOut(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionUnauthenticated, sess.State)
	assert.Nil(t, sess.Identity)
	assert.Equal(t, 0, sess.Credits)
}

func TestSessionService_SignOut_RevocationFailureDoesNotBlock(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 12)

	fx.identityProvider.EXPECT().
		Revoke(ctx, "uid-1").
		Return(errors.New("provider unreachable"))

	fx.actionStore.EXPECT().
		ClearRedirectInProgress(ctx, sess.ID).
		Return(nil)

	err := fx.service.SignOut(ctx, sess)
	require.NoError(t, err)
	assert.Nil(t, sess.Identity)
}
