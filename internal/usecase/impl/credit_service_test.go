package impl

import (
	"context"
	"testing"

	"inador/internal/domain/constants"
	"inador/internal/domain/entity"
	domainerrors "inador/internal/domain/errors"
	"inador/internal/domain/repository"
	mockRepo "inador/internal/mocks/repository"
	mockService "inador/internal/mocks/service"
	"inador/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// creditServiceFixtures holds all test dependencies for credit service tests.
type creditServiceFixtures struct {
	service     usecase.CreditUsecase
	accountRepo *mockRepo.MockAccountRepository
	qrcode      *mockService.MockQRCodeService
}

func createTestCreditService(t *testing.T) creditServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)
	service := NewCreditService(accountRepo, qrcode, newTestConfig(), newTestLogger())

	return creditServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		qrcode:      qrcode,
	}
}

func verifiedSession(uid string, credits int) *entity.Session {
	sess := entity.NewSession("sess-" + uid)
	sess.Attach(&entity.Identity{UID: uid, Email: uid + "@example.com"})
	sess.Credits = credits

	return sess
}

func TestCreditService_LoadOrCreateAccount_Existing(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	existing := &entity.Account{ID: "uid-1", Credits: 42}

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(existing, nil)

	account, err := fx.service.LoadOrCreateAccount(ctx, &entity.Identity{UID: "uid-1"})
	require.NoError(t, err)
	assert.Equal(t, 42, account.Credits)
}

func TestCreditService_LoadOrCreateAccount_CreatesWithStartingBalance(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-new").
		Return(nil, repository.ErrAccountNotFound)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, "uid-new", account.ID)
			assert.Equal(t, constants.StartingCredits, account.Credits)
			assert.True(t, account.IsAnonymous)
		}).
		Return(nil)

	account, err := fx.service.LoadOrCreateAccount(ctx, &entity.Identity{UID: "uid-new", Anonymous: true})
	require.NoError(t, err)
	assert.Equal(t, constants.StartingCredits, account.Credits)
}

func TestCreditService_Debit_Success(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 10)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", -3).
		Return(nil)

	err := fx.service.Debit(ctx, sess, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, sess.Credits)
}

func TestCreditService_Debit_InsufficientCredits(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 2)

	err := fx.service.Debit(ctx, sess, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientCredits))
	// No repository call was made, the session is untouched.
	assert.Equal(t, 2, sess.Credits)
}

func TestCreditService_Debit_PersistenceFailureLeavesSessionUntouched(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 10)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", -5).
		Return(errors.New("connection reset"))

	err := fx.service.Debit(ctx, sess, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceFailed))
	assert.Equal(t, 10, sess.Credits)
}

func TestCreditService_Credit_Success(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 5)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", 7).
		Return(nil)

	err := fx.service.Credit(ctx, sess, 7)
	require.NoError(t, err)
	assert.Equal(t, 12, sess.Credits)
}

func TestCreditService_SetCreditsTo_Success(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 5)

	fx.accountRepo.EXPECT().
		SetCredits(ctx, "uid-1", 0).
		Return(nil)

	err := fx.service.SetCreditsTo(ctx, sess, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.Credits)
}

func TestCreditService_RecordLogin_SkipsAnonymousIdentity(t *testing.T) {
	fx := createTestCreditService(t)

	err := fx.service.RecordLogin(context.Background(), &entity.Identity{UID: "uid-1", Anonymous: true})
	require.NoError(t, err)
	// No UpdateProfile expectation was registered; the mock would fail on a call.
}

func TestCreditService_RecordLogin_Verified(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		UpdateProfile(ctx, "uid-1", "uid-1@example.com", mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.RecordLogin(ctx, &entity.Identity{UID: "uid-1", Email: "uid-1@example.com"})
	require.NoError(t, err)
}

func TestCreditService_ClaimStarterCredits_Success(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 0)
	sess.StarterCreditsAvailable = true

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", constants.StarterBonusCredits).
		Return(nil)

	fx.accountRepo.EXPECT().
		SetStarterCreditsAvailable(ctx, "uid-1", false).
		Return(nil)

	fx.qrcode.EXPECT().
		GenerateBase64("https://buy.example.com/starter").
		Return("base64-png", nil)

	claim, err := fx.service.ClaimStarterCredits(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, constants.StarterBonusCredits, claim.Credits)
	assert.Equal(t, "https://buy.example.com/starter", claim.CheckoutURL)
	assert.Equal(t, "base64-png", claim.QRCodeBase64)
	assert.False(t, sess.StarterCreditsAvailable)
}

func TestCreditService_ClaimStarterCredits_Unavailable(t *testing.T) {
	fx := createTestCreditService(t)

	sess := verifiedSession("uid-1", 0)

	_, err := fx.service.ClaimStarterCredits(context.Background(), sess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStarterBonusUnavailable))
	assert.Equal(t, 0, sess.Credits)
}

func TestCreditService_ClaimStarterCredits_RequiresVerifiedIdentity(t *testing.T) {
	fx := createTestCreditService(t)

	sess := entity.NewSession("sess-anon")
	sess.Attach(&entity.Identity{UID: "uid-anon", Anonymous: true})
	sess.StarterCreditsAvailable = true

	_, err := fx.service.ClaimStarterCredits(context.Background(), sess)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
}

// A fresh account starts with 10 credits and can spend exactly ten single
// debits before the eleventh is rejected without touching anything.
func TestCreditService_NewAccountSpendsThroughExhaustion(t *testing.T) {
	fx := createTestCreditService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", constants.StartingCredits)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", -1).
		Return(nil).
		Times(constants.StartingCredits)

	for i := 0; i < constants.StartingCredits; i++ {
		require.NoError(t, fx.service.Debit(ctx, sess, 1))
	}
	assert.Equal(t, 0, sess.Credits)

	err := fx.service.Debit(ctx, sess, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientCredits))
	assert.Equal(t, 0, sess.Credits)
}
