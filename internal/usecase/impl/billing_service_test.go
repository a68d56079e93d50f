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

// billingServiceFixtures holds all test dependencies for billing service tests.
type billingServiceFixtures struct {
	service     usecase.BillingUsecase
	gateway     *mockService.MockPaymentGateway
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
	qrcode      *mockService.MockQRCodeService
}

func createTestBillingService(t *testing.T) billingServiceFixtures {
	gateway := mockService.NewMockPaymentGateway(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)
	service := NewBillingService(gateway, txManager, qrcode, newTestConfig(), newTestLogger())

	return billingServiceFixtures{
		service:     service,
		gateway:     gateway,
		txManager:   txManager,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		qrcode:      qrcode,
	}
}

// passThroughExecute makes the transaction manager run the unit of work
// against the fixture's repository mocks, the way a live transaction would.
func (fx billingServiceFixtures) passThroughExecute(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(fx.accountRepo).Maybe()
	factory.EXPECT().LedgerRepo().Return(fx.ledgerRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestBillingService_CreateCheckoutSession_Success(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 0)

	fx.gateway.EXPECT().
		CreateCheckoutSession(ctx, mock.AnythingOfType("*service.CheckoutSessionInput")).
		Run(func(_ context.Context, input *service.CheckoutSessionInput) {
			assert.Equal(t, "price_123", input.PriceID)
			assert.Equal(t, "uid-1", input.UID)
			assert.Equal(t, "http://127.0.0.1:5500/inador/index.html?checkout=success", input.SuccessURL)
			assert.Equal(t, "http://127.0.0.1:5500/inador/index.html?checkout=cancel", input.CancelURL)
		}).
		Return(&service.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}, nil)

	fx.qrcode.EXPECT().
		GenerateBase64("https://checkout.example.com/cs_1").
		Return("qr-data", nil)

	result, err := fx.service.CreateCheckoutSession(ctx, sess, &usecase.CheckoutInput{PriceID: "price_123"})
	require.NoError(t, err)
	assert.Equal(t, "cs_1", result.SessionID)
	assert.Equal(t, "https://checkout.example.com/cs_1", result.URL)
	assert.Equal(t, "qr-data", result.QRCodeBase64)
}

func TestBillingService_CreateCheckoutSession_RequiresVerifiedIdentity(t *testing.T) {
	fx := createTestBillingService(t)

	sess := entity.NewSession("sess-1")
	sess.Attach(&entity.Identity{UID: "uid-anon", Anonymous: true})

	_, err := fx.service.CreateCheckoutSession(context.Background(), sess, &usecase.CheckoutInput{PriceID: "price_123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
	// The gateway mock carries no expectations; reaching it would fail the test.
}

func TestBillingService_CreateCheckoutSession_NotConfigured(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewBillingService(nil, txManager, nil, newTestConfig(), newTestLogger())

	sess := verifiedSession("uid-1", 0)

	_, err := service.CreateCheckoutSession(context.Background(), sess, &usecase.CheckoutInput{PriceID: "price_123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotConfigured))
}

func TestBillingService_CreateCheckoutSession_MissingProduct(t *testing.T) {
	fx := createTestBillingService(t)

	sess := verifiedSession("uid-1", 0)

	_, err := fx.service.CreateCheckoutSession(context.Background(), sess, &usecase.CheckoutInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingProduct))
}

func TestBillingService_HandlePaymentCompleted_InvalidSignature(t *testing.T) {
	fx := createTestBillingService(t)

	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "bad-sig").
		Return(nil, errors.Wrap(service.ErrWebhookSignature, "signature mismatch"))

	err := fx.service.HandlePaymentCompleted(context.Background(), payload, "bad-sig")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature))
}

func TestBillingService_HandlePaymentCompleted_IgnoresOtherEventTypes(t *testing.T) {
	fx := createTestBillingService(t)

	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{ID: "evt_1", Type: "invoice.paid"}, nil)

	err := fx.service.HandlePaymentCompleted(context.Background(), payload, "sig")
	require.NoError(t, err)
}

func TestBillingService_HandlePaymentCompleted_MissingIdentity(t *testing.T) {
	fx := createTestBillingService(t)

	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{
			ID:       "evt_1",
			Type:     service.EventTypeCheckoutCompleted,
			Metadata: map[string]string{},
		}, nil)

	err := fx.service.HandlePaymentCompleted(context.Background(), payload, "sig")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingIdentity))
}

func TestBillingService_HandlePaymentCompleted_GrantsToExistingAccount(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{
			ID:       "evt_1",
			Type:     service.EventTypeCheckoutCompleted,
			Metadata: map[string]string{"uid": "uid-1"},
		}, nil)

	fx.passThroughExecute(t, ctx)

	fx.ledgerRepo.EXPECT().
		Find(ctx, "evt_1").
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(&entity.Account{ID: "uid-1", Credits: 0}, nil)

	fx.ledgerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Run(func(_ context.Context, entry *entity.LedgerEntry) {
			assert.Equal(t, "evt_1", entry.EventID)
		}).
		Return(nil)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", constants.CheckoutGrantCredits).
		Return(nil)

	err := fx.service.HandlePaymentCompleted(ctx, payload, "sig")
	require.NoError(t, err)
}

func TestBillingService_HandlePaymentCompleted_CreatesAccountWhenMissing(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{
			ID:       "evt_2",
			Type:     service.EventTypeCheckoutCompleted,
			Metadata: map[string]string{"uid": "uid-new"},
		}, nil)

	fx.passThroughExecute(t, ctx)

	fx.ledgerRepo.EXPECT().
		Find(ctx, "evt_2").
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-new").
		Return(nil, repository.ErrAccountNotFound)

	fx.ledgerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Return(nil)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, "uid-new", account.ID)
			assert.Equal(t, constants.CheckoutGrantCredits, account.Credits)
		}).
		Return(nil)

	err := fx.service.HandlePaymentCompleted(ctx, payload, "sig")
	require.NoError(t, err)
}

// Redelivering an already-recorded event acknowledges without touching the
// balance again.
func TestBillingService_HandlePaymentCompleted_IdempotentOnRedelivery(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{
			ID:       "evt_1",
			Type:     service.EventTypeCheckoutCompleted,
			Metadata: map[string]string{"uid": "uid-1"},
		}, nil)

	fx.passThroughExecute(t, ctx)

	fx.ledgerRepo.EXPECT().
		Find(ctx, "evt_1").
		Return(&entity.LedgerEntry{EventID: "evt_1"}, nil)

	err := fx.service.HandlePaymentCompleted(ctx, payload, "sig")
	require.NoError(t, err)
	// No IncrementCredits expectation was registered; a second grant would fail.
}

func TestBillingService_HandlePaymentCompleted_MetadataUIDTakesPrecedence(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{
			ID:                "evt_3",
			Type:              service.EventTypeCheckoutCompleted,
			Metadata:          map[string]string{"uid": "uid-meta"},
			ClientReferenceID: "uid-ref",
		}, nil)

	fx.passThroughExecute(t, ctx)

	fx.ledgerRepo.EXPECT().
		Find(ctx, "evt_3").
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-meta").
		Return(&entity.Account{ID: "uid-meta"}, nil)

	fx.ledgerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Return(nil)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-meta", constants.CheckoutGrantCredits).
		Return(nil)

	err := fx.service.HandlePaymentCompleted(ctx, payload, "sig")
	require.NoError(t, err)
}

func TestBillingService_HandlePaymentCompleted_FallsBackToClientReference(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{
			ID:                "evt_4",
			Type:              service.EventTypeCheckoutCompleted,
			ClientReferenceID: "uid-ref",
		}, nil)

	fx.passThroughExecute(t, ctx)

	fx.ledgerRepo.EXPECT().
		Find(ctx, "evt_4").
		Return(nil, repository.ErrLedgerEntryNotFound)

	fx.accountRepo.EXPECT().
		FindByID(ctx, "uid-ref").
		Return(&entity.Account{ID: "uid-ref"}, nil)

	fx.ledgerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
		Return(nil)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-ref", constants.CheckoutGrantCredits).
		Return(nil)

	err := fx.service.HandlePaymentCompleted(ctx, payload, "sig")
	require.NoError(t, err)
}

func TestBillingService_HandlePaymentCompleted_PersistenceFailure(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	payload := []byte(`{}`)

	fx.gateway.EXPECT().
		VerifyEvent(payload, "sig").
		Return(&service.PaymentEvent{
			ID:       "evt_5",
			Type:     service.EventTypeCheckoutCompleted,
			Metadata: map[string]string{"uid": "uid-1"},
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("transaction aborted"))

	err := fx.service.HandlePaymentCompleted(ctx, payload, "sig")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersistenceFailed))
}
