package impl

import (
	"context"
	"testing"
	"time"

	"inador/internal/domain/constants"
	"inador/internal/domain/entity"
	domainerrors "inador/internal/domain/errors"
	"inador/internal/domain/service"
	mockRepo "inador/internal/mocks/repository"
	mockService "inador/internal/mocks/service"
	"inador/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// generationServiceFixtures holds all test dependencies for generation service
// tests. The credit usecase is the real implementation backed by the account
// repo mock, so the debit-publish-refund sequence runs against real balances.
type generationServiceFixtures struct {
	service     usecase.GenerationUsecase
	publisher   *mockService.MockEventPublisher
	mailService *mockService.MockMailService
	accountRepo *mockRepo.MockAccountRepository
}

func createTestGenerationService(t *testing.T) generationServiceFixtures {
	publisher := mockService.NewMockEventPublisher(t)
	mailService := mockService.NewMockMailService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	creditUsecase := NewCreditService(accountRepo, nil, newTestConfig(), newTestLogger())
	service := NewGenerationService(creditUsecase, publisher, mailService, accountRepo, newTestLogger())

	return generationServiceFixtures{
		service:     service,
		publisher:   publisher,
		mailService: mailService,
		accountRepo: accountRepo,
	}
}

func TestGenerationService_RequestSiteGeneration_Success(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 25)
	input := &usecase.SiteRequestInput{
		Vision:       "A bakery site with online ordering",
		ContactEmail: "owner@example.com",
		Answers:      map[string]string{"style": "warm"},
	}

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", -constants.SiteGenerationCost).
		Return(nil)

	fx.publisher.EXPECT().
		PublishSiteRequest(ctx, mock.AnythingOfType("*service.SiteRequestEvent")).
		Run(func(_ context.Context, event *service.SiteRequestEvent) {
			assert.NotEmpty(t, event.RequestID)
			assert.Equal(t, "uid-1", event.AccountID)
			assert.Equal(t, "owner@example.com", event.Email)
			assert.Equal(t, "A bakery site with online ordering", event.Vision)
			assert.Equal(t, "warm", event.Answers["style"])
		}).
		Return(nil)

	requestID, err := fx.service.RequestSiteGeneration(ctx, sess, input)
	require.NoError(t, err)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, 15, sess.Credits)
}

func TestGenerationService_RequestSiteGeneration_RequiresVerifiedIdentity(t *testing.T) {
	fx := createTestGenerationService(t)

	sess := entity.NewSession("sess-1")
	sess.Attach(&entity.Identity{UID: "uid-anon", Anonymous: true})
	sess.Credits = 50

	_, err := fx.service.RequestSiteGeneration(context.Background(), sess, &usecase.SiteRequestInput{
		Vision:       "anything",
		ContactEmail: "a@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
	assert.Equal(t, 50, sess.Credits)
}

func TestGenerationService_RequestSiteGeneration_InsufficientCredits(t *testing.T) {
	fx := createTestGenerationService(t)

	sess := verifiedSession("uid-1", constants.SiteGenerationCost-1)

	_, err := fx.service.RequestSiteGeneration(context.Background(), sess, &usecase.SiteRequestInput{
		Vision:       "anything",
		ContactEmail: "a@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientCredits))
	// The publisher mock carries no expectations; reaching it would fail the test.
	assert.Equal(t, constants.SiteGenerationCost-1, sess.Credits)
}

// A failed publish refunds the debit so the balance ends where it started.
func TestGenerationService_RequestSiteGeneration_RefundsOnPublishFailure(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 25)

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", -constants.SiteGenerationCost).
		Return(nil)

	fx.publisher.EXPECT().
		PublishSiteRequest(ctx, mock.AnythingOfType("*service.SiteRequestEvent")).
		Return(errors.New("broker unavailable"))

	fx.accountRepo.EXPECT().
		IncrementCredits(ctx, "uid-1", constants.SiteGenerationCost).
		Return(nil)

	_, err := fx.service.RequestSiteGeneration(ctx, sess, &usecase.SiteRequestInput{
		Vision:       "anything",
		ContactEmail: "a@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	assert.Equal(t, 25, sess.Credits)
}

func TestGenerationService_SubmitStarterForm_UnlocksBonusAndSendsMail(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	sess := verifiedSession("uid-1", 0)
	sent := make(chan *service.StarterFormMail, 1)

	fx.mailService.EXPECT().
		SendStarterForm(mock.Anything, mock.AnythingOfType("*service.StarterFormMail")).
		Run(func(_ context.Context, mail *service.StarterFormMail) {
			sent <- mail
		}).
		Return(nil)

	fx.accountRepo.EXPECT().
		SetStarterCreditsAvailable(ctx, "uid-1", true).
		Return(nil)

	err := fx.service.SubmitStarterForm(ctx, sess, &usecase.StarterFormInput{
		Email: "owner@example.com",
		Phone: "0912345678",
	})
	require.NoError(t, err)
	assert.True(t, sess.StarterCreditsAvailable)

	select {
	case mail := <-sent:
		assert.Equal(t, "owner@example.com", mail.UserEmail)
		assert.Equal(t, "0912345678", mail.UserPhone)
		assert.Equal(t, "uid-1", mail.UID)
	case <-time.After(time.Second):
		t.Fatal("starter form mail was not dispatched")
	}
}

func TestGenerationService_SubmitStarterForm_RequiresVerifiedIdentity(t *testing.T) {
	fx := createTestGenerationService(t)

	sess := entity.NewSession("sess-1")

	err := fx.service.SubmitStarterForm(context.Background(), sess, &usecase.StarterFormInput{Email: "a@example.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
}

// A nil mail service means notifications are skipped, not failed.
func TestGenerationService_SubmitStarterForm_WithoutMailService(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	creditUsecase := NewCreditService(accountRepo, nil, newTestConfig(), newTestLogger())
	service := NewGenerationService(creditUsecase, publisher, nil, accountRepo, newTestLogger())

	ctx := context.Background()
	sess := verifiedSession("uid-1", 0)

	accountRepo.EXPECT().
		SetStarterCreditsAvailable(ctx, "uid-1", true).
		Return(nil)

	err := service.SubmitStarterForm(ctx, sess, &usecase.StarterFormInput{Email: "a@example.com"})
	require.NoError(t, err)
	assert.True(t, sess.StarterCreditsAvailable)
}
