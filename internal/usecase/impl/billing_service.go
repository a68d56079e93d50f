package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inador/config"
	"inador/internal/domain/constants"
	"inador/internal/domain/entity"
	domainerrors "inador/internal/domain/errors"
	"inador/internal/domain/repository"
	"inador/internal/domain/service"
	"inador/internal/usecase"

	"github.com/pkg/errors"
)

type billingService struct {
	gateway       service.PaymentGateway
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	appDomain     string
	logger        *slog.Logger
}

// NewBillingService creates a new billing service instance. The gateway is
// nil when the payment processor is not configured; checkout then fails with
// NotConfigured instead of crashing the process.
func NewBillingService(
	gateway service.PaymentGateway,
	txManager repository.TransactionManager,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BillingUsecase {
	appDomain := ""
	if cfg.Stripe != nil {
		appDomain = cfg.Stripe.AppDomain
	}

	return &billingService{
		gateway:       gateway,
		txManager:     txManager,
		qrcodeService: qrcodeService,
		appDomain:     appDomain,
		logger:        logger,
	}
}

// CreateCheckoutSession starts a checkout for the session's verified identity.
func (s *billingService) CreateCheckoutSession(ctx context.Context, sess *entity.Session, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	// The auth gate comes first: an unauthenticated caller must not reach
	// the gateway at all.
	if sess == nil || !sess.Verified() {
		return nil, domainerrors.ErrAuthRequired
	}

	if s.gateway == nil {
		return nil, domainerrors.ErrNotConfigured
	}

	if input == nil || input.PriceID == "" {
		return nil, domainerrors.ErrMissingProduct
	}

	checkout, err := s.gateway.CreateCheckoutSession(ctx, &service.CheckoutSessionInput{
		PriceID:    input.PriceID,
		UID:        sess.Identity.UID,
		SuccessURL: fmt.Sprintf("%s/inador/index.html?checkout=success", s.appDomain),
		CancelURL:  fmt.Sprintf("%s/inador/index.html?checkout=cancel", s.appDomain),
	})
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("create checkout session")
	}

	result := &usecase.CheckoutResult{
		SessionID: checkout.ID,
		URL:       checkout.URL,
	}

	if s.qrcodeService != nil {
		qr, err := s.qrcodeService.GenerateBase64(checkout.URL)
		if err != nil {
			s.logger.Warn("Failed to render checkout QR", slog.Any("error", err))
		} else {
			result.QRCodeBase64 = qr
		}
	}

	return result, nil
}

// HandlePaymentCompleted verifies and processes a payment webhook delivery.
func (s *billingService) HandlePaymentCompleted(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		return domainerrors.ErrNotConfigured
	}

	event, err := s.gateway.VerifyEvent(payload, signature)
	if err != nil {
		if errors.Is(err, service.ErrWebhookSignature) {
			return domainerrors.ErrInvalidSignature.WrapMessage(err.Error())
		}

		return domainerrors.ErrInternalError.WrapMessage("verify webhook event")
	}

	// Everything except a completed checkout is acknowledged untouched.
	if event.Type != service.EventTypeCheckoutCompleted {
		s.logger.Debug("Ignoring webhook event",
			slog.String("event_id", event.ID),
			slog.String("type", event.Type),
		)

		return nil
	}

	// metadata.uid takes precedence; client_reference_id is the fallback.
	uid := event.Metadata["uid"]
	if uid == "" {
		uid = event.ClientReferenceID
	}
	if uid == "" {
		s.logger.Warn("Payment event carries no account reference",
			slog.String("event_id", event.ID),
		)

		return domainerrors.ErrMissingIdentity
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.LedgerRepo()
		accountRepo := repoFactory.AccountRepo()

		// Reads come before writes; Firestore transactions require it.
		if _, err := ledgerRepo.Find(ctx, event.ID); err == nil {
			return repository.ErrLedgerEntryExists
		} else if !errors.Is(err, repository.ErrLedgerEntryNotFound) {
			return err
		}

		_, findErr := accountRepo.FindByID(ctx, uid)
		if findErr != nil && !errors.Is(findErr, repository.ErrAccountNotFound) {
			return findErr
		}

		if err := ledgerRepo.Create(ctx, &entity.LedgerEntry{
			EventID:     event.ID,
			ProcessedAt: time.Now(),
		}); err != nil {
			return err
		}

		// A payment can land before the account's first bootstrap; the
		// grant then creates the record.
		if errors.Is(findErr, repository.ErrAccountNotFound) {
			return accountRepo.Create(ctx, &entity.Account{
				ID:      uid,
				Credits: constants.CheckoutGrantCredits,
			})
		}

		return accountRepo.IncrementCredits(ctx, uid, constants.CheckoutGrantCredits)
	})
	if err != nil {
		// A concurrent delivery already applied the grant; this one is a no-op.
		if errors.Is(err, repository.ErrLedgerEntryExists) {
			s.logger.Info("Payment event already processed",
				slog.String("event_id", event.ID),
			)

			return nil
		}

		return domainerrors.ErrPersistenceFailed.WrapMessage("apply payment grant")
	}

	s.logger.Info("Payment completed, credits granted",
		slog.String("event_id", event.ID),
		slog.String("uid", uid),
		slog.Int("granted", constants.CheckoutGrantCredits),
	)

	return nil
}
