package impl

import (
	"context"
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

type creditService struct {
	accountRepo        repository.AccountRepository
	qrcodeService      service.QRCodeService
	starterCheckoutURL string
	logger             *slog.Logger
}

// NewCreditService creates a new credit service instance
func NewCreditService(
	accountRepo repository.AccountRepository,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CreditUsecase {
	starterCheckoutURL := ""
	if cfg.Stripe != nil {
		starterCheckoutURL = cfg.Stripe.StarterCheckoutURL
	}

	return &creditService{
		accountRepo:        accountRepo,
		qrcodeService:      qrcodeService,
		starterCheckoutURL: starterCheckoutURL,
		logger:             logger,
	}
}

// LoadOrCreateAccount fetches the account behind an identity, creating it
// with the starting balance on first contact.
func (s *creditService) LoadOrCreateAccount(ctx context.Context, identity *entity.Identity) (*entity.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, identity.UID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrPersistenceFailed.WrapMessage("find account")
	}

	account = &entity.Account{
		ID:          identity.UID,
		Credits:     constants.StartingCredits,
		IsAnonymous: identity.Anonymous,
		Email:       identity.Email,
		LastLogin:   time.Now(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, domainerrors.ErrPersistenceFailed.WrapMessage("create account")
	}

	s.logger.Info("Account created",
		slog.String("uid", account.ID),
		slog.Int("credits", account.Credits),
	)

	return account, nil
}

// Debit removes amount credits. The local balance is only updated after the
// remote increment succeeds, so a failed write leaves no trace to roll back.
func (s *creditService) Debit(ctx context.Context, sess *entity.Session, amount int) error {
	if sess.Identity == nil {
		return domainerrors.ErrAuthRequired
	}
	if amount <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("debit amount must be positive")
	}

	if sess.Credits < amount {
		return domainerrors.ErrInsufficientCredits
	}

	if err := s.accountRepo.IncrementCredits(ctx, sess.Identity.UID, -amount); err != nil {
		return domainerrors.ErrPersistenceFailed.WrapMessage("debit credits")
	}

	sess.Credits -= amount

	return nil
}

// Credit adds amount credits.
func (s *creditService) Credit(ctx context.Context, sess *entity.Session, amount int) error {
	if sess.Identity == nil {
		return domainerrors.ErrAuthRequired
	}
	if amount <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("credit amount must be positive")
	}

	if err := s.accountRepo.IncrementCredits(ctx, sess.Identity.UID, amount); err != nil {
		return domainerrors.ErrPersistenceFailed.WrapMessage("credit credits")
	}

	sess.Credits += amount

	return nil
}

// SetCreditsTo overwrites the balance; administrative resets only.
func (s *creditService) SetCreditsTo(ctx context.Context, sess *entity.Session, credits int) error {
	if sess.Identity == nil {
		return domainerrors.ErrAuthRequired
	}
	if credits < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("credits must be non-negative")
	}

	if err := s.accountRepo.SetCredits(ctx, sess.Identity.UID, credits); err != nil {
		return domainerrors.ErrPersistenceFailed.WrapMessage("set credits")
	}

	sess.Credits = credits

	return nil
}

// RecordLogin merges email and last-login into the account record.
func (s *creditService) RecordLogin(ctx context.Context, identity *entity.Identity) error {
	if !identity.Verified() {
		return nil
	}

	if err := s.accountRepo.UpdateProfile(ctx, identity.UID, identity.Email, time.Now()); err != nil {
		return domainerrors.ErrPersistenceFailed.WrapMessage("update profile")
	}

	return nil
}

// ClaimStarterCredits applies the one-time starter bonus and clears the flag
// in the same flow.
func (s *creditService) ClaimStarterCredits(ctx context.Context, sess *entity.Session) (*usecase.StarterClaim, error) {
	if !sess.Verified() {
		return nil, domainerrors.ErrAuthRequired
	}
	if !sess.StarterCreditsAvailable {
		return nil, domainerrors.ErrStarterBonusUnavailable
	}

	if err := s.accountRepo.IncrementCredits(ctx, sess.Identity.UID, constants.StarterBonusCredits); err != nil {
		return nil, domainerrors.ErrPersistenceFailed.WrapMessage("grant starter credits")
	}
	sess.Credits += constants.StarterBonusCredits

	if err := s.accountRepo.SetStarterCreditsAvailable(ctx, sess.Identity.UID, false); err != nil {
		// The grant already landed; surface the failure so the flag gets
		// reconciled instead of silently staying claimable.
		return nil, domainerrors.ErrPersistenceFailed.WrapMessage("clear starter flag")
	}
	sess.StarterCreditsAvailable = false

	s.logger.Info("Starter credits claimed",
		slog.String("uid", sess.Identity.UID),
		slog.Int("credits", sess.Credits),
	)

	claim := &usecase.StarterClaim{
		Credits:     sess.Credits,
		CheckoutURL: s.starterCheckoutURL,
	}

	if s.qrcodeService != nil && s.starterCheckoutURL != "" {
		qr, err := s.qrcodeService.GenerateBase64(s.starterCheckoutURL)
		if err != nil {
			s.logger.Warn("Failed to render starter checkout QR", slog.Any("error", err))
		} else {
			claim.QRCodeBase64 = qr
		}
	}

	return claim, nil
}
