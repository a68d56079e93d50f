package impl

import (
	"context"
	"log/slog"
	"time"

	"inador/internal/domain/constants"
	"inador/internal/domain/entity"
	domainerrors "inador/internal/domain/errors"
	"inador/internal/domain/repository"
	"inador/internal/domain/service"
	"inador/internal/usecase"

	"github.com/google/uuid"
)

const mailDispatchTimeout = 30 * time.Second

type generationService struct {
	creditUsecase usecase.CreditUsecase
	publisher     service.EventPublisher
	mailService   service.MailService
	accountRepo   repository.AccountRepository
	logger        *slog.Logger
}

// NewGenerationService creates a new generation service instance. The mail
// service is nil when SMTP is not configured; notifications are then skipped.
func NewGenerationService(
	creditUsecase usecase.CreditUsecase,
	publisher service.EventPublisher,
	mailService service.MailService,
	accountRepo repository.AccountRepository,
	logger *slog.Logger,
) usecase.GenerationUsecase {
	return &generationService{
		creditUsecase: creditUsecase,
		publisher:     publisher,
		mailService:   mailService,
		accountRepo:   accountRepo,
		logger:        logger,
	}
}

// RequestSiteGeneration debits the generation cost and publishes the request
// event. A failed publish refunds the debit so credits only pay for requests
// that were actually handed off.
func (s *generationService) RequestSiteGeneration(ctx context.Context, sess *entity.Session, input *usecase.SiteRequestInput) (string, error) {
	if !sess.Verified() {
		return "", domainerrors.ErrAuthRequired
	}

	if err := s.creditUsecase.Debit(ctx, sess, constants.SiteGenerationCost); err != nil {
		return "", err
	}

	requestID := uuid.NewString()
	event := &service.SiteRequestEvent{
		RequestID: requestID,
		AccountID: sess.Identity.UID,
		Email:     input.ContactEmail,
		Vision:    input.Vision,
		Answers:   input.Answers,
	}

	if err := s.publisher.PublishSiteRequest(ctx, event); err != nil {
		s.logger.Error("Failed to publish site request, refunding debit",
			slog.String("request_id", requestID),
			slog.String("uid", sess.Identity.UID),
			slog.Any("error", err),
		)

		if refundErr := s.creditUsecase.Credit(ctx, sess, constants.SiteGenerationCost); refundErr != nil {
			s.logger.Error("Compensating credit failed",
				slog.String("request_id", requestID),
				slog.String("uid", sess.Identity.UID),
				slog.Any("error", refundErr),
			)
		}

		return "", domainerrors.ErrInternalError.WrapMessage("publish site request")
	}

	s.logger.Info("Site request submitted",
		slog.String("request_id", requestID),
		slog.String("uid", sess.Identity.UID),
	)

	return requestID, nil
}

// SubmitStarterForm dispatches the operator notification and unlocks the
// one-time starter bonus for the account.
func (s *generationService) SubmitStarterForm(ctx context.Context, sess *entity.Session, input *usecase.StarterFormInput) error {
	if !sess.Verified() {
		return domainerrors.ErrAuthRequired
	}

	// Fire and forget; a failed notification never blocks the flow.
	if s.mailService != nil {
		mail := &service.StarterFormMail{
			UserEmail: input.Email,
			UserPhone: input.Phone,
			UID:       sess.Identity.UID,
		}
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), mailDispatchTimeout)
			defer cancel()

			if err := s.mailService.SendStarterForm(sendCtx, mail); err != nil {
				s.logger.Warn("Failed to send starter form mail", slog.Any("error", err))
			}
		}()
	}

	if err := s.accountRepo.SetStarterCreditsAvailable(ctx, sess.Identity.UID, true); err != nil {
		return domainerrors.ErrPersistenceFailed.WrapMessage("unlock starter bonus")
	}
	sess.StarterCreditsAvailable = true

	return nil
}
