package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"muebleria/api/internal/config"
	"muebleria/api/internal/core/domain"
)

// One slow dependency must never hold a caller's connection open
// indefinitely, so both side effects run under their own deadline.
const (
	persistTimeout = 5 * time.Second
	notifyTimeout  = 10 * time.Second
)

// Use a single instance of Validate, it caches struct info
var validate = newValidator()

var phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Permissive phone shape: digits plus common separators, optional +.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// InquiryService runs the submission workflow:
// validate → persist → best-effort notify → return the persisted id.
type InquiryService struct {
	repo     domain.InquiryRepository
	notifier domain.Notifier
	logger   *slog.Logger

	// "fail" surfaces persistence errors to the caller (default);
	// "degrade-with-temp-id" substitutes a synthetic id and still notifies.
	onPersistenceFailure string
}

func NewInquiryService(repo domain.InquiryRepository, notifier domain.Notifier, logger *slog.Logger, onPersistenceFailure string) *InquiryService {
	return &InquiryService{
		repo:                 repo,
		notifier:             notifier,
		logger:               logger,
		onPersistenceFailure: onPersistenceFailure,
	}
}

// Submit processes one contact form payload and returns the inquiry id.
//
// Durability of the lead row is the hard guarantee; the two emails are
// advisory. A notification failure never changes a success outcome.
func (s *InquiryService) Submit(ctx context.Context, req domain.ContactRequest) (string, error) {
	// 1. Validate, collecting every violated field before returning.
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return "", toValidationError(verrs)
		}
		return "", fmt.Errorf("validation failed: %w", err)
	}

	inq := &domain.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		ProductID: req.ProductID, // nil persists as null
		Status:    domain.InquiryStatusNew,
	}

	// 2. Persist via the privileged handle. This is the authoritative
	// side effect; notification is only attempted after a successful write.
	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	created, err := s.repo.Insert(persistCtx, inq)
	if err != nil {
		if s.onPersistenceFailure == config.PolicyDegradeTempID {
			// Degraded mode: the lead survives only in the notification
			// emails. Explicitly opted into via configuration.
			tempID := "temp-" + uuid.NewString()
			s.logger.Error("inquiry insert failed, continuing with temporary id",
				"error", err, "temp_id", tempID)
			inq.ID = tempID
			s.notify(ctx, inq)
			return tempID, nil
		}
		s.logWriteFailure(err)
		return "", err
	}

	// 3. Notify, best effort. Outcomes are logged and absorbed.
	s.notify(ctx, created)

	// 4. The caller gets the store-assigned identifier.
	return created.ID, nil
}

// notify sends both messages sequentially; their relative order is not
// observable to the caller since both outcomes are discarded. The
// context is detached from the request so a client disconnect cannot
// abort sends mid-flight, but the deadline still bounds them.
func (s *InquiryService) notify(ctx context.Context, inq *domain.Inquiry) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := s.notifier.SendInternalAlert(notifyCtx, inq); err != nil {
		s.logger.Warn("internal alert email failed, continuing", "inquiry_id", inq.ID, "error", err)
	}
	if err := s.notifier.SendConfirmation(notifyCtx, inq); err != nil {
		s.logger.Warn("confirmation email failed, continuing", "inquiry_id", inq.ID, "error", err)
	}
}

func (s *InquiryService) logWriteFailure(err error) {
	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		s.logger.Error("inquiry insert failed",
			"code", pe.Code, "message", pe.Message, "hint", pe.Hint)
		return
	}
	s.logger.Error("inquiry insert failed", "error", err)
}

// toValidationError translates validator output into the domain shape,
// one entry per violated field with a user-facing Spanish message.
func toValidationError(verrs validator.ValidationErrors) *domain.ValidationError {
	ve := &domain.ValidationError{}
	for _, fe := range verrs {
		ve.Violations = append(ve.Violations, domain.FieldViolation{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return ve
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "Message":
		return "message"
	case "ProductID":
		return "product_id"
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fieldName(fe) {
	case "name":
		return "El nombre debe tener entre 2 y 50 caracteres"
	case "email":
		return "Email inválido"
	case "phone":
		if fe.Tag() == "phone" {
			return "Formato de teléfono inválido"
		}
		return "El teléfono debe tener al menos 10 dígitos"
	case "message":
		return "El mensaje debe tener entre 10 y 500 caracteres"
	case "product_id":
		return "Identificador de producto inválido"
	}
	return "Valor inválido"
}
