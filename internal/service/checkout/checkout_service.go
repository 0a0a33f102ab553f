package checkout

import (
	"context"
	"fmt"
	"time"

	"loanlink/internal/pkg/apperrors"
	"loanlink/internal/pkg/common"
	"loanlink/internal/pkg/config"
	"loanlink/internal/pkg/consts"
	"loanlink/internal/pkg/log_messages"
	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"
	"loanlink/internal/pkg/otel"
	storemodels "loanlink/internal/pkg/store/models"
	"loanlink/internal/service/interfaces"

	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type CheckoutService struct {
	processor    interfaces.PaymentProcessorInterface
	applications interfaces.ApplicationRepositoryInterface
	publisher    interfaces.PaymentEventPublisherInterface
	clientURL    string
	currency     string
	now          func() time.Time
	tracer       trace.Tracer
}

// NewCheckoutService wires the orchestrator. publisher may be nil, in which case no
// payment events are emitted.
func NewCheckoutService(
	processor interfaces.PaymentProcessorInterface,
	applications interfaces.ApplicationRepositoryInterface,
	publisher interfaces.PaymentEventPublisherInterface,
	cfg config.StripeConfig,
) *CheckoutService {
	currency := cfg.Currency
	if currency == "" {
		currency = consts.DefaultCurrency
	}
	return &CheckoutService{
		processor:    processor,
		applications: applications,
		publisher:    publisher,
		clientURL:    cfg.ClientURL,
		currency:     currency,
		now:          time.Now,
		tracer:       otel.GetTracer(),
	}
}

func (s *CheckoutService) CreateSession(ctx context.Context,
	req models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.CreateSession", trace.WithAttributes(
		attribute.String("loan_application.id", req.LoanApplicationID),
	))
	defer span.End()

	resp, err := s.createSession(ctx, req)
	recordOutcome(span, err)
	return resp, err
}

func (s *CheckoutService) createSession(ctx context.Context,
	req models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error) {
	if req.Amount <= 0 {
		return nil, apperrors.NewBadRequest(log_messages.ErrorInvalidAmount, nil)
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name:        stripe.String(req.LoanTitle),
		Description: stripe.String(common.FormatMajorUnits(req.Amount)),
	}
	if req.Image != "" {
		productData.Images = stripe.StringSlice([]string{req.Image})
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.currency),
				UnitAmount:  stripe.Int64(common.ToMinorUnits(req.Amount)),
				ProductData: productData,
			},
			Quantity: stripe.Int64(quantity),
		}},
		SuccessURL: stripe.String(fmt.Sprintf("%s%s?session_id=%s",
			s.clientURL, consts.PaymentSuccessPath, consts.CheckoutSessionPlaceholder)),
		CancelURL: stripe.String(s.clientURL + consts.PaymentCancelPath),
	}
	if req.Borrower.Email != "" {
		params.CustomerEmail = stripe.String(req.Borrower.Email)
	}
	if req.LoanApplicationID != "" {
		params.AddMetadata(consts.MetadataLoanApplicationID, req.LoanApplicationID)
	}
	params.AddMetadata(consts.MetadataBorrower, req.Borrower.Email)

	sess, err := s.processor.CreateCheckoutSession(ctx, params)
	if err != nil {
		logger.CtxError(ctx, "Checkout session creation failed", err,
			zap.String("loanApplicationId", req.LoanApplicationID),
		)
		return nil, apperrors.NewServerError(log_messages.ServerError,
			fmt.Errorf(log_messages.ErrorCreatingSession, err))
	}

	logger.CtxInfo(ctx, "Checkout session created",
		zap.String("sessionId", sess.ID),
		zap.String("loanApplicationId", req.LoanApplicationID),
	)
	return &models.CheckoutSessionResponse{URL: sess.URL}, nil
}

// ResolveSession confirms a hosted checkout session after the client redirect. The
// returned confirmation is always non-nil and is the response body; a non-nil error
// carries the apperrors kind for the status code.
func (s *CheckoutService) ResolveSession(ctx context.Context, sessionID string) (*models.PaymentConfirmation, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.ResolveSession", trace.WithAttributes(
		attribute.String("checkout.session_id", sessionID),
	))
	defer span.End()

	confirmation, err := s.resolveSession(ctx, sessionID)
	recordOutcome(span, err)
	return confirmation, err
}

func (s *CheckoutService) resolveSession(ctx context.Context, sessionID string) (*models.PaymentConfirmation, error) {
	if sessionID == "" {
		return failure(log_messages.ErrorMissingSessionID, ""),
			apperrors.NewBadRequest(log_messages.ErrorMissingSessionID, nil)
	}

	sess, err := s.processor.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		logger.CtxError(ctx, "Checkout session retrieval failed", err, zap.String("sessionId", sessionID))
		wrapped := fmt.Errorf(log_messages.ErrorRetrievingSession, err)
		return failure(log_messages.ServerError, wrapped.Error()),
			apperrors.NewServerError(log_messages.ServerError, wrapped)
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		logger.CtxWarn(ctx, "Checkout session not paid",
			zap.String("sessionId", sessionID),
			zap.String("paymentStatus", string(sess.PaymentStatus)),
		)
		return failure(log_messages.PaymentNotCompleted, ""),
			apperrors.NewBadRequest(log_messages.PaymentNotCompleted, nil)
	}

	applicationID := sess.Metadata[consts.MetadataLoanApplicationID]
	if applicationID == "" {
		logger.CtxWarn(ctx, log_messages.MissingApplicationInMeta, zap.String("sessionId", sessionID))
		return failure(log_messages.MissingApplicationInMeta, ""),
			apperrors.NewBadRequest(log_messages.MissingApplicationInMeta, nil)
	}

	objectID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return failure(log_messages.ErrorInvalidDocumentID, ""),
			apperrors.NewBadRequest(log_messages.ErrorInvalidDocumentID, err)
	}

	payment := storemodels.PaymentDetails{
		StripePaymentID: paymentIntentID(sess),
		PaymentEmail:    paymentEmail(sess),
		PaymentAmount:   common.FromMinorUnits(sess.AmountTotal),
		PaidAt:          s.now().UTC(),
	}

	result, err := s.applications.MarkApplicationPaid(ctx, objectID, payment)
	if err != nil {
		wrapped := fmt.Errorf(log_messages.ErrorMarkingPaid, err)
		return failure(log_messages.ServerError, wrapped.Error()),
			apperrors.NewServerError(log_messages.ServerError, wrapped)
	}

	if result != nil && result.ModifiedCount > 0 {
		s.publishPaymentConfirmed(ctx, applicationID, payment)
	}

	return &models.PaymentConfirmation{
		Success:           true,
		Message:           log_messages.PaymentSuccessful,
		LoanApplicationID: applicationID,
		StripePaymentID:   payment.StripePaymentID,
	}, nil
}

func (s *CheckoutService) publishPaymentConfirmed(ctx context.Context, applicationID string,
	payment storemodels.PaymentDetails) {
	if s.publisher == nil {
		return
	}

	_, err := s.publisher.PublishPaymentConfirmed(ctx, models.PaymentConfirmedMessage{
		EventType:         models.PaymentConfirmedEvent,
		LoanApplicationID: applicationID,
		StripePaymentID:   payment.StripePaymentID,
		PaymentEmail:      payment.PaymentEmail,
		PaymentAmount:     payment.PaymentAmount,
		PaidAt:            payment.PaidAt,
	})
	if err != nil {
		logger.CtxError(ctx, "Payment confirmation event not published", err,
			zap.String("loanApplicationId", applicationID),
		)
	}
}

func recordOutcome(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, string(apperrors.KindOf(err)))
}

func failure(message, detail string) *models.PaymentConfirmation {
	return &models.PaymentConfirmation{Success: false, Message: message, Error: detail}
}

func paymentIntentID(sess *stripe.CheckoutSession) string {
	if sess.PaymentIntent == nil {
		return ""
	}
	return sess.PaymentIntent.ID
}

// paymentEmail prefers the session customer email, then the collected customer
// details, then the borrower recorded at creation.
func paymentEmail(sess *stripe.CheckoutSession) string {
	if sess.CustomerEmail != "" {
		return sess.CustomerEmail
	}
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		return sess.CustomerDetails.Email
	}
	return sess.Metadata[consts.MetadataBorrower]
}
