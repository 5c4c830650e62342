package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/entities"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/gateway"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/middleware"
	"github.com/SergeyBogomolovv/fee-payment-service/internal/service"
	"github.com/SergeyBogomolovv/fee-payment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type PaymentService interface {
	Checkout(ctx context.Context, token string, in service.CheckoutInput) (entities.SignedPayload, error)
	ConfirmSuccess(ctx context.Context, gateway string, cb entities.Callback) (entities.Attempt, error)
	RecordFailure(ctx context.Context, cb entities.Callback) (entities.Attempt, bool)
	GetAttempt(ctx context.Context, token, transactionUUID string) (entities.Attempt, error)
	ListAttempts(ctx context.Context, token, payerID string, limit int) ([]entities.Attempt, error)
}

type FormBuilder interface {
	Build(p entities.SignedPayload) (gateway.EsewaForm, error)
	Endpoint() string
}

type FormRenderer interface {
	Render(w http.ResponseWriter, form gateway.EsewaForm) error
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type HTTPHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          PaymentService
	forms        FormBuilder
	submitter    FormRenderer
	dashboardURL string
}

func NewHTTPHandler(logger *slog.Logger, svc PaymentService, forms FormBuilder, submitter FormRenderer, dashboardURL string) *HTTPHandler {
	return &HTTPHandler{
		logger:       logger.With(slog.String("handler", "http")),
		validate:     validator.New(),
		svc:          svc,
		forms:        forms,
		submitter:    submitter,
		dashboardURL: dashboardURL,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/payment", func(r chi.Router) {
		r.Get("/success", h.Success)
		r.Get("/failure", h.Failure)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireBearer)
			r.Post("/{gateway}/checkout", h.Checkout)
			r.Post("/{gateway}/sign", h.Sign)
			r.Get("/attempts", h.ListAttempts)
			r.Get("/attempts/{transaction_uuid}", h.GetAttempt)
		})
	})
}

// Checkout подписывает оплату и отправляет браузер на страницу шлюза.
// @Summary      Оплатить сбор
// @Description  Получает сессию у бэкенда, подписывает запрос и возвращает страницу, которая сразу отправляет форму шлюзу
// @Tags         payments
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Security     BearerAuth
// @Param        gateway  path  string           true  "Платёжный шлюз"  Enums(esewa)
// @Param        request  body  CheckoutRequest  true  "Данные оплаты"
// @Success      200  {string}  string  "Страница автоотправки формы"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      409  {object}  utils.ErrorResponse "Оплата уже выполняется"
// @Failure      502  {object}  utils.ErrorResponse "Бэкенд отклонил оплату"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payment/{gateway}/checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	form, ok := h.signedForm(w, r, "page")
	if !ok {
		return
	}

	if err := h.submitter.Render(w, form); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render gateway form", slog.Any("error", err))
		checkoutRequestsTotal.WithLabelValues("page", "submission_failed").Inc()
		utils.WriteError(w, "payment submission failed", http.StatusInternalServerError)
		return
	}
	checkoutRequestsTotal.WithLabelValues("page", "ok").Inc()
}

// Sign подписывает оплату и возвращает поля формы.
// @Summary      Подписать оплату
// @Description  То же, что checkout, но возвращает адрес шлюза и поля формы для отправки клиентом
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gateway  path  string           true  "Платёжный шлюз"  Enums(esewa)
// @Param        request  body  CheckoutRequest  true  "Данные оплаты"
// @Success      200  {object}  SignResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет токена"
// @Failure      409  {object}  utils.ErrorResponse "Оплата уже выполняется"
// @Failure      502  {object}  utils.ErrorResponse "Бэкенд отклонил оплату"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payment/{gateway}/sign [post]
func (h *HTTPHandler) Sign(w http.ResponseWriter, r *http.Request) {
	form, ok := h.signedForm(w, r, "json")
	if !ok {
		return
	}

	checkoutRequestsTotal.WithLabelValues("json", "ok").Inc()
	utils.WriteJSON(w, FormToSignResponse(h.forms.Endpoint(), form), http.StatusOK)
}

// signedForm runs the checkout and builds the gateway form. It writes the
// error response itself and reports whether the caller may continue.
func (h *HTTPHandler) signedForm(w http.ResponseWriter, r *http.Request, mode string) (gateway.EsewaForm, bool) {
	ctx := r.Context()

	gw := chi.URLParam(r, "gateway")
	if gw != gateway.Esewa {
		checkoutRequestsTotal.WithLabelValues(mode, "unsupported_gateway").Inc()
		utils.WriteError(w, "unsupported gateway", http.StatusNotFound)
		return gateway.EsewaForm{}, false
	}

	req, err := checkoutRequestFrom(r)
	if err != nil {
		checkoutRequestsTotal.WithLabelValues(mode, "invalid").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return gateway.EsewaForm{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		checkoutRequestsTotal.WithLabelValues(mode, "invalid").Inc()
		utils.WriteValidationError(w, err)
		return gateway.EsewaForm{}, false
	}
	in, err := CheckoutRequestToInput(gw, req)
	if err != nil {
		checkoutRequestsTotal.WithLabelValues(mode, "invalid").Inc()
		utils.WriteError(w, "invalid amount", http.StatusBadRequest)
		return gateway.EsewaForm{}, false
	}

	payload, err := h.svc.Checkout(ctx, middleware.TokenFromContext(ctx), in)
	if err != nil {
		checkoutRequestsTotal.WithLabelValues(mode, "failed").Inc()
		h.writeCheckoutError(ctx, w, err)
		return gateway.EsewaForm{}, false
	}

	form, err := h.forms.Build(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build gateway form", slog.Any("error", err))
		checkoutRequestsTotal.WithLabelValues(mode, "submission_failed").Inc()
		utils.WriteError(w, "payment submission failed", http.StatusInternalServerError)
		return gateway.EsewaForm{}, false
	}
	return form, true
}

func (h *HTTPHandler) writeCheckoutError(ctx context.Context, w http.ResponseWriter, err error) {
	var initErr *entities.InitializationError

	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrPaymentInFlight):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.As(err, &initErr):
		code := http.StatusBadGateway
		if initErr.Status == http.StatusUnauthorized || initErr.Status == http.StatusForbidden {
			code = initErr.Status
		}
		utils.WriteError(w, initErr.Message, code)
	case errors.Is(err, entities.ErrInitialization):
		utils.WriteError(w, entities.ErrInitialization.Error(), http.StatusBadGateway)
	case errors.Is(err, entities.ErrDuplicateTransaction):
		h.logger.ErrorContext(ctx, "backend reissued a transaction id", slog.Any("error", err))
		utils.WriteError(w, entities.ErrInitialization.Error(), http.StatusBadGateway)
	case errors.Is(err, entities.ErrSigning):
		h.logger.ErrorContext(ctx, "failed to sign payment", slog.Any("error", err))
		utils.WriteError(w, entities.ErrSigning.Error(), http.StatusInternalServerError)
	default:
		h.logger.ErrorContext(ctx, "checkout failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// Success обрабатывает возврат со шлюза после оплаты.
// @Summary      Возврат после оплаты
// @Description  Сверяет сумму, подтверждает оплату через бэкенд и показывает результат
// @Tags         callbacks
// @Produce      html
// @Param        data  query  string  false  "Ответ шлюза в base64"
// @Success      200  {string}  string  "Оплата подтверждена или отклонена"
// @Success      202  {string}  string  "Оплата ожидает подтверждения"
// @Failure      400  {string}  string  "Некорректный ответ шлюза"
// @Failure      404  {string}  string  "Попытка не найдена"
// @Router       /payment/success [get]
func (h *HTTPHandler) Success(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cb, err := gateway.ParseSuccess(r.URL.Query())
	if err != nil {
		invalidCallbacksTotal.Inc()
		h.logger.WarnContext(ctx, "invalid success callback", slog.Any("error", err))
		h.writePage(w, page{
			Title:   "Payment status unknown",
			Message: "The payment gateway response could not be read. If money was taken, it will be confirmed shortly.",
		}, http.StatusBadRequest)
		return
	}

	attempt, err := h.svc.ConfirmSuccess(ctx, gateway.Esewa, cb)
	switch {
	case errors.Is(err, entities.ErrCallbackMismatch):
		invalidCallbacksTotal.Inc()
		h.writePage(w, page{
			Title:           "Payment status unknown",
			Message:         "The payment gateway response does not match this payment. If money was taken, it will be confirmed shortly.",
			TransactionUUID: cb.TransactionUUID,
		}, http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrAttemptNotFound):
		callbackPagesTotal.WithLabelValues("unknown").Inc()
		h.writePage(w, page{
			Title:           "Payment not found",
			Message:         "We have no record of this payment.",
			TransactionUUID: cb.TransactionUUID,
		}, http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrVerification):
		callbackPagesTotal.WithLabelValues("pending").Inc()
		h.writePage(w, page{
			Title:           "Payment pending",
			Message:         "Your payment was received and is awaiting confirmation. Check its status again in a few minutes.",
			TransactionUUID: attempt.TransactionUUID,
			TotalAmount:     entities.FormatAmount(attempt.TotalAmount),
		}, http.StatusAccepted)
		return
	case err != nil:
		callbackPagesTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to confirm payment", slog.Any("error", err), slog.String("transaction_uuid", cb.TransactionUUID))
		h.writePage(w, page{
			Title:           "Payment status unknown",
			Message:         "Something went wrong while confirming your payment.",
			TransactionUUID: cb.TransactionUUID,
		}, http.StatusInternalServerError)
		return
	}

	callbackPagesTotal.WithLabelValues(string(attempt.Status)).Inc()
	p := page{
		TransactionUUID: attempt.TransactionUUID,
		TotalAmount:     entities.FormatAmount(attempt.TotalAmount),
		GatewayRef:      attempt.GatewayRef,
	}
	switch attempt.Status {
	case entities.StatusPaid:
		p.Title = "Payment successful"
		p.Message = "Your fee payment has been confirmed."
	case entities.StatusRejected:
		p.Title = "Payment not confirmed"
		p.Message = "The payment could not be confirmed: " + attempt.FailureReason + "."
		p.RetryURL = h.dashboardURL
	default:
		p.Title = "Payment pending"
		p.Message = "Your payment is awaiting confirmation."
	}
	h.writePage(w, p, http.StatusOK)
}

// Failure обрабатывает возврат со шлюза после отмены или ошибки.
// @Summary      Возврат после неудачной оплаты
// @Description  Показывает страницу с возможностью повторить оплату. Состояние попытки не меняется
// @Tags         callbacks
// @Produce      html
// @Success      200  {string}  string  "Страница неудачной оплаты"
// @Router       /payment/failure [get]
func (h *HTTPHandler) Failure(w http.ResponseWriter, r *http.Request) {
	cb := gateway.ParseFailure(r.URL.Query())
	attempt, found := h.svc.RecordFailure(r.Context(), cb)

	callbackPagesTotal.WithLabelValues("failure").Inc()
	p := page{
		Title:    "Payment failed",
		Message:  "The payment was not completed. No money was taken.",
		RetryURL: h.dashboardURL,
	}
	if cb.Reason != "" {
		p.Message = "The payment was not completed: " + cb.Reason + "."
	}
	if found {
		p.TransactionUUID = attempt.TransactionUUID
		p.TotalAmount = entities.FormatAmount(attempt.TotalAmount)
	}
	h.writePage(w, p, http.StatusOK)
}

// GetAttempt возвращает попытку оплаты по идентификатору транзакции.
// @Summary      Получить попытку оплаты
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        transaction_uuid  path  string  true  "Идентификатор транзакции"
// @Success      200  {object}  Attempt
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Токен не принят"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа к плательщику"
// @Failure      404  {object}  utils.ErrorResponse "Попытка не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payment/attempts/{transaction_uuid} [get]
func (h *HTTPHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	transactionUUID := chi.URLParam(r, "transaction_uuid")

	if err := h.validate.Var(transactionUUID, "required,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	attempt, err := h.svc.GetAttempt(ctx, middleware.TokenFromContext(ctx), transactionUUID)
	if err != nil {
		h.writeReadError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, AttemptEntityToJSON(attempt), http.StatusOK)
}

// ListAttempts возвращает последние попытки оплаты плательщика.
// @Summary      Попытки оплаты плательщика
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        payer_id  query  string  true   "Идентификатор плательщика"
// @Param        limit     query  int     false  "Количество записей (до 100)"
// @Success      200  {array}   Attempt
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Токен не принят"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа к плательщику"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payment/attempts [get]
func (h *HTTPHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payerID := r.URL.Query().Get("payer_id")
	if err := h.validate.Var(payerID, "required,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			utils.WriteError(w, "limit must be between 1 and 100", http.StatusBadRequest)
			return
		}
		limit = n
	}

	attempts, err := h.svc.ListAttempts(ctx, middleware.TokenFromContext(ctx), payerID, limit)
	if err != nil {
		h.writeReadError(ctx, w, err)
		return
	}

	res := make([]Attempt, 0, len(attempts))
	for _, a := range attempts {
		res = append(res, AttemptEntityToJSON(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *HTTPHandler) writeReadError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
		utils.WriteError(w, "invalid bearer token", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "access denied", http.StatusForbidden)
	case errors.Is(err, entities.ErrAttemptNotFound):
		utils.WriteError(w, "attempt not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, "failed to read attempts", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
