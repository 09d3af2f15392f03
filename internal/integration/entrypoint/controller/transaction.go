package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/application/usecase/transaction"
	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/domain/report"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests, optionally filtered by ?month=&year=.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	month, monthOK := optionalInt(ctx, "month")
	year, yearOK := optionalInt(ctx, "year")
	if !monthOK || !yearOK {
		respondInvalidPeriod(ctx)
		return
	}

	c.list(ctx, transaction.ListTransactionsInput{UserID: userID, Month: month, Year: year})
}

// ListByPeriod handles GET /transactions/month/:month/:year requests.
func (c *TransactionController) ListByPeriod(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	month, year, ok := pathPeriod(ctx)
	if !ok {
		respondInvalidPeriod(ctx)
		return
	}

	c.list(ctx, transaction.ListTransactionsInput{UserID: userID, Month: &month, Year: &year})
}

func (c *TransactionController) list(ctx *gin.Context, input transaction.ListTransactionsInput) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := transactionIDParam(ctx)
	if !ok {
		return
	}

	txn, err := c.getUseCase.Execute(ctx.Request.Context(), userID, transactionID)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body: amount is required", string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	// An empty date is left for the use case to report as missing.
	var date time.Time
	if req.Date != "" {
		parsed, ok := parseTransactionDate(ctx, req.Date)
		if !ok {
			return
		}
		date = parsed
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Amount:      *req.Amount,
		Description: req.Description,
		Type:        entity.TransactionType(req.Type),
		Category:    req.Category,
		Date:        date,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := transactionIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body", string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.Date != nil {
		date, ok := parseTransactionDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := transactionIDParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func transactionIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		// A malformed ID cannot name an existing transaction.
		respondError(ctx, http.StatusNotFound, "transaction not found", string(domainerror.ErrCodeTransactionNotFound))
		return uuid.Nil, false
	}
	return id, true
}

func parseTransactionDate(ctx *gin.Context, value string) (time.Time, bool) {
	date, err := report.ParseDate(value)
	if err != nil {
		respondError(ctx, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidTransactionDate))
		return time.Time{}, false
	}
	return date, true
}

func respondInvalidPeriod(ctx *gin.Context) {
	respondError(ctx, http.StatusBadRequest, "month and year must be integers", string(domainerror.ErrCodeInvalidTransactionPeriod))
}

func handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		respondError(ctx, transactionStatus(txnErr.Code), txnErr.Message, string(txnErr.Code))
		return
	}
	respondInternal(ctx)
}

func transactionStatus(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeCategoryTooLong,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeInvalidTransactionPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
