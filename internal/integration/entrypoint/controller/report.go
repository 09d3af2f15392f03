package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/reports-api/internal/application/usecase/report"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
	"github.com/finance-tracker/reports-api/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	monthlyUseCase  *report.GetMonthlyReportUseCase
	yearlyUseCase   *report.GetYearlyReportUseCase
	emailUseCase    *report.EmailMonthlyReportUseCase
	insightsUseCase *report.GetInsightsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlyUseCase *report.GetMonthlyReportUseCase,
	yearlyUseCase *report.GetYearlyReportUseCase,
	emailUseCase *report.EmailMonthlyReportUseCase,
	insightsUseCase *report.GetInsightsUseCase,
) *ReportController {
	return &ReportController{
		monthlyUseCase:  monthlyUseCase,
		yearlyUseCase:   yearlyUseCase,
		emailUseCase:    emailUseCase,
		insightsUseCase: insightsUseCase,
	}
}

// Monthly handles GET /reports/monthly requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	input, ok := monthlyInput(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output.Report, output.Cached))
}

// Yearly handles GET /reports/yearly requests.
func (c *ReportController) Yearly(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	year, ok := optionalInt(ctx, "year")
	if !ok {
		respondError(ctx, http.StatusBadRequest, "year must be an integer", string(domainerror.ErrCodeInvalidReportYear))
		return
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), report.GetYearlyReportInput{UserID: userID, Year: year})
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearlyReportResponse(output.Report, output.Cached))
}

// Email handles POST /reports/monthly/email requests.
func (c *ReportController) Email(ctx *gin.Context) {
	input, ok := monthlyInput(ctx)
	if !ok {
		return
	}

	output, err := c.emailUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ReportEmailResponse{
		Message: "Report email queued",
		Period:  output.Period,
		SentTo:  output.SentTo,
	})
}

// Insights handles GET /reports/monthly/insights requests.
func (c *ReportController) Insights(ctx *gin.Context) {
	input, ok := monthlyInput(ctx)
	if !ok {
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightResponse{
		Period:  output.Period,
		Summary: output.Summary,
		Insight: output.Insight,
	})
}

func monthlyInput(ctx *gin.Context) (report.GetMonthlyReportInput, bool) {
	userID, ok := currentUser(ctx)
	if !ok {
		return report.GetMonthlyReportInput{}, false
	}

	month, ok := optionalInt(ctx, "month")
	if !ok {
		respondError(ctx, http.StatusBadRequest, "month must be an integer", string(domainerror.ErrCodeInvalidReportMonth))
		return report.GetMonthlyReportInput{}, false
	}
	year, ok := optionalInt(ctx, "year")
	if !ok {
		respondError(ctx, http.StatusBadRequest, "year must be an integer", string(domainerror.ErrCodeInvalidReportYear))
		return report.GetMonthlyReportInput{}, false
	}

	return report.GetMonthlyReportInput{UserID: userID, Month: month, Year: year}, true
}

func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		respondError(ctx, reportStatus(reportErr.Code), reportErr.Message, string(reportErr.Code))
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		respondError(ctx, authStatus(authErr.Code), authErr.Message, string(authErr.Code))
		return
	}

	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		respondError(ctx, http.StatusServiceUnavailable, "report email could not be queued", string(emailErr.Code))
		return
	}

	respondError(ctx, http.StatusInternalServerError, "An internal error occurred", string(domainerror.ErrCodeReportInternalError))
}

func reportStatus(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReportMonth, domainerror.ErrCodeInvalidReportYear:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsightsUnavailable:
		return http.StatusServiceUnavailable
	default:
		// Malformed stored records are a server-side problem.
		return http.StatusInternalServerError
	}
}
