package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finacct/check_deposit_app/internal/core/ports/services"
	"github.com/finacct/check_deposit_app/internal/dto"
	"github.com/finacct/check_deposit_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// depositHandler handles HTTP requests for the check deposit workflow.
type depositHandler struct {
	depositService portssvc.DepositSvcFacade
}

// newDepositHandler creates a new depositHandler.
func newDepositHandler(ds portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{
		depositService: ds,
	}
}

// RegisterDepositRoutes registers deposit routes nested under a company.
// Exported so the handler tests can mount the routes on a bare router.
func RegisterDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositService)

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.createDeposit)
		deposits.GET("", h.listDeposits)
		deposits.GET("/:depositID", h.getDeposit)
		deposits.PUT("/:depositID", h.updateDeposit)
		deposits.DELETE("/:depositID", h.deleteDeposit)

		// Workflow endpoints
		deposits.POST("/:depositID/checks", h.attachChecks)
		deposits.DELETE("/:depositID/checks", h.detachChecks)
		deposits.POST("/:depositID/get-all-checks", h.getAllChecks)
		deposits.POST("/:depositID/validate", h.validateDeposit)
		deposits.POST("/:depositID/backtodraft", h.backToDraft)
		deposits.GET("/:depositID/slip", h.getDepositSlip)
	}
}

// requestContext pulls the logger and authenticated user out of the request.
// Every deposit endpoint needs both.
func requestContext(c *gin.Context) (*slog.Logger, string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return logger, "", false
	}
	return logger, userID, true
}

// createDeposit godoc
// @Summary Create a check deposit
// @Description Creates a draft deposit. Journals and currency default when omitted and the company has exactly one candidate.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input or no default journal"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits [post]
func (h *depositHandler) createDeposit(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("creator_user_id", userID))

	deposit, err := h.depositService.CreateDeposit(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create deposit")
		return
	}

	logger.Info("Deposit created successfully", slog.String("deposit_id", deposit.DepositID), slog.String("deposit_name", deposit.Name))
	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// listDeposits godoc
// @Summary List check deposits
// @Description Retrieves a paginated list of the company's deposits.
// @Tags deposits
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListDepositsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits [get]
func (h *depositHandler) listDeposits(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")

	var params dto.ListDepositsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListDeposits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.depositService.ListDeposits(c.Request.Context(), companyID, userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list deposits")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDeposit godoc
// @Summary Get a check deposit
// @Description Retrieves a deposit with its totals and attached check lines.
// @Tags deposits
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Success 200 {object} dto.GetDepositResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID} [get]
func (h *depositHandler) getDeposit(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	deposit, checks, err := h.depositService.GetDepositByID(c.Request.Context(), companyID, depositID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve deposit")
		return
	}

	c.JSON(http.StatusOK, dto.GetDepositResponse{
		Deposit: dto.ToDepositResponse(deposit),
		Checks:  dto.ToMoveLineResponses(checks),
	})
}

// updateDeposit godoc
// @Summary Update a check deposit
// @Description Updates a draft deposit's date, journals or currency. Validated deposits cannot be changed.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Param   deposit body dto.UpdateDepositRequest true "Fields to update"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit is not in draft"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID} [put]
func (h *depositHandler) updateDeposit(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	var req dto.UpdateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.UpdateDeposit(c.Request.Context(), companyID, depositID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update deposit")
		return
	}

	logger.Info("Deposit updated successfully", slog.String("deposit_id", depositID))
	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// deleteDeposit godoc
// @Summary Delete a check deposit
// @Description Deletes a deposit and releases its checks. Validated deposits must be set back to draft first.
// @Tags deposits
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit is validated"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID} [delete]
func (h *depositHandler) deleteDeposit(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	if err := h.depositService.DeleteDeposit(c.Request.Context(), companyID, depositID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete deposit")
		return
	}

	logger.Info("Deposit deleted successfully", slog.String("deposit_id", depositID))
	c.Status(http.StatusNoContent)
}

// attachChecks godoc
// @Summary Attach checks to a deposit
// @Description Attaches in-hand check move lines to a draft deposit.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Param   checks body dto.AttachChecksRequest true "Move line IDs"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Line is not an eligible check"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit or line not found"
// @Failure 409 {object} map[string]string "Line already belongs to another deposit"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID}/checks [post]
func (h *depositHandler) attachChecks(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	var req dto.AttachChecksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AttachChecks", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.depositService.AttachChecks(c.Request.Context(), companyID, depositID, req.LineIDs, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to attach checks")
		return
	}

	logger.Info("Checks attached to deposit", slog.String("deposit_id", depositID), slog.Int("count", len(req.LineIDs)))
	c.Status(http.StatusNoContent)
}

// detachChecks godoc
// @Summary Detach checks from a deposit
// @Description Detaches check move lines from a draft deposit.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Param   checks body dto.AttachChecksRequest true "Move line IDs"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit is not in draft"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID}/checks [delete]
func (h *depositHandler) detachChecks(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	var req dto.AttachChecksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DetachChecks", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.depositService.DetachChecks(c.Request.Context(), companyID, depositID, req.LineIDs, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to detach checks")
		return
	}

	logger.Info("Checks detached from deposit", slog.String("deposit_id", depositID), slog.Int("count", len(req.LineIDs)))
	c.Status(http.StatusNoContent)
}

// getAllChecks godoc
// @Summary Attach all pending checks
// @Description Attaches every in-hand check in the deposit currency to the draft deposit.
// @Tags deposits
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Success 200 {object} dto.GetAllChecksResponse
// @Failure 409 {object} map[string]string "No pending checks in the deposit currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID}/get-all-checks [post]
func (h *depositHandler) getAllChecks(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	attached, err := h.depositService.GetAllChecks(c.Request.Context(), companyID, depositID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to attach pending checks")
		return
	}

	logger.Info("Pending checks attached to deposit", slog.String("deposit_id", depositID), slog.Int("attached", attached))
	c.JSON(http.StatusOK, dto.GetAllChecksResponse{Attached: attached})
}

// validateDeposit godoc
// @Summary Validate a check deposit
// @Description Books and posts the deposit journal entry, reconciles each check against its transfer line and marks the deposit done.
// @Tags deposits
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Deposit has no checks"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit is already validated or no counterpart account is configured"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID}/validate [post]
func (h *depositHandler) validateDeposit(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	deposit, err := h.depositService.ValidateDeposit(c.Request.Context(), companyID, depositID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to validate deposit")
		return
	}

	logger.Info("Deposit validated successfully", slog.String("deposit_id", depositID), slog.String("move_id", *deposit.MoveID))
	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// backToDraft godoc
// @Summary Set a deposit back to draft
// @Description Unposts and deletes the deposit journal entry, undoes the reconciliations and returns the deposit to draft. Checks stay attached.
// @Tags deposits
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit is not validated or its journal locks posted entries"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID}/backtodraft [post]
func (h *depositHandler) backToDraft(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	deposit, err := h.depositService.BackToDraft(c.Request.Context(), companyID, depositID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to set deposit back to draft")
		return
	}

	logger.Info("Deposit set back to draft", slog.String("deposit_id", depositID))
	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// getDepositSlip godoc
// @Summary Get the deposit slip
// @Description Builds the printable slip handed to the bank with the checks.
// @Tags deposits
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   depositID path string true "Deposit ID"
// @Success 200 {object} dto.DepositSlip
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Security BearerAuth
// @Router /companies/{companyID}/deposits/{depositID}/slip [get]
func (h *depositHandler) getDepositSlip(c *gin.Context) {
	logger, userID, ok := requestContext(c)
	if !ok {
		return
	}
	companyID := c.Param("companyID")
	depositID := c.Param("depositID")

	slip, err := h.depositService.GetDepositSlip(c.Request.Context(), companyID, depositID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build deposit slip")
		return
	}

	c.JSON(http.StatusOK, slip)
}
