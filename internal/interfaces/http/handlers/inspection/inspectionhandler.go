package inspection

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"luster/internal/application/inspection/usecases"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
	"luster/internal/shared/utils"
)

type InspectionHandler struct {
	createInspectionUC usecases.CreateInspectionExecutor
	getInspectionUC    usecases.GetInspectionExecutor
	listInspectionsUC  usecases.ListInspectionsExecutor
	startInspectionUC  usecases.StartInspectionExecutor
	completeUC         usecases.CompleteInspectionExecutor
	cancelUC           usecases.CancelInspectionExecutor
	deleteUC           usecases.DeleteInspectionExecutor
	createActionUC     usecases.CreateCorrectiveActionExecutor
	updateActionUC     usecases.UpdateCorrectiveActionExecutor
	verifyActionUC     usecases.VerifyCorrectiveActionExecutor
	createSignoffUC    usecases.CreateSignoffExecutor
	createReinspUC     usecases.CreateReinspectionExecutor
	listActivitiesUC   usecases.ListActivitiesExecutor
	renderReportUC     usecases.RenderReportExecutor
	logger             logger.Interface
}

func NewInspectionHandler(
	createInspectionUC usecases.CreateInspectionExecutor,
	getInspectionUC usecases.GetInspectionExecutor,
	listInspectionsUC usecases.ListInspectionsExecutor,
	startInspectionUC usecases.StartInspectionExecutor,
	completeUC usecases.CompleteInspectionExecutor,
	cancelUC usecases.CancelInspectionExecutor,
	deleteUC usecases.DeleteInspectionExecutor,
	createActionUC usecases.CreateCorrectiveActionExecutor,
	updateActionUC usecases.UpdateCorrectiveActionExecutor,
	verifyActionUC usecases.VerifyCorrectiveActionExecutor,
	createSignoffUC usecases.CreateSignoffExecutor,
	createReinspUC usecases.CreateReinspectionExecutor,
	listActivitiesUC usecases.ListActivitiesExecutor,
	renderReportUC usecases.RenderReportExecutor,
) *InspectionHandler {
	return &InspectionHandler{
		createInspectionUC: createInspectionUC,
		getInspectionUC:    getInspectionUC,
		listInspectionsUC:  listInspectionsUC,
		startInspectionUC:  startInspectionUC,
		completeUC:         completeUC,
		cancelUC:           cancelUC,
		deleteUC:           deleteUC,
		createActionUC:     createActionUC,
		updateActionUC:     updateActionUC,
		verifyActionUC:     verifyActionUC,
		createSignoffUC:    createSignoffUC,
		createReinspUC:     createReinspUC,
		listActivitiesUC:   listActivitiesUC,
		renderReportUC:     renderReportUC,
		logger:             logger.NewLogger(),
	}
}

// CreateInspection handles POST /inspections
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	var req CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create inspection", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand(actorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createInspectionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inspection created successfully")
}

// GetInspection handles GET /inspections/:id
func (h *InspectionHandler) GetInspection(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetInspectionQuery{
		InspectionID:    inspectionID,
		IncludeGuidance: c.Query("include_guidance") == "true",
	}

	result, err := h.getInspectionUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListInspections handles GET /inspections
func (h *InspectionHandler) ListInspections(c *gin.Context) {
	req, err := parseListInspectionsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listInspectionsUC.Execute(c.Request.Context(), req.ListInspectionsQuery)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Inspections, result.Total, result.Page, result.PageSize)
}

// StartInspection handles POST /inspections/:id/start
func (h *InspectionHandler) StartInspection(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.StartInspectionCommand{
		InspectionID: inspectionID,
		ActorID:      actorID(c),
	}

	result, err := h.startInspectionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspection started successfully", result)
}

// CompleteInspection handles POST /inspections/:id/complete
func (h *InspectionHandler) CompleteInspection(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for complete inspection", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.completeUC.Execute(c.Request.Context(), req.ToCommand(inspectionID, actorID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspection completed successfully", result)
}

// CancelInspection handles POST /inspections/:id/cancel
func (h *InspectionHandler) CancelInspection(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CancelInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CancelInspectionCommand{
		InspectionID: inspectionID,
		Reason:       req.Reason,
		ActorID:      actorID(c),
	}

	result, err := h.cancelUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inspection canceled successfully", result)
}

// DeleteInspection handles DELETE /inspections/:id
func (h *InspectionHandler) DeleteInspection(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteInspectionCommand{InspectionID: inspectionID}
	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreateCorrectiveAction handles POST /inspections/:id/corrective-actions
func (h *InspectionHandler) CreateCorrectiveAction(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCorrectiveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create corrective action", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCorrectiveActionCommand{
		InspectionID: inspectionID,
		ItemID:       req.ItemID,
		Title:        req.Title,
		Description:  req.Description,
		Severity:     req.Severity,
		CreatedBy:    currentUserID(c),
	}

	if req.DueDate != "" {
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.DueDate = &dueDate
	}

	result, err := h.createActionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Corrective action created successfully")
}

// UpdateCorrectiveAction handles PATCH /inspections/:id/corrective-actions/:actionId
func (h *InspectionHandler) UpdateCorrectiveAction(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	actionID, err := parseParamID(c, "actionId", "corrective action")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCorrectiveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateCorrectiveActionCommand{
		InspectionID: inspectionID,
		ActionID:     actionID,
		Title:        req.Title,
		Description:  req.Description,
		Severity:     req.Severity,
		ClearDueDate: req.ClearDueDate,
		Status:       req.Status,
		ActorID:      actorID(c),
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.DueDate = &dueDate
	}

	result, err := h.updateActionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Corrective action updated successfully", result)
}

// VerifyCorrectiveAction handles POST /inspections/:id/corrective-actions/:actionId/verify
func (h *InspectionHandler) VerifyCorrectiveAction(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	actionID, err := parseParamID(c, "actionId", "corrective action")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VerifyCorrectiveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.VerifyCorrectiveActionCommand{
		InspectionID: inspectionID,
		ActionID:     actionID,
		VerifierID:   currentUserID(c),
		Notes:        req.Notes,
	}

	result, err := h.verifyActionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Corrective action verified successfully", result)
}

// CreateSignoff handles POST /inspections/:id/signoffs
func (h *InspectionHandler) CreateSignoff(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateSignoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create signoff", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateSignoffCommand{
		InspectionID: inspectionID,
		SignerType:   req.SignerType,
		SignerName:   req.SignerName,
		SignerTitle:  req.SignerTitle,
		Comments:     req.Comments,
		ActorID:      actorID(c),
	}

	result, err := h.createSignoffUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Sign-off recorded successfully")
}

// CreateReinspection handles POST /inspections/:id/reinspections
func (h *InspectionHandler) CreateReinspection(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateReinspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	scheduledDate, err := parseDate(req.ScheduledDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateReinspectionCommand{
		SourceInspectionID: inspectionID,
		ScheduledDate:      scheduledDate,
		ActorID:            actorID(c),
	}

	result, err := h.createReinspUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Re-inspection created successfully")
}

// ListActivities handles GET /inspections/:id/activities
func (h *InspectionHandler) ListActivities(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listActivitiesUC.Execute(c.Request.Context(), usecases.ListActivitiesQuery{
		InspectionID: inspectionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RenderReport handles GET /inspections/:id/report
func (h *InspectionHandler) RenderReport(c *gin.Context) {
	inspectionID, err := parseInspectionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.RenderReportQuery{
		InspectionID: inspectionID,
		Format:       c.DefaultQuery("format", "html"),
	}

	result, err := h.renderReportUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Data(http.StatusOK, result.ContentType, []byte(result.Content))
}

func parseInspectionID(c *gin.Context) (uint, error) {
	return parseParamID(c, "id", "inspection")
}

func parseParamID(c *gin.Context, name, label string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + label + " ID")
	}
	return uint(id), nil
}

// actorID reads the authenticated user from the context. Nil when the
// request came in without auth context (internal callers, tests).
func actorID(c *gin.Context) *uint {
	if raw, exists := c.Get("user_id"); exists {
		if userID, ok := raw.(uint); ok {
			return &userID
		}
	}
	return nil
}

func currentUserID(c *gin.Context) uint {
	if id := actorID(c); id != nil {
		return *id
	}
	return 0
}
