package template

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"luster/internal/application/template/usecases"
	"luster/internal/shared/errors"
	"luster/internal/shared/logger"
	"luster/internal/shared/utils"
)

type TemplateItemRequest struct {
	Category string `json:"category" binding:"required,max=100"`
	Text     string `json:"text" binding:"required"`
	Weight   int    `json:"weight" binding:"omitempty,min=1,max=10"`
}

type CreateTemplateRequest struct {
	Name        string                `json:"name" binding:"required,max=200"`
	Description string                `json:"description,omitempty" binding:"max=2000"`
	ContractID  *uint                 `json:"contract_id,omitempty"`
	Items       []TemplateItemRequest `json:"items" binding:"required,min=1"`
}

type UpdateTemplateRequest struct {
	Name        *string               `json:"name,omitempty" binding:"omitempty,max=200"`
	Description *string               `json:"description,omitempty" binding:"omitempty,max=2000"`
	Items       []TemplateItemRequest `json:"items,omitempty"`
}

func toItemInputs(items []TemplateItemRequest) []usecases.TemplateItemInput {
	inputs := make([]usecases.TemplateItemInput, 0, len(items))
	for _, item := range items {
		weight := item.Weight
		if weight == 0 {
			weight = 1
		}
		inputs = append(inputs, usecases.TemplateItemInput{
			Category: item.Category,
			Text:     item.Text,
			Weight:   weight,
		})
	}
	return inputs
}

type TemplateHandler struct {
	createTemplateUC  usecases.CreateTemplateExecutor
	updateTemplateUC  usecases.UpdateTemplateExecutor
	archiveTemplateUC usecases.ArchiveTemplateExecutor
	restoreTemplateUC usecases.RestoreTemplateExecutor
	getTemplateUC     usecases.GetTemplateExecutor
	listTemplatesUC   usecases.ListTemplatesExecutor
	logger            logger.Interface
}

func NewTemplateHandler(
	createTemplateUC usecases.CreateTemplateExecutor,
	updateTemplateUC usecases.UpdateTemplateExecutor,
	archiveTemplateUC usecases.ArchiveTemplateExecutor,
	restoreTemplateUC usecases.RestoreTemplateExecutor,
	getTemplateUC usecases.GetTemplateExecutor,
	listTemplatesUC usecases.ListTemplatesExecutor,
) *TemplateHandler {
	return &TemplateHandler{
		createTemplateUC:  createTemplateUC,
		updateTemplateUC:  updateTemplateUC,
		archiveTemplateUC: archiveTemplateUC,
		restoreTemplateUC: restoreTemplateUC,
		getTemplateUC:     getTemplateUC,
		listTemplatesUC:   listTemplatesUC,
		logger:            logger.NewLogger(),
	}
}

// CreateTemplate handles POST /inspection-templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create template", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTemplateCommand{
		Name:        req.Name,
		Description: req.Description,
		ContractID:  req.ContractID,
		Items:       toItemInputs(req.Items),
	}

	result, err := h.createTemplateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Template created successfully")
}

// UpdateTemplate handles PATCH /inspection-templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID, err := parseTemplateID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTemplateCommand{
		TemplateID:  templateID,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Items != nil {
		cmd.Items = toItemInputs(req.Items)
	}

	result, err := h.updateTemplateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template updated successfully", result)
}

// ArchiveTemplate handles POST /inspection-templates/:id/archive
func (h *TemplateHandler) ArchiveTemplate(c *gin.Context) {
	templateID, err := parseTemplateID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.archiveTemplateUC.Execute(c.Request.Context(), usecases.ArchiveTemplateCommand{
		TemplateID: templateID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template archived successfully", nil)
}

// RestoreTemplate handles POST /inspection-templates/:id/restore
func (h *TemplateHandler) RestoreTemplate(c *gin.Context) {
	templateID, err := parseTemplateID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.restoreTemplateUC.Execute(c.Request.Context(), usecases.RestoreTemplateCommand{
		TemplateID: templateID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template restored successfully", nil)
}

// GetTemplate handles GET /inspection-templates/:id
// The path parameter accepts either a numeric ID or a template SID.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	query := usecases.GetTemplateQuery{}

	idStr := c.Param("id")
	if id, err := strconv.ParseUint(idStr, 10, 32); err == nil && id > 0 {
		query.TemplateID = uint(id)
	} else {
		query.SID = idStr
	}

	result, err := h.getTemplateUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTemplates handles GET /inspection-templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := usecases.ListTemplatesQuery{
		Name:            c.Query("name"),
		IncludeArchived: c.Query("include_archived") == "true",
		Page:            page,
		PageSize:        pageSize,
	}

	if contractIDStr := c.Query("contract_id"); contractIDStr != "" {
		contractID, err := strconv.ParseUint(contractIDStr, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid contract_id"))
			return
		}
		id := uint(contractID)
		query.ContractID = &id
	}

	result, err := h.listTemplatesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Templates, result.Total, result.Page, result.PageSize)
}

func parseTemplateID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid template ID")
	}
	return uint(id), nil
}
