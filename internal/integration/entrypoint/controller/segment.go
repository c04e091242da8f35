package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/application/usecase/segment"
	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/dto"
	"github.com/expense-segmentation/backend/internal/integration/entrypoint/middleware"
)

// SegmentController handles expense segment endpoints.
type SegmentController struct {
	listUseCase        *segment.ListSegmentsUseCase
	createUseCase      *segment.CreateSegmentUseCase
	createBatchUseCase *segment.CreateSegmentsUseCase
	replaceUseCase     *segment.ReplaceSegmentsUseCase
	updateUseCase      *segment.UpdateSegmentUseCase
	deleteUseCase      *segment.DeleteSegmentUseCase
}

// NewSegmentController creates a new segment controller instance.
func NewSegmentController(
	listUseCase *segment.ListSegmentsUseCase,
	createUseCase *segment.CreateSegmentUseCase,
	createBatchUseCase *segment.CreateSegmentsUseCase,
	replaceUseCase *segment.ReplaceSegmentsUseCase,
	updateUseCase *segment.UpdateSegmentUseCase,
	deleteUseCase *segment.DeleteSegmentUseCase,
) *SegmentController {
	return &SegmentController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		createBatchUseCase: createBatchUseCase,
		replaceUseCase:     replaceUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// List handles GET /expenses/:id/segments requests.
func (c *SegmentController) List(ctx *gin.Context) {
	principal, expenseID, ok := c.requestScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), segment.ListSegmentsInput{
		ExpenseID: expenseID,
		Principal: principal,
	})
	if err != nil {
		c.handleSegmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSegmentListResponse(output.Segments))
}

// Create handles POST /expenses/:id/segments requests. It creates the first
// and only segment of an unsegmented expense, covering the full amount.
func (c *SegmentController) Create(ctx *gin.Context) {
	principal, expenseID, ok := c.requestScope(ctx)
	if !ok {
		return
	}

	var req dto.SegmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidSegmentBody(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), segment.CreateSegmentInput{
		ExpenseID:  expenseID,
		Principal:  principal,
		Category:   req.Category,
		Amount:     req.Amount,
		Percentage: req.Percentage,
	})
	if err != nil {
		c.handleSegmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSegmentResponse(output.Segment))
}

// CreateBatch handles POST /expenses/:id/segments/batch requests.
func (c *SegmentController) CreateBatch(ctx *gin.Context) {
	principal, expenseID, ok := c.requestScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateSegmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidSegmentBody(ctx)
		return
	}

	output, err := c.createBatchUseCase.Execute(ctx.Request.Context(), segment.CreateSegmentsInput{
		ExpenseID: expenseID,
		Principal: principal,
		Segments:  dto.ToSegmentInputs(req.Segments),
	})
	if err != nil {
		c.handleSegmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSegmentListResponse(output.Segments))
}

// Replace handles PUT /expenses/:id/segments requests.
func (c *SegmentController) Replace(ctx *gin.Context) {
	principal, expenseID, ok := c.requestScope(ctx)
	if !ok {
		return
	}

	var req dto.ReplaceSegmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidSegmentBody(ctx)
		return
	}

	output, err := c.replaceUseCase.Execute(ctx.Request.Context(), segment.ReplaceSegmentsInput{
		ExpenseID: expenseID,
		Principal: principal,
		Segments:  dto.ToSegmentInputs(req.Segments),
	})
	if err != nil {
		c.handleSegmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSegmentListResponse(output.Segments))
}

// Update handles PATCH /expenses/:id/segments/:segmentId requests.
func (c *SegmentController) Update(ctx *gin.Context) {
	principal, expenseID, ok := c.requestScope(ctx)
	if !ok {
		return
	}

	segmentID, err := uuid.Parse(ctx.Param("segmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid segment ID",
		})
		return
	}

	var req dto.UpdateSegmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidSegmentBody(ctx)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), segment.UpdateSegmentInput{
		ExpenseID:  expenseID,
		SegmentID:  segmentID,
		Principal:  principal,
		Category:   req.Category,
		Amount:     req.Amount,
		Percentage: req.Percentage,
	})
	if err != nil {
		c.handleSegmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSegmentResponse(output.Segment))
}

// Delete handles DELETE /expenses/:id/segments/:segmentId requests.
func (c *SegmentController) Delete(ctx *gin.Context) {
	principal, expenseID, ok := c.requestScope(ctx)
	if !ok {
		return
	}

	segmentID, err := uuid.Parse(ctx.Param("segmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid segment ID",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), segment.DeleteSegmentInput{
		ExpenseID: expenseID,
		SegmentID: segmentID,
		Principal: principal,
	})
	if err != nil {
		c.handleSegmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Segment deleted"})
}

// requestScope extracts the principal and expense ID shared by all segment
// handlers, writing the error response itself when either is missing.
func (c *SegmentController) requestScope(ctx *gin.Context) (entity.Principal, uuid.UUID, bool) {
	principal, found := middleware.GetPrincipalFromContext(ctx)
	if !found {
		respondUnauthenticated(ctx)
		return principal, uuid.Nil, false
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
		})
		return principal, uuid.Nil, false
	}

	return principal, expenseID, true
}

// handleSegmentError maps segment engine errors to HTTP responses.
func (c *SegmentController) handleSegmentError(ctx *gin.Context, err error) {
	var segErr *domainerror.SegmentError
	if errors.As(err, &segErr) {
		status := http.StatusBadRequest
		switch segErr.Code {
		case domainerror.ErrCodeSegmentNotFound, domainerror.ErrCodeSegmentExpenseNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeNotAuthorizedSegments:
			status = http.StatusForbidden
		case domainerror.ErrCodeSegmentsAlreadyExist:
			status = http.StatusConflict
		case domainerror.ErrCodeSegmentStoreConflict:
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: segErr.Message,
			Code:  string(segErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func respondInvalidSegmentBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeEmptySegmentSet),
	})
}
