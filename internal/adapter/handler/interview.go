package handler

import (
	stdErrors "errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bgnclinic/blog-automation/errors"
	"github.com/bgnclinic/blog-automation/internal/adapter/dto/interview"
	usecaseErrors "github.com/bgnclinic/blog-automation/internal/usecase/errors"
	"github.com/bgnclinic/blog-automation/internal/usecase/pipeline"
)

// Interview exposes the analysis-to-publish pipeline over HTTP
type Interview struct {
	pipeline *pipeline.Service
	logger   *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(pipeline *pipeline.Service, logger *zap.Logger) *Interview {
	return &Interview{
		pipeline: pipeline,
		logger:   logger,
	}
}

// Analyze extracts a structured fact from raw interview text
func (h *Interview) Analyze(c echo.Context) error {
	var req interview.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrAnalysisTextEmpty())
	}
	if strings.TrimSpace(req.Text) == "" {
		return HandleError(h.logger, c, errors.ErrAnalysisTextEmpty())
	}

	fact, err := h.pipeline.Analyze(c.Request().Context(), req.Text)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrAnalysisFailed(err))
	}

	return HandleSuccess(h.logger, c, interview.NewFactResponse(fact))
}

// Compose builds a content package for an analyzed fact
func (h *Interview) Compose(c echo.Context) error {
	var req interview.ComposeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	factID, err := uuid.Parse(req.FactID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("fact_id must be a valid UUID"))
	}

	content, err := h.pipeline.Compose(c.Request().Context(), factID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, interview.NewContentResponse(content))
}

// Illustrate generates images for a content package
func (h *Interview) Illustrate(c echo.Context) error {
	var req interview.IllustrateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("content_id must be a valid UUID"))
	}

	urls, err := h.pipeline.Illustrate(c.Request().Context(), contentID)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{"image_urls": urls})
}

// Publish pushes a content package to WordPress
func (h *Interview) Publish(c echo.Context) error {
	var req interview.PublishRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("content_id must be a valid UUID"))
	}

	content, err := h.pipeline.Publish(c.Request().Context(), contentID, req.Status)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, interview.NewContentResponse(content))
}

// Run executes the whole pipeline for one interview text
func (h *Interview) Run(c echo.Context) error {
	var req interview.RunRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrAnalysisTextEmpty())
	}
	if strings.TrimSpace(req.Text) == "" {
		return HandleError(h.logger, c, errors.ErrAnalysisTextEmpty())
	}

	result, err := h.pipeline.Run(c.Request().Context(), req.Text, pipeline.RunOptions{
		GenerateImages: req.GenerateImages,
		Publish:        req.Publish,
		Status:         req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	resp := interview.RunResponse{
		Fact:      interview.NewFactResponse(result.Fact),
		Content:   interview.NewContentResponse(result.Content),
		ImageURLs: result.ImageURLs,
		Published: result.Published,
	}
	return HandleSuccess(h.logger, c, resp)
}

// ListFacts returns recent facts, optionally filtered by department
func (h *Interview) ListFacts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	department := c.QueryParam("department")

	facts, err := h.pipeline.ListFacts(c.Request().Context(), department, limit, offset)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	resp := make([]*interview.FactResponse, 0, len(facts))
	for _, fact := range facts {
		resp = append(resp, interview.NewFactResponse(fact))
	}
	return HandleSuccess(h.logger, c, resp)
}

// GetFact returns a stored interview fact
func (h *Interview) GetFact(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("id must be a valid UUID"))
	}

	fact, err := h.pipeline.GetFact(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, interview.NewFactResponse(fact))
}

// GetContent returns a stored content package
func (h *Interview) GetContent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("id must be a valid UUID"))
	}

	content, err := h.pipeline.GetContent(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, interview.NewContentResponse(content))
}

// mapError translates pipeline errors into API errors
func (h *Interview) mapError(err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrFactNotFound):
		return errors.ErrNotFound("interview fact")
	case stdErrors.Is(err, usecaseErrors.ErrContentNotFound):
		return errors.ErrNotFound("generated content")
	case stdErrors.Is(err, usecaseErrors.ErrAlreadyPublished):
		return errors.ErrAlreadyExists("wordpress post")
	case stdErrors.Is(err, usecaseErrors.ErrPublisherUnavailable):
		return errors.ErrInvalidArgument("wordpress publishing is not configured")
	case stdErrors.Is(err, usecaseErrors.ErrImageFailed):
		return errors.ErrImageGenerationFailed("", err)
	case stdErrors.Is(err, usecaseErrors.ErrPublishFailed):
		return errors.ErrPublishFailed("", err)
	default:
		return errors.ErrInternal(err)
	}
}
