package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/ojunaidi/portfolio/internal/application/usecase/experience"
	"github.com/ojunaidi/portfolio/pkg/apperror"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc, logger: log}
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	output, err := h.experienceUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ExperienceDTO, len(output.Items))
	for i, e := range output.Items {
		dtos[i] = ToExperienceDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := experienceUC.CreateExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		IsCurrent:   req.IsCurrent,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	output, err := h.experienceUseCase.ExecuteCreate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	input := experienceUC.DeleteExperienceInput{ExperienceID: experienceID}
	if err := h.experienceUseCase.ExecuteDelete(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
