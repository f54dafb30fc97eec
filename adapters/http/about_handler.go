package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aboutUC "github.com/ojunaidi/portfolio/internal/application/usecase/about"
	"github.com/ojunaidi/portfolio/pkg/apperror"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type AboutHandler struct {
	aboutUseCase *aboutUC.AboutUseCase
	logger       logger.Logger
}

func NewAboutHandler(uc *aboutUC.AboutUseCase, log logger.Logger) *AboutHandler {
	return &AboutHandler{aboutUseCase: uc, logger: log}
}

func (h *AboutHandler) GetAbout(c *gin.Context) {
	output, err := h.aboutUseCase.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if output.About == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, ToAboutDTO(output.About))
}

func (h *AboutHandler) UpdateAbout(c *gin.Context) {
	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := aboutUC.UpsertAboutInput{
		MainIntro:  req.MainIntro,
		Paragraph1: req.Paragraph1,
		Paragraph2: req.Paragraph2,
	}

	output, err := h.aboutUseCase.ExecuteUpsert(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAboutDTO(output.About))
}
