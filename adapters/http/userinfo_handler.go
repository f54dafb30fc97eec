package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userinfoUC "github.com/ojunaidi/portfolio/internal/application/usecase/userinfo"
	"github.com/ojunaidi/portfolio/pkg/apperror"
	"github.com/ojunaidi/portfolio/pkg/logger"
)

type UserInfoHandler struct {
	userInfoUseCase *userinfoUC.UserInfoUseCase
	logger          logger.Logger
}

func NewUserInfoHandler(uc *userinfoUC.UserInfoUseCase, log logger.Logger) *UserInfoHandler {
	return &UserInfoHandler{userInfoUseCase: uc, logger: log}
}

// GetUserInfo returns the singleton row, or a JSON null body when nothing
// has been saved yet. Absence is not an error.
func (h *UserInfoHandler) GetUserInfo(c *gin.Context) {
	output, err := h.userInfoUseCase.ExecuteGet(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if output.UserInfo == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, ToUserInfoDTO(output.UserInfo))
}

func (h *UserInfoHandler) UpdateUserInfo(c *gin.Context) {
	var req UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := userinfoUC.UpsertUserInfoInput{
		FullName:  req.FullName,
		JobTitle:  req.JobTitle,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		BirthDate: req.BirthDate,
	}

	output, err := h.userInfoUseCase.ExecuteUpsert(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUserInfoDTO(output.UserInfo))
}
