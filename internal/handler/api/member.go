package api

import (
	"net/http"

	resdto "fitcoach-booking/internal/handler/dto/response"
	"fitcoach-booking/internal/handler/httperr"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members queries.MemberQueries
	users   queries.UserQueries
}

func NewMemberHandler(members queries.MemberQueries, users queries.UserQueries) *MemberHandler {
	return &MemberHandler{members: members, users: users}
}

// @Summary Member session credit
// @Description Stored counters next to the number of confirmed appointments
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Member ID"
// @Success 200 {object} resdto.MemberCreditResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/members/{memberID}/credit [get]
func (h *MemberHandler) Credit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "memberID")
	if !ok {
		return
	}

	view, err := h.members.GetCredit(c.Request.Context(), actor, memberID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberCredit(view))
}

// @Summary Current user
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/me [get]
func (h *MemberHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(view))
}
