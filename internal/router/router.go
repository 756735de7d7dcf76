package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/middleware"
)

type Handler interface {
	CreateSlot(c *ginext.Context)
	ListAvailableSlots(c *ginext.Context)
	ListMySlots(c *ginext.Context)
	DeleteSlot(c *ginext.Context)
	ScheduleInterview(c *ginext.Context)
	GetInterviewByApplication(c *ginext.Context)
	ListInterviews(c *ginext.Context)
	GetInterview(c *ginext.Context)
	ReviewInterview(c *ginext.Context)
	CancelInterview(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth *middleware.Auth, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api/interviews")
	{
		// Public: applicants browse and book without an account.
		api.GET("/slots/available", h.ListAvailableSlots)
		api.POST("/schedule", h.ScheduleInterview)
		api.GET("/application/:applicationId", h.GetInterviewByApplication)

		staff := api.Group("", auth.Authenticate(), auth.RequireRoles(domain.RoleAdmin, domain.RoleMentor))
		{
			staff.POST("/slots", h.CreateSlot)
			staff.GET("/slots/my-slots", h.ListMySlots)
			staff.DELETE("/slots/:id", h.DeleteSlot)
			staff.GET("", h.ListInterviews)
			staff.GET("/:id", h.GetInterview)
			staff.PATCH("/:id/cancel", h.CancelInterview)
		}

		admin := api.Group("", auth.Authenticate(), auth.RequireRoles(domain.RoleAdmin))
		{
			admin.PATCH("/:id/review", h.ReviewInterview)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
