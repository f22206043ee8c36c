// file: routes/router.go
package routes

import (
	"NovaCTF/controllers"
	"NovaCTF/middlewares"
	"NovaCTF/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestIDMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := r.Group("/api/v1")
	{
		// --- 用户 ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/:id", controllers.GetUserDetail)
			usersAuth.GET("/:id/solves", controllers.GetUserSolves)
		}
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/users", controllers.GetUserList)
			adminRoutes.DELETE("/users/:id", controllers.DeleteUser)
			adminRoutes.PUT("/users/:id/status", controllers.UpdateUserStatus)
			adminRoutes.PUT("/users/:id/role", middlewares.RoleAuthMiddleware(models.RoleRootAdmin), controllers.UpdateUserRole)

			adminRoutes.GET("/challenges", controllers.AdminListChallenges)
			adminRoutes.GET("/challenges/:id", controllers.AdminGetChallengeDetail)
			adminRoutes.POST("/challenges/recalculate", controllers.RecalculateScores)

			adminRoutes.GET("/submissions", controllers.GetSubmissionLogs)
			adminRoutes.GET("/submissions/compare", controllers.CompareFlagSubmissions)

			adminRoutes.GET("/settings", controllers.GetSettings)
			adminRoutes.PUT("/settings", controllers.UpdateSetting)
		}

		// --- 队伍 ---
		teamRoutes := apiV1.Group("/teams")
		teamRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			teamRoutes.POST("", controllers.CreateTeam)
			teamRoutes.POST("/join", controllers.JoinTeam)
			teamRoutes.POST("/leave", controllers.LeaveTeam)
			teamRoutes.GET("/:id", controllers.GetTeamDetail)
			teamRoutes.GET("/:id/solves", controllers.GetTeamSolves)
			teamRoutes.DELETE("/:id", controllers.DisbandTeam)
			teamRoutes.DELETE("/:id/members/:user_id", controllers.KickMember)
			teamRoutes.PUT("/:id", controllers.UpdateTeam)
		}
		adminTeamRoutes := apiV1.Group("/admin/teams")
		adminTeamRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminTeamRoutes.GET("", controllers.AdminGetTeams)
			adminTeamRoutes.PUT("/:id/status", controllers.AdminUpdateTeamStatus)
			adminTeamRoutes.DELETE("/:id", controllers.AdminDeleteTeam)
		}

		// --- 题目分类 ---
		categoryRoutes := apiV1.Group("/categories")
		{
			categoryRoutes.GET("", controllers.GetCategoryList)
			categoryRoutes.GET("/:id", controllers.GetCategoryDetail)

			categoryRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateCategory)
			categoryRoutes.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateCategory)
			categoryRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteCategory)
		}

		// --- 题目 ---
		challengeRoutes := apiV1.Group("/challenges")
		{
			challengeRoutes.GET("", middlewares.JWTAuthMiddleware(), controllers.ListChallenges)
			challengeRoutes.GET("/:id", middlewares.JWTAuthMiddleware(), controllers.GetChallengeDetail)
			challengeRoutes.GET("/:id/attachments", middlewares.JWTAuthMiddleware(), controllers.ListAttachments)

			challengeRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateChallenge)
			challengeRoutes.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateChallenge)
			challengeRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteChallenge)

			challengeRoutes.POST("/:id/attachments", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.AddAttachment)
			challengeRoutes.POST("/:id/hints", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateHint)
		}

		// --- Flag 提交 ---
		apiV1.POST("/submissions", middlewares.JWTAuthMiddleware(), controllers.SubmitFlag)

		// --- 附件下载统一网关 ---
		attachmentRoutes := apiV1.Group("/attachments")
		{
			attachmentRoutes.GET("/:attachment_id/download", middlewares.JWTAuthMiddleware(), controllers.DownloadAttachment)
			attachmentRoutes.PUT("/:attachment_id/status", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateAttachmentStatus)
			attachmentRoutes.DELETE("/:attachment_id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteAttachment)
		}

		// --- 提示 ---
		hintRoutes := apiV1.Group("/hints")
		{
			hintRoutes.POST("/:hint_id/unlock", middlewares.JWTAuthMiddleware(), controllers.UnlockHint)
			hintRoutes.PUT("/:hint_id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateHint)
			hintRoutes.DELETE("/:hint_id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteHint)
		}

		// --- 排行榜与动态 ---
		apiV1.GET("/scoreboard", controllers.GetScoreboard)
		apiV1.GET("/solves/feed", controllers.GetSolveFeed)

		// --- 公告 ---
		notificationRoutes := apiV1.Group("/notifications")
		{
			notificationRoutes.GET("", controllers.GetNotifications)
			notificationRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateNotification)
			notificationRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteNotification)
		}
	}

	return r
}
