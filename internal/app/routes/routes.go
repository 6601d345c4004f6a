package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/controllers"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	candidateController *controllers.CandidateController,
	lecturerController *controllers.LecturerController,
	courseController *controllers.CourseController,
	lecturerCourseController *controllers.LecturerCourseController,
	appliedCourseController *controllers.AppliedCourseController,
	selectedCandidateController *controllers.SelectedCandidateController,
	commentController *controllers.CommentController,
	graphqlHandler gin.HandlerFunc,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/user", userController.CreateUser)
	api.POST("/user/login", userController.Login)

	// The admin console does its own token check so adminLogin stays
	// reachable without one.
	router.POST("/graphql", graphqlHandler)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/user")
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/:userID", userController.GetUserByID)
			users.PUT("/:userID", userController.UpdateUser)
			users.DELETE("/:userID", userController.DeleteUser)
		}

		candidates := authenticated.Group("/candidate")
		{
			candidates.POST("", candidateController.CreateCandidate)
			candidates.GET("", candidateController.GetAllCandidates)
			candidates.GET("/:candidateID", candidateController.GetCandidateByID)
			candidates.PUT("/:candidateID", candidateController.UpdateCandidate)
			candidates.DELETE("/:candidateID", candidateController.DeleteCandidate)
		}

		lecturers := authenticated.Group("/lecturer")
		{
			lecturers.POST("", lecturerController.CreateLecturer)
			lecturers.GET("", lecturerController.GetAllLecturers)
			lecturers.GET("/:lecturerID", lecturerController.GetLecturerByID)
			lecturers.GET("/:lecturerID/courses", lecturerController.GetLecturerCourses)
			lecturers.DELETE("/:lecturerID", lecturerController.DeleteLecturer)

			// Applicant search is lecturer functionality
			lecturersOnly := lecturers.Group("")
			lecturersOnly.Use(authMiddleware.RoleRequired(string(models.RoleLecturer)))
			{
				lecturersOnly.GET("/:lecturerID/applicants/filter", lecturerController.FilterApplicants)
			}
		}

		courses := authenticated.Group("/course")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:courseID", courseController.GetCourseByID)
			courses.GET("/:courseID/lecturers", courseController.GetCourseLecturers)
			courses.PUT("/:courseID", courseController.UpdateCourse)
			courses.DELETE("/:courseID", courseController.DeleteCourse)
		}

		lecturerCourses := authenticated.Group("/lecturer-course")
		{
			lecturerCourses.POST("", lecturerCourseController.CreateLecturerCourse)
			lecturerCourses.GET("", lecturerCourseController.GetAllLecturerCourses)
			lecturerCourses.DELETE("/:lecturerID/:courseID", lecturerCourseController.DeleteLecturerCourse)
		}

		appliedCourses := authenticated.Group("/applied-course")
		{
			appliedCourses.GET("", appliedCourseController.GetAllAppliedCourses)
			appliedCourses.GET("/candidate/:candidateID", appliedCourseController.GetAppliedCoursesByCandidate)
			appliedCourses.GET("/course/:courseID", appliedCourseController.GetAppliedCoursesByCourse)
			appliedCourses.GET("/:candidateID/:courseID/:role", appliedCourseController.GetAppliedCourse)

			candidatesOnly := appliedCourses.Group("")
			candidatesOnly.Use(authMiddleware.RoleRequired(string(models.RoleCandidate)))
			{
				candidatesOnly.POST("", appliedCourseController.CreateAppliedCourse)
				candidatesOnly.POST("/replace", appliedCourseController.ReplaceAppliedCourse)
				candidatesOnly.DELETE("/:candidateID/:courseID/:role", appliedCourseController.DeleteAppliedCourse)
			}
		}

		selectedCandidates := authenticated.Group("/selected-candidate")
		{
			selectedCandidates.GET("", selectedCandidateController.GetAllSelectedCandidates)
			selectedCandidates.GET("/candidate-selection-counts", selectedCandidateController.GetCandidateSelectionCounts)
			selectedCandidates.GET("/selection-classification", selectedCandidateController.GetSelectionClassification)
			selectedCandidates.GET("/lecturer/:lecturerID", selectedCandidateController.GetSelectedCandidatesByLecturer)
			selectedCandidates.GET("/candidate/:candidateID", selectedCandidateController.GetSelectedCandidatesByCandidate)
			selectedCandidates.GET("/:lecturerID/:candidateID", selectedCandidateController.GetSelectedCandidate)

			lecturersOnly := selectedCandidates.Group("")
			lecturersOnly.Use(authMiddleware.RoleRequired(string(models.RoleLecturer)))
			{
				lecturersOnly.POST("", selectedCandidateController.CreateSelectedCandidate)
				lecturersOnly.PUT("/:lecturerID/:candidateID", selectedCandidateController.UpdateSelectedCandidate)
				lecturersOnly.DELETE("/:lecturerID/:candidateID", selectedCandidateController.DeleteSelectedCandidate)
			}
		}

		comments := authenticated.Group("/comment")
		{
			comments.GET("/candidate/:candidateID", commentController.GetCommentsByCandidate)
			comments.GET("/lecturer/:lecturerID", commentController.GetCommentsByLecturer)

			lecturersOnly := comments.Group("")
			lecturersOnly.Use(authMiddleware.RoleRequired(string(models.RoleLecturer)))
			{
				lecturersOnly.POST("", commentController.CreateComment)
				lecturersOnly.PUT("/:commentID", commentController.UpdateComment)
				lecturersOnly.DELETE("/:commentID", commentController.DeleteComment)
			}
		}
	}
}
