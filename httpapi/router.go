package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobboard/application"
	"jobboard/auth"
	"jobboard/category"
	"jobboard/favorite"
	"jobboard/job"
	"jobboard/user"
)

// Deps bundles everything the router needs. Handlers receive explicit
// store handles instead of closing over process-wide state.
type Deps struct {
	Tokens       *auth.Service
	Users        *user.Service
	Jobs         job.Repository
	Favorites    *favorite.Service
	Applications *application.Service
	Categories   category.Repository
	CookieSecure bool
	CORSOrigins  []string
}

// NewRouter wires the full route table. Guard composition per route follows
// the contract: token verification before identity/role checks, both before
// the handler; public routes carry no guard at all.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	token := auth.RequireToken(d.Tokens)
	self := auth.RequireSelf()
	roles := roleSource{users: d.Users}
	admin := auth.RequireRole(roles, user.RoleAdmin)
	recruiter := auth.RequireRole(roles, user.RoleRecruiter)

	authH := &AuthHandler{tokens: d.Tokens, cookieSecure: d.CookieSecure}
	jobH := &JobHandler{jobs: d.Jobs, categories: d.Categories}
	userH := &UserHandler{users: d.Users}
	favH := &FavoriteHandler{favorites: d.Favorites}
	appH := &ApplicationHandler{applications: d.Applications}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Job server is running")
	})

	// public job surface
	r.GET("/categories", jobH.ListCategories)
	r.GET("/hotjobs", jobH.ListHot)
	r.GET("/jobsCount", jobH.Count)
	r.GET("/jobs/paginated", jobH.ListPaginated)
	r.GET("/jobs", jobH.ListByCategory)
	r.GET("/search", jobH.SearchByTitle)
	r.GET("/job/:id", jobH.GetByID)

	// admin job mutations
	r.POST("/job", token, admin, jobH.Create)
	r.PUT("/jobs/:id", token, admin, jobH.Replace)
	r.PATCH("/jobs/hot/:id", token, admin, jobH.MarkHot)
	r.PATCH("/jobs/gen/:id", token, admin, jobH.MarkGeneral)
	r.DELETE("/jobs/:id", token, admin, jobH.Delete)

	// applications
	r.POST("/jobs-apply", appH.Apply)
	r.GET("/applied-jobs", token, self, appH.ListOwn)
	r.GET("/my-jobs", token, self, recruiter, jobH.ListMine)
	r.GET("/resumes", token, self, recruiter, appH.ListForEmployer)
	r.GET("/applied-exist", token, self, appH.Exists)

	// favorites
	r.POST("/favourite", favH.Add)
	r.GET("/favourite", token, self, favH.ListOwn)
	r.GET("/fav-exist", token, self, favH.Exists)
	r.DELETE("/favourite/:id", token, favH.Remove)

	// users
	r.POST("/user", userH.Register)
	r.GET("/user", userH.GetByEmail)
	r.GET("/users", token, admin, userH.List)
	r.PATCH("/user/block/:id", token, admin, userH.Block)
	r.PATCH("/user/active/:id", token, admin, userH.Activate)
	r.PATCH("/users/admin/:id", token, admin, userH.MakeAdmin)
	r.PATCH("/users/recruiter/:id", token, admin, userH.MakeRecruiter)
	r.PATCH("/users/user/:id", token, admin, userH.MakeUser)
	r.DELETE("/user/:id", token, admin, userH.Delete)

	// session
	r.POST("/jwt", authH.IssueToken)
	r.POST("/logout", authH.Logout)

	return r
}
