package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"bloghub/internal/config"
	"bloghub/internal/handlers"
	"bloghub/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	deviceHandler *handlers.DeviceHandler,
	blogHandler *handlers.BlogHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	bloggerHandler *handlers.BloggerHandler,
	saHandler *handlers.SAHandler,
	testingHandler *handlers.TestingHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth. Credential and code endpoints get a stricter limit: 5 req
	// per 10 s per IP. The refresh-cookie endpoints are throttled by
	// token rotation itself.
	auth := api.Group("/auth")
	authLimiter := limiter.New(limiter.Config{
		Max:               5,
		Expiration:        10 * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	auth.Post("/login", authLimiter, authHandler.Login)
	auth.Post("/registration", authLimiter, authHandler.Register)
	auth.Post("/registration-confirmation", authLimiter, authHandler.ConfirmRegistration)
	auth.Post("/registration-email-resending", authLimiter, authHandler.ResendConfirmation)
	auth.Post("/password-recovery", authLimiter, authHandler.RecoverPassword)
	auth.Post("/new-password", authLimiter, authHandler.SetNewPassword)
	auth.Post("/refresh-token", middleware.RefreshTokenGuard(cfg), authHandler.Refresh)
	auth.Post("/logout", middleware.RefreshTokenGuard(cfg), authHandler.Logout)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Device sessions, driven by the refresh cookie
	security := api.Group("/security", middleware.RefreshTokenGuard(cfg))
	security.Get("/devices", deviceHandler.List)
	security.Delete("/devices", deviceHandler.TerminateOthers)
	security.Delete("/devices/:deviceId", deviceHandler.Terminate)

	// Public content reads; optional identity for myStatus
	blogs := api.Group("/blogs")
	blogs.Get("/", blogHandler.List)
	blogs.Get("/:id", blogHandler.Get)
	blogs.Get("/:blogId/posts", middleware.OptionalJWT(cfg), blogHandler.ListPosts)

	posts := api.Group("/posts")
	posts.Get("/", middleware.OptionalJWT(cfg), postHandler.List)
	posts.Get("/:id", middleware.OptionalJWT(cfg), postHandler.Get)
	posts.Get("/:postId/comments", middleware.OptionalJWT(cfg), postHandler.ListComments)
	posts.Post("/:postId/comments", middleware.JWTProtected(cfg), postHandler.CreateComment)
	posts.Put("/:postId/like-status", middleware.JWTProtected(cfg), postHandler.SetLikeStatus)

	comments := api.Group("/comments")
	comments.Get("/:id", middleware.OptionalJWT(cfg), commentHandler.Get)
	comments.Put("/:commentId", middleware.JWTProtected(cfg), commentHandler.Update)
	comments.Delete("/:commentId", middleware.JWTProtected(cfg), commentHandler.Delete)
	comments.Put("/:commentId/like-status", middleware.JWTProtected(cfg), commentHandler.SetLikeStatus)

	// Blog-owner surface
	blogger := api.Group("/blogger", middleware.JWTProtected(cfg))
	// Static segment must register before the :id routes.
	blogger.Get("/blogs/comments", bloggerHandler.ListComments)
	blogger.Get("/blogs", bloggerHandler.ListBlogs)
	blogger.Post("/blogs", bloggerHandler.CreateBlog)
	blogger.Put("/blogs/:id", bloggerHandler.UpdateBlog)
	blogger.Delete("/blogs/:id", bloggerHandler.DeleteBlog)
	blogger.Post("/blogs/:blogId/posts", bloggerHandler.CreatePost)
	blogger.Put("/blogs/:blogId/posts/:postId", bloggerHandler.UpdatePost)
	blogger.Delete("/blogs/:blogId/posts/:postId", bloggerHandler.DeletePost)
	blogger.Put("/users/:id/ban", bloggerHandler.BanUser)
	blogger.Get("/users/blog/:id", bloggerHandler.ListBannedUsers)

	// Super-admin surface behind Basic auth
	sa := api.Group("/sa", middleware.BasicAdmin(cfg))
	sa.Get("/users", saHandler.ListUsers)
	sa.Post("/users", saHandler.CreateUser)
	sa.Delete("/users/:id", saHandler.DeleteUser)
	sa.Put("/users/:id/ban", saHandler.BanUser)
	sa.Get("/blogs", saHandler.ListBlogs)
	sa.Put("/blogs/:id/ban", saHandler.BanBlog)
	sa.Put("/blogs/:id/bind-with-user/:userId", saHandler.BindBlog)

	// Fixture wipes, test environments only
	if cfg.TestingEndpointsEnabled {
		testing := api.Group("/testing")
		testing.Delete("/all-data", testingHandler.DeleteAllData)
		testing.Delete("/all-blogs", testingHandler.DeleteAllBlogs)
		testing.Delete("/all-posts", testingHandler.DeleteAllPosts)
		testing.Delete("/all-comments", testingHandler.DeleteAllComments)
		testing.Delete("/all-likes", testingHandler.DeleteAllLikes)
		testing.Delete("/all-users", testingHandler.DeleteAllUsers)
	}
}
