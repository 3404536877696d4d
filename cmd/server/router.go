package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kencar17/simple-blog-api/internal/api"
	apimiddleware "github.com/kencar17/simple-blog-api/internal/api/middleware"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	accountHandler := api.NewAccountHandler(app.accountStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, auth.NewBcryptHasher(0), app.logger)
	blogPostHandler := api.NewBlogPostHandler(app.blogPostStore, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.logger)
	tagHandler := api.NewTagHandler(app.tagStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.logger)
	authHandler := api.NewAuthHandler(app.tokenService, app.logger)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/token", authHandler.ObtainToken)
		r.Post("/auth/token/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/accounts", accountHandler.List)
			r.Post("/accounts", accountHandler.Create)
			r.Get("/accounts/{id}", accountHandler.Get)
			r.Put("/accounts/{id}", accountHandler.Update)
			r.Delete("/accounts/{id}", accountHandler.Delete)

			r.Get("/users", userHandler.List)
			r.Post("/users", userHandler.Create)
			r.Get("/users/{id}", userHandler.Get)
			r.Put("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)
			r.Put("/users/{id}/change_password", userHandler.ChangePassword)

			r.Get("/blogs", blogPostHandler.List)
			r.Post("/blogs", blogPostHandler.Create)
			r.Get("/blogs/{id}", blogPostHandler.Get)
			r.Put("/blogs/{id}", blogPostHandler.Update)
			r.Delete("/blogs/{id}", blogPostHandler.Delete)

			r.Get("/categories", categoryHandler.List)
			r.Post("/categories", categoryHandler.Create)
			r.Get("/categories/{id}", categoryHandler.Get)
			r.Put("/categories/{id}", categoryHandler.Update)
			r.Delete("/categories/{id}", categoryHandler.Delete)

			r.Get("/tags", tagHandler.List)
			r.Post("/tags", tagHandler.Create)
			r.Get("/tags/{id}", tagHandler.Get)
			r.Put("/tags/{id}", tagHandler.Update)
			r.Delete("/tags/{id}", tagHandler.Delete)

			r.Get("/comments", commentHandler.ListByBlog)
			r.Post("/comments", commentHandler.Create)
			r.Get("/comments/user", commentHandler.ListByUser)
			r.Get("/comments/view/{id}", commentHandler.Get)
			r.Put("/comments/view/{id}", commentHandler.Update)
			r.Delete("/comments/view/{id}", commentHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
