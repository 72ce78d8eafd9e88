package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// unknown paths and unsupported methods both answer 404
	router.HandleMethodNotAllowed = false
	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)

	router.HandlerFunc(http.MethodGet, "/api/health", app.healthCheckHandler)

	// auth
	router.HandlerFunc(http.MethodPost, "/api/auth/login", app.loginHandler)
	router.HandlerFunc(http.MethodGet, "/api/auth/verify", app.authenticate(app.verifyHandler))
	router.HandlerFunc(http.MethodPost, "/api/auth/create-admin", app.createAdminHandler)

	// public blogs
	router.HandlerFunc(http.MethodGet, "/api/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/featured", app.featuredBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/search", app.searchBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/slug/:slug", app.getBlogBySlugHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/category/:category", app.getBlogsByCategoryHandler)

	// admin
	router.HandlerFunc(http.MethodGet, "/api/admin/stats", app.requireAdmin(app.statsHandler))
	router.HandlerFunc(http.MethodGet, "/api/admin/blogs", app.requireAdmin(app.adminListBlogsHandler))
	router.HandlerFunc(http.MethodPost, "/api/admin/blogs", app.requireAdmin(app.createBlogHandler))
	router.HandlerFunc(http.MethodGet, "/api/admin/blogs/:id", app.requireAdmin(app.adminGetBlogHandler))
	router.HandlerFunc(http.MethodPut, "/api/admin/blogs/:id", app.requireAdmin(app.updateBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/admin/blogs/:id", app.requireAdmin(app.deleteBlogHandler))
	router.HandlerFunc(http.MethodPatch, "/api/admin/blogs/:id/featured", app.requireAdmin(app.toggleFeaturedHandler))
	router.HandlerFunc(http.MethodPatch, "/api/admin/blogs/:id/published", app.requireAdmin(app.togglePublishedHandler))

	return app.recoverPanic(app.logRequest(app.secureHeaders(app.enableCORS(app.rateLimit(router)))))
}
