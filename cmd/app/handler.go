package main

import (
	"net/http"
	"strings"

	"github.com/sushihentaime/gadgetpress/internal/blogservice"
)

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := app.readPageParams(r)

	res, err := app.blogService.ListBlogs(r.Context(), page, limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "blogs": res.Blogs, "pagination": res.Pagination}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogBySlugHandler(w http.ResponseWriter, r *http.Request) {
	blog, err := app.blogService.GetBlogBySlug(r.Context(), app.readStringParam(r, "slug"))
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	blogs, category, err := app.blogService.GetBlogsByCategory(r.Context(), app.readStringParam(r, "category"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "blogs": blogs, "category": category}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) searchBlogsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	env := envelope{"success": true, "blogs": []blogservice.Blog{}}
	if strings.TrimSpace(q) != "" {
		blogs, err := app.blogService.SearchBlogs(r.Context(), q)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
		env["blogs"] = blogs
		env["query"] = q
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) featuredBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetFeaturedBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
