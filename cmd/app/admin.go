package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sushihentaime/gadgetpress/internal/blogservice"
)

func (app *application) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.blogService.GetStats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "stats": stats}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) adminListBlogsHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := app.readPageParams(r)

	res, err := app.blogService.AdminListBlogs(r.Context(), page, limit, r.URL.Query().Get("search"))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	env := envelope{
		"success":     true,
		"blogs":       res.Blogs,
		"totalPages":  res.Pagination.TotalPages,
		"currentPage": res.Pagination.CurrentPage,
		"total":       res.Pagination.TotalBlogs,
	}

	err = app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) adminGetBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r, "Blog not found")
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	in, image, err := app.readBlogRequest(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	upload, ok := app.uploadImage(w, r, image)
	if !ok {
		return
	}

	blog, err := app.blogService.CreateBlog(r.Context(), in, upload)
	if err != nil {
		app.discardUpload(upload)
		app.blogErrorResponse(w, r, err)
		return
	}

	env := envelope{"success": true, "message": "Blog created successfully", "blog": blog}

	err = app.writeJSON(w, http.StatusCreated, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r, "Blog not found")
		return
	}

	in, image, err := app.readBlogRequest(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	upload, ok := app.uploadImage(w, r, image)
	if !ok {
		return
	}

	blog, err := app.blogService.UpdateBlog(r.Context(), id, in, upload)
	if err != nil {
		app.discardUpload(upload)
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Blog updated successfully", "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r, "Blog not found")
		return
	}

	err = app.blogService.DeleteBlog(r.Context(), id)
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Blog deleted successfully"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) toggleFeaturedHandler(w http.ResponseWriter, r *http.Request) {
	app.toggleBlog(w, r, app.blogService.ToggleFeatured, func(b *blogservice.Blog) string {
		if b.Featured {
			return "Blog featured successfully"
		}
		return "Blog unfeatured successfully"
	})
}

func (app *application) togglePublishedHandler(w http.ResponseWriter, r *http.Request) {
	app.toggleBlog(w, r, app.blogService.TogglePublished, func(b *blogservice.Blog) string {
		if b.Published {
			return "Blog published successfully"
		}
		return "Blog unpublished successfully"
	})
}

type toggleFunc func(ctx context.Context, id uuid.UUID) (*blogservice.Blog, error)

func (app *application) toggleBlog(w http.ResponseWriter, r *http.Request, toggle toggleFunc, message func(*blogservice.Blog) string) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r, "Blog not found")
		return
	}

	blog, err := toggle(r.Context(), id)
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "message": message(blog), "blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
