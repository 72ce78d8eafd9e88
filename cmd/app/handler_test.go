package main

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/gadgetpress/internal/mediahost"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func blogPayload(title string) map[string]any {
	return map[string]any{
		"title":       title,
		"description": "A phone that does not cost a fortune.",
		"content":     "<p>Battery lasts <strong>two days</strong>.</p><script>alert(1)</script>",
		"category":    "Mobiles",
	}
}

func blogFormFields(title string) map[string]string {
	return map[string]string{
		"title":       title,
		"description": "A phone that does not cost a fortune.",
		"content":     "<p>Battery lasts two days.</p>",
		"category":    "Mobiles",
		"price":       "199.99",
		"tags":        `["budget", "android"]`,
	}
}

func blogOf(t *testing.T, body envelope) map[string]any {
	t.Helper()

	blog, ok := body["blog"].(map[string]any)
	require.True(t, ok, "response has no blog: %v", body)

	return blog
}

func resetTestData(t *testing.T, db *sql.DB, media *mockMedia) {
	t.Helper()

	_, err := db.Exec("DELETE FROM blogs")
	require.NoError(t, err)

	media.ExpectedCalls = nil
	media.Calls = nil
}

func TestHealthCheckHandler(t *testing.T) {
	app := newBareApplication(t)
	ts := newTestServer(t, app.routes())

	status, headers, body := ts.get(t, "/api/health", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Server is running", body["message"])
	assert.Equal(t, envDevelopment, body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRouteNotFound(t *testing.T) {
	app := newBareApplication(t)
	ts := newTestServer(t, app.routes())

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		status, _, body := ts.do(t, method, "/api/nothing-here", "", nil, nil)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Route not found", body["message"])
		assert.Equal(t, "/api/nothing-here", body["path"])
	}

	// the query string is echoed back with the path
	status, _, body := ts.get(t, "/api/nothing-here?page=2&q=phone", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "/api/nothing-here?page=2&q=phone", body["path"])

	// a known path with an unsupported method is also unknown
	status, _, body = ts.do(t, http.MethodDelete, "/api/health", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", body["message"])
}

func TestAuthHandlers(t *testing.T) {
	app, _, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("Login Before Bootstrap", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/auth/login", map[string]string{"email": testAdminEmail, "password": testAdminPassword}, nil)

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("Create Admin", func(t *testing.T) {
		status, _, body := ts.post(t, "/api/auth/create-admin", nil, nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Admin user created successfully", body["message"])
		assert.Equal(t, map[string]any{"email": testAdminEmail, "role": "admin"}, body["admin"])

		status, _, body = ts.post(t, "/api/auth/create-admin", nil, nil)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Admin user already exists", body["message"])
	})

	t.Run("Login", func(t *testing.T) {
		testCases := []struct {
			name        string
			payload     map[string]string
			wantStatus  int
			wantMessage string
		}{
			{
				name:        "Valid Credentials",
				payload:     map[string]string{"email": testAdminEmail, "password": testAdminPassword},
				wantStatus:  http.StatusOK,
				wantMessage: "Login successful",
			},
			{
				name:        "Email Is Case Insensitive",
				payload:     map[string]string{"email": "  ADMIN@example.com ", "password": testAdminPassword},
				wantStatus:  http.StatusOK,
				wantMessage: "Login successful",
			},
			{
				name:        "Wrong Password",
				payload:     map[string]string{"email": testAdminEmail, "password": "not-the-password"},
				wantStatus:  http.StatusUnauthorized,
				wantMessage: "Invalid credentials",
			},
			{
				name:        "Unknown Email",
				payload:     map[string]string{"email": "nobody@example.com", "password": testAdminPassword},
				wantStatus:  http.StatusUnauthorized,
				wantMessage: "Invalid credentials",
			},
			{
				name:        "Invalid Input",
				payload:     map[string]string{"email": "not-an-email", "password": "123"},
				wantStatus:  http.StatusBadRequest,
				wantMessage: "Invalid input",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				status, _, body := ts.post(t, "/api/auth/login", tc.payload, nil)

				assert.Equal(t, tc.wantStatus, status)
				assert.Equal(t, tc.wantMessage, body["message"])

				if tc.wantStatus == http.StatusOK {
					assert.NotEmpty(t, body["token"])
					user := body["user"].(map[string]any)
					assert.Equal(t, testAdminEmail, user["email"])
					assert.Equal(t, "admin", user["role"])
				}
			})
		}
	})

	t.Run("Failed Logins Are Indistinguishable", func(t *testing.T) {
		_, _, wrongPassword := ts.post(t, "/api/auth/login", map[string]string{"email": testAdminEmail, "password": "not-the-password"}, nil)
		_, _, unknownEmail := ts.post(t, "/api/auth/login", map[string]string{"email": "nobody@example.com", "password": "not-the-password"}, nil)

		assert.Equal(t, wrongPassword, unknownEmail)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		status, _, body := ts.do(t, http.MethodPost, "/api/auth/login", "application/json", bytes.NewBufferString(`{"email":`), nil)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("Verify", func(t *testing.T) {
		token := ts.adminToken(t)

		status, _, body := ts.get(t, "/api/auth/verify", token)
		assert.Equal(t, http.StatusOK, status)
		user := body["user"].(map[string]any)
		assert.Equal(t, testAdminEmail, user["email"])
		assert.NotContains(t, user, "password")

		bad := "garbage"
		for _, tok := range []*string{nil, &bad} {
			status, _, body = ts.get(t, "/api/auth/verify", tok)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "Unauthorized access", body["message"])
		}
	})

	t.Run("Admin Routes Need A Token", func(t *testing.T) {
		for _, path := range []string{"/api/admin/stats", "/api/admin/blogs"} {
			status, _, body := ts.get(t, path, nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "Unauthorized access", body["message"])
		}

		status, _, _ := ts.post(t, "/api/admin/blogs", blogPayload("Sneaky"), nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestAdminBlogHandlers(t *testing.T) {
	app, db, media := newTestApplication(t)
	ts := newTestServer(t, app.routes())
	token := ts.adminToken(t)

	t.Run("Create Assigns Unique Slugs", func(t *testing.T) {
		defer resetTestData(t, db, media)

		status, _, body := ts.post(t, "/api/admin/blogs", blogPayload("Best Budget Phone"), token)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Blog created successfully", body["message"])

		first := blogOf(t, body)
		assert.Equal(t, "best-budget-phone", first["slug"])
		assert.Equal(t, float64(0), first["views"])
		assert.Equal(t, true, first["published"])
		assert.Equal(t, false, first["featured"])
		assert.Nil(t, first["image"])
		assert.NotContains(t, first["content"], "<script>")

		status, _, body = ts.post(t, "/api/admin/blogs", blogPayload("Best Budget Phone"), token)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "best-budget-phone-1", blogOf(t, body)["slug"])
	})

	t.Run("Create With Optional Fields", func(t *testing.T) {
		defer resetTestData(t, db, media)

		payload := blogPayload("Galaxy Review")
		payload["price"] = 349.5
		payload["affiliateLink"] = "https://shop.example.com/galaxy"
		payload["tags"] = []string{" samsung ", "", "android"}

		status, _, body := ts.post(t, "/api/admin/blogs", payload, token)
		require.Equal(t, http.StatusCreated, status)

		blog := blogOf(t, body)
		assert.Equal(t, 349.5, blog["price"])
		assert.Equal(t, "https://shop.example.com/galaxy", blog["affiliateLink"])
		assert.Equal(t, []any{"samsung", "android"}, blog["tags"])
	})

	t.Run("Create Rejects Invalid Input", func(t *testing.T) {
		defer resetTestData(t, db, media)

		payload := map[string]any{"title": "", "category": "Toys", "price": -3}

		status, _, body := ts.post(t, "/api/admin/blogs", payload, token)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Validation errors", body["message"])

		errs, ok := body["errors"].([]any)
		require.True(t, ok)

		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.(map[string]any)["field"].(string))
		}
		assert.ElementsMatch(t, []string{"title", "description", "content", "category", "price"}, fields)
	})

	t.Run("Create With Image", func(t *testing.T) {
		defer resetTestData(t, db, media)

		data := pngBytes(t)
		asset := &mediahost.Asset{URL: "https://cdn.example.com/blog-images/a.png", Ref: "blog-images/a.png"}
		media.On("Upload", mock.Anything, data).Return(asset, nil).Once()

		status, _, body := ts.postMultipart(t, http.MethodPost, "/api/admin/blogs", blogFormFields("Pixel Review"), data, token)
		require.Equal(t, http.StatusCreated, status)

		blog := blogOf(t, body)
		assert.Equal(t, asset.URL, blog["image"])
		assert.Equal(t, asset.Ref, blog["imageRef"])
		assert.Equal(t, 199.99, blog["price"])
		assert.Equal(t, []any{"budget", "android"}, blog["tags"])
		media.AssertExpectations(t)
	})

	t.Run("Create Rejects Non Image Upload", func(t *testing.T) {
		defer resetTestData(t, db, media)

		status, _, body := ts.postMultipart(t, http.MethodPost, "/api/admin/blogs", blogFormFields("Pixel Review"), []byte("plain text, not a picture"), token)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, errNotAnImage.Error(), body["message"])
		media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("Failed Upload", func(t *testing.T) {
		defer resetTestData(t, db, media)

		media.On("Upload", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: bucket gone", mediahost.ErrUpload)).Once()

		status, _, body := ts.postMultipart(t, http.MethodPost, "/api/admin/blogs", blogFormFields("Pixel Review"), pngBytes(t), token)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Image upload failed", body["message"])

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("Upload Without Media Host", func(t *testing.T) {
		defer resetTestData(t, db, media)

		app.media = nil
		defer func() { app.media = media }()

		status, _, body := ts.postMultipart(t, http.MethodPost, "/api/admin/blogs", blogFormFields("Pixel Review"), pngBytes(t), token)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Image upload failed", body["message"])
	})

	t.Run("Rejected Write Discards Upload", func(t *testing.T) {
		defer resetTestData(t, db, media)

		asset := &mediahost.Asset{URL: "https://cdn.example.com/blog-images/b.png", Ref: "blog-images/b.png"}
		media.On("Upload", mock.Anything, mock.Anything).Return(asset, nil).Once()
		media.On("Delete", mock.Anything, asset.Ref).Return(nil).Once()

		fields := blogFormFields("Pixel Review")
		fields["category"] = "Toys"

		status, _, _ := ts.postMultipart(t, http.MethodPost, "/api/admin/blogs", fields, pngBytes(t), token)

		assert.Equal(t, http.StatusBadRequest, status)
		media.AssertExpectations(t)
	})

	t.Run("Update", func(t *testing.T) {
		defer resetTestData(t, db, media)

		_, _, body := ts.post(t, "/api/admin/blogs", blogPayload("Old Title"), token)
		id := blogOf(t, body)["id"].(string)

		payload := blogPayload("New Title")
		payload["price"] = 10
		payload["views"] = 999
		status, _, body := ts.put(t, "/api/admin/blogs/"+id, payload, token)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Blog updated successfully", body["message"])

		blog := blogOf(t, body)
		assert.Equal(t, "new-title", blog["slug"])
		assert.Equal(t, float64(10), blog["price"])
		// read-only fields in the body are ignored
		assert.Equal(t, float64(0), blog["views"])

		// price omitted keeps it; null clears it
		status, _, body = ts.put(t, "/api/admin/blogs/"+id, blogPayload("New Title"), token)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(10), blogOf(t, body)["price"])

		payload = blogPayload("New Title")
		payload["price"] = nil
		status, _, body = ts.put(t, "/api/admin/blogs/"+id, payload, token)
		require.Equal(t, http.StatusOK, status)
		assert.NotContains(t, blogOf(t, body), "price")
	})

	t.Run("Update Replaces Image", func(t *testing.T) {
		defer resetTestData(t, db, media)

		oldAsset := &mediahost.Asset{URL: "https://cdn.example.com/blog-images/old.png", Ref: "blog-images/old.png"}
		newAsset := &mediahost.Asset{URL: "https://cdn.example.com/blog-images/new.png", Ref: "blog-images/new.png"}
		media.On("Upload", mock.Anything, mock.Anything).Return(oldAsset, nil).Once()
		media.On("Upload", mock.Anything, mock.Anything).Return(newAsset, nil).Once()
		media.On("Delete", mock.Anything, oldAsset.Ref).Return(nil).Once()

		_, _, body := ts.postMultipart(t, http.MethodPost, "/api/admin/blogs", blogFormFields("Pixel Review"), pngBytes(t), token)
		id := blogOf(t, body)["id"].(string)

		status, _, body := ts.postMultipart(t, http.MethodPut, "/api/admin/blogs/"+id, blogFormFields("Pixel Review"), pngBytes(t), token)
		require.Equal(t, http.StatusOK, status)

		blog := blogOf(t, body)
		assert.Equal(t, newAsset.URL, blog["image"])
		assert.Equal(t, "pixel-review", blog["slug"])
		media.AssertExpectations(t)
	})

	t.Run("Unknown Or Malformed Id", func(t *testing.T) {
		defer resetTestData(t, db, media)

		for _, id := range []string{"not-a-uuid", "4f9c3b7e-0000-4000-8000-000000000000"} {
			status, _, body := ts.get(t, "/api/admin/blogs/"+id, token)
			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, "Blog not found", body["message"])

			status, _, _ = ts.put(t, "/api/admin/blogs/"+id, blogPayload("Anything"), token)
			assert.Equal(t, http.StatusNotFound, status)

			status, _, _ = ts.delete(t, "/api/admin/blogs/"+id, token)
			assert.Equal(t, http.StatusNotFound, status)

			status, _, _ = ts.patch(t, "/api/admin/blogs/"+id+"/featured", token)
			assert.Equal(t, http.StatusNotFound, status)
		}
	})

	t.Run("Toggles", func(t *testing.T) {
		defer resetTestData(t, db, media)

		_, _, body := ts.post(t, "/api/admin/blogs", blogPayload("Toggle Me"), token)
		id := blogOf(t, body)["id"].(string)

		status, _, body := ts.patch(t, "/api/admin/blogs/"+id+"/featured", token)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Blog featured successfully", body["message"])
		assert.Equal(t, true, blogOf(t, body)["featured"])

		_, _, body = ts.patch(t, "/api/admin/blogs/"+id+"/featured", token)
		assert.Equal(t, "Blog unfeatured successfully", body["message"])

		_, _, body = ts.patch(t, "/api/admin/blogs/"+id+"/published", token)
		assert.Equal(t, "Blog unpublished successfully", body["message"])
		assert.Equal(t, false, blogOf(t, body)["published"])

		// unpublished blogs stay visible to the admin
		status, _, body = ts.get(t, "/api/admin/blogs/"+id, token)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Toggle Me", blogOf(t, body)["title"])

		_, _, body = ts.patch(t, "/api/admin/blogs/"+id+"/published", token)
		assert.Equal(t, "Blog published successfully", body["message"])
	})

	t.Run("Delete Survives Media Failure", func(t *testing.T) {
		defer resetTestData(t, db, media)

		asset := &mediahost.Asset{URL: "https://cdn.example.com/blog-images/c.png", Ref: "blog-images/c.png"}
		media.On("Upload", mock.Anything, mock.Anything).Return(asset, nil).Once()
		media.On("Delete", mock.Anything, asset.Ref).Return(errors.New("bucket unreachable")).Once()

		_, _, body := ts.postMultipart(t, http.MethodPost, "/api/admin/blogs", blogFormFields("Doomed"), pngBytes(t), token)
		id := blogOf(t, body)["id"].(string)

		status, _, body := ts.delete(t, "/api/admin/blogs/"+id, token)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Blog deleted successfully", body["message"])

		status, _, _ = ts.get(t, "/api/admin/blogs/"+id, token)
		assert.Equal(t, http.StatusNotFound, status)
		media.AssertExpectations(t)
	})

	t.Run("Admin List And Stats", func(t *testing.T) {
		defer resetTestData(t, db, media)

		for i := 0; i < 3; i++ {
			ts.post(t, "/api/admin/blogs", blogPayload(fmt.Sprintf("Phone %d", i)), token)
		}
		laptop := blogPayload("Laptop Roundup")
		laptop["category"] = "Electronics"
		_, _, body := ts.post(t, "/api/admin/blogs", laptop, token)
		laptopSlug := blogOf(t, body)["slug"].(string)

		ts.get(t, "/api/blogs/slug/"+laptopSlug, nil)

		status, _, body := ts.get(t, "/api/admin/blogs?page=2&limit=3", token)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["blogs"], 1)
		assert.Equal(t, float64(2), body["totalPages"])
		assert.Equal(t, float64(2), body["currentPage"])
		assert.Equal(t, float64(4), body["total"])

		_, _, body = ts.get(t, "/api/admin/blogs?search=laptop", token)
		assert.Len(t, body["blogs"], 1)

		status, _, body = ts.get(t, "/api/admin/stats", token)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"totalBlogs": float64(4), "totalViews": float64(1), "totalCategories": float64(2)}, body["stats"])
	})
}

func TestPublicBlogHandlers(t *testing.T) {
	app, db, media := newTestApplication(t)
	ts := newTestServer(t, app.routes())
	token := ts.adminToken(t)

	create := func(t *testing.T, payload map[string]any) map[string]any {
		status, _, body := ts.post(t, "/api/admin/blogs", payload, token)
		require.Equal(t, http.StatusCreated, status)
		return blogOf(t, body)
	}

	t.Run("List", func(t *testing.T) {
		defer resetTestData(t, db, media)

		for i := 0; i < 3; i++ {
			create(t, blogPayload(fmt.Sprintf("Phone %d", i)))
		}
		hidden := create(t, blogPayload("Hidden"))
		ts.patch(t, "/api/admin/blogs/"+hidden["id"].(string)+"/published", token)

		status, _, body := ts.get(t, "/api/blogs?page=1&limit=2", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["blogs"], 2)
		assert.Equal(t, map[string]any{
			"currentPage": float64(1),
			"totalPages":  float64(2),
			"totalBlogs":  float64(3),
			"hasNext":     true,
			"hasPrev":     false,
		}, body["pagination"])

		// list items carry no content
		first := body["blogs"].([]any)[0].(map[string]any)
		assert.NotContains(t, first, "content")

		_, _, body = ts.get(t, "/api/blogs?page=0&limit=abc", nil)
		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, float64(1), pagination["currentPage"])
		assert.Len(t, body["blogs"], 3)
	})

	t.Run("Get By Slug Counts Views", func(t *testing.T) {
		defer resetTestData(t, db, media)

		blog := create(t, blogPayload("Counted"))
		slug := blog["slug"].(string)

		for i := 1; i <= 2; i++ {
			status, _, body := ts.get(t, "/api/blogs/slug/"+slug, nil)
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, float64(i), blogOf(t, body)["views"])
			assert.NotEmpty(t, blogOf(t, body)["content"])
		}

		ts.patch(t, "/api/admin/blogs/"+blog["id"].(string)+"/published", token)

		status, _, body := ts.get(t, "/api/blogs/slug/"+slug, nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Blog not found", body["message"])
	})

	t.Run("Category", func(t *testing.T) {
		defer resetTestData(t, db, media)

		fridge := blogPayload("Smart Fridge")
		fridge["category"] = "Home Appliances"
		create(t, fridge)
		create(t, blogPayload("Some Phone"))

		status, _, body := ts.get(t, "/api/blogs/category/home-appliances", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Home Appliances", body["category"])
		assert.Len(t, body["blogs"], 1)

		status, _, body = ts.get(t, "/api/blogs/category/toys", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []any{}, body["blogs"])
	})

	t.Run("Search", func(t *testing.T) {
		defer resetTestData(t, db, media)

		tagged := blogPayload("Pocket Camera")
		tagged["tags"] = []string{"vlogging"}
		create(t, tagged)
		create(t, blogPayload("Budget Phone"))

		status, _, body := ts.get(t, "/api/blogs/search?q=VLOG", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["blogs"], 1)
		assert.Equal(t, "VLOG", body["query"])

		_, _, body = ts.get(t, "/api/blogs/search?q=%25", nil)
		assert.Equal(t, []any{}, body["blogs"])

		status, _, body = ts.get(t, "/api/blogs/search?q=++", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []any{}, body["blogs"])
		assert.NotContains(t, body, "query")
	})

	t.Run("Featured", func(t *testing.T) {
		defer resetTestData(t, db, media)

		star := create(t, blogPayload("Star Product"))
		create(t, blogPayload("Regular Product"))

		_, _, body := ts.get(t, "/api/blogs/featured", nil)
		assert.Equal(t, []any{}, body["blogs"])

		ts.patch(t, "/api/admin/blogs/"+star["id"].(string)+"/featured", token)

		status, _, body := ts.get(t, "/api/blogs/featured", nil)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, body["blogs"], 1)
		assert.Equal(t, "Star Product", body["blogs"].([]any)[0].(map[string]any)["title"])
	})
}
