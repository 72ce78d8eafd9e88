package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/sushihentaime/gadgetpress/internal/blogservice"
	"github.com/sushihentaime/gadgetpress/internal/mediahost"
)

const (
	maxImageBytes   = 5 << 20
	multipartMemory = 10 << 20
	imageFormField  = "image"
)

var (
	errImageTooLarge = fmt.Errorf("image must not be larger than %d bytes", maxImageBytes)
	errNotAnImage    = errors.New("only image files are allowed")
)

// blogRequest is the JSON form of a blog write. Optional fields stay raw
// so that an absent key, null and a value can be told apart.
type blogRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Content       string          `json:"content"`
	Category      string          `json:"category"`
	Price         json.RawMessage `json:"price"`
	AffiliateLink json.RawMessage `json:"affiliateLink"`
	Tags          json.RawMessage `json:"tags"`
}

// rawOptional maps an absent key to nil, null to "", a JSON string to its
// value and anything else (numbers, arrays) to its literal text.
func rawOptional(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	literal := string(raw)
	return &literal
}

func formOptional(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// readBlogRequest accepts JSON, urlencoded and multipart bodies. The image
// bytes are only returned for multipart requests carrying an image part.
func (app *application) readBlogRequest(w http.ResponseWriter, r *http.Request) (blogservice.BlogInput, []byte, error) {
	var in blogservice.BlogInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		var req blogRequest
		if err := app.parseJSON(w, r, &req); err != nil {
			return in, nil, err
		}

		in = blogservice.BlogInput{
			Title:         req.Title,
			Description:   req.Description,
			Content:       req.Content,
			Category:      req.Category,
			Price:         rawOptional(req.Price),
			AffiliateLink: rawOptional(req.AffiliateLink),
			Tags:          rawOptional(req.Tags),
		}
		return in, nil, nil

	case "multipart/form-data", "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(multipartMemory)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			var maxBytesError *http.MaxBytesError
			if errors.As(err, &maxBytesError) {
				return in, nil, fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
			}
			return in, nil, fmt.Errorf("could not parse form: %w", err)
		}

		in = blogservice.BlogInput{
			Title:         r.PostForm.Get("title"),
			Description:   r.PostForm.Get("description"),
			Content:       r.PostForm.Get("content"),
			Category:      r.PostForm.Get("category"),
			Price:         formOptional(r, "price"),
			AffiliateLink: formOptional(r, "affiliateLink"),
			Tags:          formOptional(r, "tags"),
		}

		if r.MultipartForm == nil {
			return in, nil, nil
		}

		data, err := readImagePart(r)
		return in, data, err

	default:
		return in, nil, errors.New("request body must be JSON, urlencoded or multipart form data")
	}
}

func readImagePart(r *http.Request) ([]byte, error) {
	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		return nil, errImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageBytes {
		return nil, errImageTooLarge
	}
	if !mediahost.IsImage(data) {
		return nil, errNotAnImage
	}

	return data, nil
}

// uploadImage pushes data to the media host. It writes the error response
// itself and reports false when the request must stop.
func (app *application) uploadImage(w http.ResponseWriter, r *http.Request, data []byte) (*blogservice.ImageUpload, bool) {
	if data == nil {
		return nil, true
	}

	if app.media == nil {
		app.imageUploadFailedResponse(w, r, errors.New("media host is not configured"))
		return nil, false
	}

	asset, err := app.media.Upload(r.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, mediahost.ErrNotImage):
			app.badRequestResponse(w, r, errNotAnImage.Error())
		default:
			app.imageUploadFailedResponse(w, r, err)
		}
		return nil, false
	}

	return &blogservice.ImageUpload{URL: asset.URL, Ref: asset.Ref}, true
}

// discardUpload releases an image whose blog write was rejected. It runs
// detached from the request so a disconnecting client does not cancel it.
func (app *application) discardUpload(upload *blogservice.ImageUpload) {
	if upload == nil || app.media == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.media.Delete(ctx, upload.Ref); err != nil {
		app.logger.Warn("failed to discard unused upload", "ref", upload.Ref, "error", err.Error())
	}
}
