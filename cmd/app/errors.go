package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

// writeErrorResponse writes {success:false, message} plus any extra keys.
func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string, extra envelope) {
	env := envelope{"success": false, "message": message}
	for k, v := range extra {
		env[k] = v
	}

	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse hides err from clients in production.
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	var extra envelope
	if !app.config.isProduction() {
		extra = envelope{"error": err.Error()}
	}
	app.writeErrorResponse(w, r, http.StatusInternalServerError, "Server error", extra)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, message, nil)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.writeErrorResponse(w, r, http.StatusNotFound, message, nil)
}

func (app *application) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "Route not found", envelope{"path": r.URL.RequestURI()})
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, message string, errs []common.FieldError) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, message, envelope{"errors": errs})
}

func (app *application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "Invalid credentials", nil)
}

func (app *application) unauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "Unauthorized access", nil)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.", nil)
}

func (app *application) imageUploadFailedResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeErrorResponse(w, r, http.StatusInternalServerError, "Image upload failed", nil)
}

// blogErrorResponse maps blog service errors onto responses.
func (app *application) blogErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var verr common.ValidationError

	switch {
	case errors.As(err, &verr):
		app.failedValidationResponse(w, r, "Validation errors", verr.Errors)
	case errors.Is(err, common.ErrRecordNotFound):
		app.notFoundResponse(w, r, "Blog not found")
	default:
		app.serverErrorResponse(w, r, err)
	}
}
