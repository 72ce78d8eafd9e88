package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/gadgetpress/internal/common"
	"github.com/sushihentaime/gadgetpress/internal/userservice"
)

func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err.Error())
		return
	}

	res, err := app.userService.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		var verr common.ValidationError
		switch {
		case errors.As(err, &verr):
			app.failedValidationResponse(w, r, "Invalid input", verr.Errors)
		case errors.Is(err, userservice.ErrInvalidCredentials):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "Login successful",
		"token":   res.Token,
		"user": envelope{
			"id":    res.User.ID,
			"email": res.User.Email,
			"role":  res.User.Role,
		},
	}

	err = app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) verifyHandler(w http.ResponseWriter, r *http.Request) {
	user := authUser(r)

	err := app.writeJSON(w, http.StatusOK, envelope{"success": true, "user": user}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createAdminHandler(w http.ResponseWriter, r *http.Request) {
	admin, err := app.userService.BootstrapAdmin(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrAdminExists):
			app.badRequestResponse(w, r, "Admin user already exists")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"success": true,
		"message": "Admin user created successfully",
		"admin": envelope{
			"email": admin.Email,
			"role":  admin.Role,
		},
	}

	err = app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
