package main

import (
	"net/http"
	"time"
)

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"success":     true,
		"message":     "Server is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": app.config.Environment,
		"version":     app.config.Version,
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
