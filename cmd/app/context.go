package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/gadgetpress/internal/userservice"
)

// authUserKey holds the *userservice.User resolved by authenticate.
type authUserKey struct{}

func withAuthUser(r *http.Request, user *userservice.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), authUserKey{}, user))
}

// authUser returns nil on routes that are not behind authenticate.
func authUser(r *http.Request) *userservice.User {
	user, _ := r.Context().Value(authUserKey{}).(*userservice.User)
	return user
}
