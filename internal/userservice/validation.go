package userservice

import (
	"regexp"
	"strings"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

var (
	EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

// bcrypt ignores everything past 72 bytes, so longer passwords are refused.
func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) >= 6, "password", "must be at least 6 characters long")
	v.Check(len(password) <= 72, "password", "must not be more than 72 bytes long")
}
