package userservice

import (
	"regexp"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckStringLength(username, 3, 20), "username", "must be between 3 and 20 characters long")
}

// validateName checks the optional display name. Absence is fine.
func validateName(v *common.Validator, name string) {
	if name == "" {
		return
	}
	v.Check(v.CheckStringLength(name, 3, 50), "name", "must be between 3 and 50 characters long")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "password is missing")
	if password == "" {
		return
	}
	v.Check(len(password) >= 3, "password", "password must be at least 3 characters long")
	v.Check(len(password) <= 72, "password", "password must not be longer than 72 characters")
}

// validateEmail checks the optional email address used only for the welcome
// mail pipeline.
func validateEmail(v *common.Validator, email string) {
	if email == "" {
		return
	}
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}
