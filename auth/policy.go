package auth

import (
	"os"
	"strings"
)

// Policy decides whether an email belongs to an operator/admin. It is
// injected at construction so deployments choose their own allow-list; the
// core never hardcodes an identity.
type Policy func(email string) bool

// PolicyFromEnv builds an allow-list policy from the comma-separated
// ADMIN_EMAILS variable. With no configuration nobody is an admin.
func PolicyFromEnv() Policy {
	return AllowList(strings.Split(os.Getenv("ADMIN_EMAILS"), ","))
}

// AllowList grants the admin role to exactly the listed emails,
// case-insensitively.
func AllowList(emails []string) Policy {
	allowed := make(map[string]bool, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowed[e] = true
		}
	}
	return func(email string) bool {
		return allowed[strings.ToLower(strings.TrimSpace(email))]
	}
}
