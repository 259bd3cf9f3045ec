package middleware

import (
	"strings"

	models "green-saas/app/models/postgresql"
)

const (
	LoginPath       = "/"
	ProtectedPrefix = "/dashboard"
	AdminHome       = "/dashboard"
	StudentHome     = "/dashboard/aluno"
)

// Dashboard sub-paths open to both roles. Everything else under
// ProtectedPrefix outside StudentHome is admin-only.
var sharedPaths = []string{
	"/dashboard/ajuda",
	"/dashboard/nova-entrega",
}

type SessionState int

const (
	Unauthenticated SessionState = iota
	AuthenticatedStudent
	AuthenticatedAdmin
)

func StateOf(s *models.Session) SessionState {
	if s == nil {
		return Unauthenticated
	}
	switch s.Role {
	case models.RoleStudent:
		return AuthenticatedStudent
	case models.RoleAdmin:
		return AuthenticatedAdmin
	}
	return Unauthenticated
}

// HomePath is where a role lands after login.
func HomePath(role string) string {
	if role == models.RoleStudent {
		return StudentHome
	}
	return AdminHome
}

func under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isShared(path string) bool {
	for _, p := range sharedPaths {
		if under(path, p) {
			return true
		}
	}
	return false
}

// Decide returns the redirect target for a request to path in the given
// state, or redirect=false when the request may proceed.
func Decide(state SessionState, path string) (target string, redirect bool) {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	if path == LoginPath {
		switch state {
		case AuthenticatedStudent:
			return StudentHome, true
		case AuthenticatedAdmin:
			return AdminHome, true
		}
		return "", false
	}

	if !under(path, ProtectedPrefix) {
		return "", false
	}

	switch state {
	case AuthenticatedStudent:
		if under(path, StudentHome) || isShared(path) {
			return "", false
		}
		return StudentHome, true
	case AuthenticatedAdmin:
		if under(path, StudentHome) {
			return AdminHome, true
		}
		return "", false
	}
	return LoginPath, true
}
