package repository

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE codes the services react to.
const (
	codeInsufficientPrivilege = "42501"
	codeUndefinedTable        = "42P01"
	codeInvalidTextRepr       = "22P02"
	codeUniqueViolation       = "23505"
	codeTooManyConnections    = "53300"
)

func pqCode(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}

// IsQueryError reports whether the server answered with an error, as opposed
// to the connection failing before an answer arrived.
func IsQueryError(err error) bool {
	_, ok := pqCode(err)
	return ok
}

// IsUnavailable matches permission-denied and missing-table errors, the
// conditions under which demo mode serves fixture data.
func IsUnavailable(err error) bool {
	code, _ := pqCode(err)
	return code == codeInsufficientPrivilege || code == codeUndefinedTable
}

// IsInsertRejected is IsUnavailable plus malformed-value errors, which the
// insert path also treats as a demo-mode condition.
func IsInsertRejected(err error) bool {
	code, _ := pqCode(err)
	return IsUnavailable(err) || code == codeInvalidTextRepr
}

func IsUniqueViolation(err error) bool {
	code, _ := pqCode(err)
	return code == codeUniqueViolation
}

func IsRateLimited(err error) bool {
	code, _ := pqCode(err)
	return code == codeTooManyConnections
}

// ErrorCode returns the SQLSTATE of err, or "" when err is not a server error.
func ErrorCode(err error) string {
	code, _ := pqCode(err)
	return code
}
