package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes mapped to repository errors
const (
	codeUniqueViolation    = pq.ErrorCode("23505")
	codeForeignKey         = pq.ErrorCode("23503")
	codeExclusionViolation = pq.ErrorCode("23P01")
)

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool     { return pqCode(err) == codeUniqueViolation }
func isForeignKeyViolation(err error) bool { return pqCode(err) == codeForeignKey }
func isExclusionViolation(err error) bool  { return pqCode(err) == codeExclusionViolation }
