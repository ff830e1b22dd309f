package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is the MySQL error number for a unique index violation.
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a unique constraint violation.
// Uniqueness (slug, email, username, (title,author)) is enforced by the
// database indexes; this is the single place the driver error is recognized.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination is a page-number window over a listing. The zero value means
// "first page, default size"; out-of-range values are clamped rather than
// rejected.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) limit() int {
	switch {
	case p.PageSize < 1:
		return defaultPageSize
	case p.PageSize > maxPageSize:
		return maxPageSize
	}
	return p.PageSize
}

func (p Pagination) offset() int {
	if p.Page < 2 {
		return 0
	}
	return (p.Page - 1) * p.limit()
}
