// Package repository implements the relational store on MySQL via
// database/sql. Multi-statement mutations run inside a transaction so
// partial application is never observable.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// isDuplicate reports whether err is a unique-key violation, optionally
// on a specific key name.
func isDuplicate(err error, key string) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlDuplicateEntry {
		return false
	}
	return key == "" || strings.Contains(mysqlErr.Message, key)
}
