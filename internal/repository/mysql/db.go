package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the pool. TranslateError maps driver errors to
// gorm.ErrDuplicatedKey / gorm.ErrRecordNotFound so callers never match on
// MySQL error numbers.
//
// Every compound operation in this package runs through
// DB.WithContext(ctx).Transaction(fn): GORM checks one connection out of the
// pool, begins a transaction, commits when fn returns nil, rolls back
// otherwise, and returns the connection either way. That is the only way any
// repository touches the store.
func InitDB(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	DB = db
	return nil
}
