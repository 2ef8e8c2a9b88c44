package testutils

import (
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"lp-maker/lpmaker/database"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupMockDB returns a gorm handle backed by sqlmock, the mock for
// scripting expectations, and a cleanup func. The postgres dialector
// matches production, so the SQL asserted in tests is the SQL the
// service layer actually emits.
func SetupMockDB() (*database.Database, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		panic(err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cleanup := func() {
		sqlDB.Close()
	}
	return &database.Database{DB: gormDB}, mock, cleanup
}
