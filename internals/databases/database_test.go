package database

import (
	"strings"
	"testing"

	"personavix_backend/internals/configs"
)

func TestDSN(t *testing.T) {
	base := configs.Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "disc", DBSSLMode: "disable"}

	pg := base
	pg.DBDriver, pg.DBPort = "postgres", "5432"
	dsn, err := DSN(&pg)
	if err != nil || !strings.HasPrefix(dsn, "postgres://u:p@db:5432/disc?sslmode=disable") {
		t.Fatalf("postgres dsn: %q %v", dsn, err)
	}

	my := base
	my.DBDriver, my.DBPort = "mysql", "3306"
	dsn, err = DSN(&my)
	if err != nil || !strings.HasPrefix(dsn, "u:p@tcp(db:3306)/disc?") || !strings.Contains(dsn, "parseTime=True") {
		t.Fatalf("mysql dsn: %q %v", dsn, err)
	}

	bad := base
	bad.DBDriver = "oracle"
	if _, err := DSN(&bad); err == nil {
		t.Fatal("unsupported driver must fail")
	}
}
