package db_test

import (
	"strings"
	"testing"

	"tasktracker/internal/config"
	"tasktracker/internal/db"
)

func TestNewPostgres_ErrorPaths(t *testing.T) {
	cases := []struct {
		name       string
		dsn        string
		wantSubstr string
	}{
		{"invalid DSN", "some=random", "ping postgres"},
		{"unreachable host", "postgres://u:p@127.0.0.1:1/tasks?sslmode=disable", "ping postgres"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := db.NewPostgres(tc.dsn)
			if err == nil {
				t.Fatalf("NewPostgres(%q) did not return error", tc.dsn)
			}
			if !strings.Contains(err.Error(), tc.wantSubstr) {
				t.Errorf("NewPostgres(%q) error = %q; want substring %q", tc.dsn, err.Error(), tc.wantSubstr)
			}
		})
	}
}

func TestNewMySQL_Unreachable(t *testing.T) {
	_, err := db.NewMySQL("u:p@tcp(127.0.0.1:1)/tasks?timeout=1s")
	if err == nil {
		t.Fatal("NewMySQL did not return error for unreachable server")
	}
	if !strings.Contains(err.Error(), "connect mysql") {
		t.Errorf("NewMySQL error = %q; want substring %q", err.Error(), "connect mysql")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := db.Open(&config.Config{StoreDriver: "sqlite"})
	if err == nil || !strings.Contains(err.Error(), "unsupported store driver") {
		t.Fatalf("Open() error = %v; want unsupported store driver", err)
	}
}
