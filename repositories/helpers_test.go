package repositories

import "testing"

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		query   string
		want    string
	}{
		{"postgres untouched", DialectPostgres, "SELECT $1, $2", "SELECT $1, $2"},
		{"sqlite", DialectSQLite, "INSERT INTO t VALUES ($1, $2, $10)", "INSERT INTO t VALUES (?, ?, ?)"},
		{"lone dollar kept", DialectSQLite, "SELECT '$' || $1", "SELECT '$' || ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rebind(tt.dialect, tt.query); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(1, 3); got != "$1, $2, $3" {
		t.Errorf("unexpected placeholders %q", got)
	}
	if got := placeholders(4, 1); got != "$4" {
		t.Errorf("unexpected placeholders %q", got)
	}
}
