package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryLabels(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		op    string
		table string
	}{
		{"select", `SELECT * FROM "tweets" WHERE id = 1`, "select", "tweets"},
		{"select with subquery counts outer table", `SELECT count(*) FROM "engagements" WHERE kind = 'like'`, "select", "engagements"},
		{"insert", `INSERT INTO "engagements" ("user_id","tweet_id") VALUES (1,2)`, "insert", "engagements"},
		{"update", `UPDATE "notifications" SET "read" = true`, "update", "notifications"},
		{"delete", `DELETE FROM "engagements" WHERE user_id = 1`, "delete", "engagements"},
		{"unquoted table", "SELECT * FROM users", "select", "users"},
		{"empty", "", "unknown", "unknown"},
		{"no table", "BEGIN", "begin", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, table := queryLabels(tt.sql)
			assert.Equal(t, tt.op, op)
			assert.Equal(t, tt.table, table)
		})
	}
}
