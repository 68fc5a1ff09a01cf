package db

import (
	"testing"

	"realty-server/confs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	t.Run("url gets sslmode", func(t *testing.T) {
		assert.Equal(t, "postgres://u:p@db/realty?sslmode=require",
			postgresDSN(confs.Config{DBURL: "postgres://u:p@db/realty"}))
		assert.Equal(t, "postgres://u:p@db/realty?x=1&sslmode=require",
			postgresDSN(confs.Config{DBURL: "postgres://u:p@db/realty?x=1"}))
		assert.Equal(t, "postgres://u:p@db/realty?sslmode=disable",
			postgresDSN(confs.Config{DBURL: "postgres://u:p@db/realty?sslmode=disable"}))
	})

	t.Run("parts on localhost disable ssl", func(t *testing.T) {
		dsn := postgresDSN(confs.Config{DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "realty"})
		assert.Contains(t, dsn, "sslmode=disable")
		assert.Contains(t, dsn, "dbname=realty")
	})
}

func TestOpenMemory_Migrates(t *testing.T) {
	database, err := OpenMemory(t.Name())
	require.NoError(t, err)
	defer database.Close()

	migrator := database.GetDB().Migrator()
	for _, table := range []string{"users", "properties", "contracts", "demo_leads", "activity_logs"} {
		assert.True(t, migrator.HasTable(table), table)
	}
}
