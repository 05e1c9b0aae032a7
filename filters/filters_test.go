package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Oluwafemi99/alx-backend-graphql-crm/entity"
)

func TestContains(t *testing.T) {
	assert.Equal(t, "%alice%", Contains("Alice"))
	assert.Equal(t, "%%", Contains(""))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "+1%", Prefix("+1"))
}

func TestApplyOrdering(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)

	columns := map[string]string{"price": "price", "name": "name"}

	var out []entity.Product
	tx := ApplyOrdering(db.Model(&entity.Product{}), []string{"-price", "name"}, columns).Find(&out)
	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "ORDER BY")
	assert.Contains(t, sql, "`price` DESC")
	assert.Contains(t, sql, "`name`")
}

func TestApplyOrdering_UnknownKeysIgnored(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var out []entity.Product
	tx := ApplyOrdering(db.Model(&entity.Product{}), []string{"bogus", "-also_bogus"}, map[string]string{"name": "name"}).Find(&out)
	assert.NotContains(t, tx.Statement.SQL.String(), "ORDER BY")
}
