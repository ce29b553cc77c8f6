package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillgap/pkg/catalog"
	pgstorage "github.com/artem13815/skillgap/pkg/storage/postgres"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func TestCatalogRepository_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgstorage.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo, err := NewCatalogRepository(pool)
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, pool,
		[]catalog.CareerRow{{Career: "Data Analyst", Skills: "Python, SQL"}, {Career: "Designer", Skills: "Figma"}},
		[]catalog.CourseRow{{Skill: "sql", CourseLink: "https://old"}, {Skill: "SQL", CourseLink: "https://new"}},
	))

	c, err := catalog.Load(ctx, repo)
	require.NoError(t, err)

	careers := c.Careers()
	require.Len(t, careers, 2)
	assert.Equal(t, "Data Analyst", careers[0].Name)
	assert.Equal(t, []string{"Python", "SQL"}, careers[0].Skills)
	link, ok := c.CourseFor("sql")
	require.True(t, ok)
	assert.Equal(t, "https://new", link)
}
