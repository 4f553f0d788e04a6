package migrations

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "0001", Version("0001_init.sql"))
	assert.Equal(t, "0002", Version("migrations/0002_blog_categories.sql"))
	assert.Equal(t, "seed", Version("seed.sql"))
	assert.Equal(t, "0003", Version("/srv/migrations/0003.sql"))
}

func TestRepositoryMigrationsHaveUniqueVersions(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	seen := map[string]string{}
	var names []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
		v := Version(e.Name())
		if prev, dup := seen[v]; dup {
			t.Fatalf("version %s used by %s and %s", v, prev, e.Name())
		}
		seen[v] = e.Name()
	}
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))
}
