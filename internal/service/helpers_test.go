package service

import (
	"testing"

	"github.com/alexanderramin/astroplan/internal/idgen"
	"github.com/alexanderramin/astroplan/internal/repository"
	"github.com/alexanderramin/astroplan/internal/testutil"
)

// setupRepos creates an in-memory database and all repositories over it.
func setupRepos(t *testing.T) (*repository.SQLiteUserRepo, *repository.SQLiteTaskRepo, *repository.SQLiteAppStateRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteUserRepo(database),
		repository.NewSQLiteTaskRepo(database),
		repository.NewSQLiteAppStateRepo(database)
}

// newIDs returns a deterministic ID generator for assertions on IDs.
func newIDs(prefix string) idgen.Generator {
	return idgen.NewSequenceGenerator(prefix)
}
