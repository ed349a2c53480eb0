package repos

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/adrforge/adrforge-backend/internal/domain"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error
)

func testDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		db, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}
		dbErr = db.AutoMigrate(&domain.User{}, &domain.Adr{})
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repo integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}

func testTx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func TestGormAdrRepo(t *testing.T) {
	tx := testTx(t, testDB(t))
	ctx := context.Background()
	repo := NewGormAdrRepo(tx, testLogger(t))

	root, err := repo.Create(ctx, &domain.Adr{
		Title:   "Choose PostgreSQL",
		Content: "<h1>Choose PostgreSQL</h1>",
		Model:   "gpt-4o",
		Prompt:  "We need to choose a database",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if root.ID == 0 || root.OriginalAdrID != nil {
		t.Fatalf("root: %+v", root)
	}

	fb := "Consider cost implications"
	child, err := repo.CreateRefinement(ctx, &domain.Adr{
		Title:    "Choose PostgreSQL v2",
		Content:  "<h1>v2</h1>",
		Model:    "gpt-4o",
		Prompt:   "refinement prompt",
		Feedback: &fb,
	}, root.ID)
	if err != nil {
		t.Fatalf("CreateRefinement: %v", err)
	}
	if child.OriginalAdrID == nil || *child.OriginalAdrID != root.ID {
		t.Fatalf("child parent link: %+v", child)
	}

	got, err := repo.GetByID(ctx, root.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != root.Title {
		t.Fatalf("GetByID title=%q", got.Title)
	}

	if _, err := repo.GetByID(ctx, root.ID+child.ID+1000); !errors.Is(err, ErrAdrNotFound) {
		t.Fatalf("missing id err=%v want ErrAdrNotFound", err)
	}

	roots, err := repo.ListRoots(ctx)
	if err != nil {
		t.Fatalf("ListRoots: %v", err)
	}
	for _, r := range roots {
		if r.OriginalAdrID != nil {
			t.Fatalf("refinement in roots: %+v", r)
		}
	}

	kids, err := repo.ListRefinementsOf(ctx, root.ID)
	if err != nil {
		t.Fatalf("ListRefinementsOf: %v", err)
	}
	if len(kids) != 1 || kids[0].ID != child.ID {
		t.Fatalf("kids: %+v", kids)
	}

	empty, err := repo.ListRefinementsOf(ctx, child.ID+1000)
	if err != nil || len(empty) != 0 {
		t.Fatalf("unknown parent: err=%v len=%d", err, len(empty))
	}
}
