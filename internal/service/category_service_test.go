package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise-app/spendwise-api/internal/domain"
)

type fakeCategoryRepo struct {
	byID map[uuid.UUID]*domain.Category

	expenseCounts map[uuid.UUID]int64

	createErr error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:          make(map[uuid.UUID]*domain.Category),
		expenseCounts: make(map[uuid.UUID]int64),
	}
}

func (f *fakeCategoryRepo) addDefault(name string) *domain.Category {
	category := &domain.Category{
		ID:        uuid.New(),
		Name:      name,
		IsDefault: true,
		CreatedAt: time.Now(),
	}
	f.byID[category.ID] = category
	return category
}

func (f *fakeCategoryRepo) ListDefaults(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.byID {
		if c.IsDefault {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.byID {
		if c.UserID != nil && *c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCategoryRepo) FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*domain.Category, error) {
	for _, c := range f.byID {
		if c.Name == name && c.UserID != nil && *c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCategoryRepo) Create(ctx context.Context, name string, color *string, userID uuid.UUID) (*domain.Category, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	owner := userID
	category := &domain.Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		UserID:    &owner,
		CreatedAt: time.Now(),
	}
	f.byID[category.ID] = category
	clone := *category
	return &clone, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCategoryRepo) CountExpenses(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return f.expenseCounts[categoryID], nil
}

func TestCategoryListMergesDefaultsAndCustom(t *testing.T) {
	categories := newFakeCategoryRepo()
	svc := NewCategoryService(categories)
	ctx := context.Background()
	userID := uuid.New()

	categories.addDefault("Food")
	categories.addDefault("Transport")
	if _, err := svc.Create(ctx, userID, "Hobbies", nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(ctx, uuid.New(), "Other user's", nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	list, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 2 defaults + 1 custom, got %d", len(list))
	}
	for _, c := range list {
		if !c.VisibleTo(userID) {
			t.Fatalf("category %q should not be visible to this user", c.Name)
		}
	}
}

func TestCategoryCreateNameRules(t *testing.T) {
	categories := newFakeCategoryRepo()
	svc := NewCategoryService(categories)
	ctx := context.Background()
	userID := uuid.New()

	categories.addDefault("Food")

	t.Run("may shadow a default name", func(t *testing.T) {
		if _, err := svc.Create(ctx, userID, "Food", nil); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	})

	t.Run("clashes with own custom", func(t *testing.T) {
		if _, err := svc.Create(ctx, userID, "Hobbies", nil); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if _, err := svc.Create(ctx, userID, "Hobbies", nil); err != ErrCategoryExists {
			t.Fatalf("expected ErrCategoryExists, got %v", err)
		}
	})

	t.Run("another user may reuse the name", func(t *testing.T) {
		if _, err := svc.Create(ctx, uuid.New(), "Hobbies", nil); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	})
}

func TestCategoryDelete(t *testing.T) {
	categories := newFakeCategoryRepo()
	svc := NewCategoryService(categories)
	ctx := context.Background()
	userID := uuid.New()

	def := categories.addDefault("Food")
	own, err := svc.Create(ctx, userID, "Hobbies", nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	foreign, err := svc.Create(ctx, uuid.New(), "Travel", nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	t.Run("default is protected", func(t *testing.T) {
		if err := svc.Delete(ctx, userID, def.ID); err != ErrCategoryNotFound {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("other user's is invisible", func(t *testing.T) {
		if err := svc.Delete(ctx, userID, foreign.ID); err != ErrCategoryNotFound {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("in use is refused", func(t *testing.T) {
		categories.expenseCounts[own.ID] = 2
		if err := svc.Delete(ctx, userID, own.ID); err != ErrCategoryInUse {
			t.Fatalf("expected ErrCategoryInUse, got %v", err)
		}
	})

	t.Run("own unused is deleted", func(t *testing.T) {
		categories.expenseCounts[own.ID] = 0
		if err := svc.Delete(ctx, userID, own.ID); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if _, ok := categories.byID[own.ID]; ok {
			t.Fatalf("expected the category to be gone")
		}
	})
}
