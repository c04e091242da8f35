package category

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-segmentation/backend/internal/domain/entity"
	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindActive(_ context.Context) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, c := range r.categories {
		if c.Active {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeCategoryRepo) ExistsActiveByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Active && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

type fakeAuthorizer struct {
	manage bool
}

func (a *fakeAuthorizer) CanViewExpense(entity.Principal, *entity.Expense) bool   { return true }
func (a *fakeAuthorizer) CanModifyExpense(entity.Principal, *entity.Expense) bool { return true }
func (a *fakeAuthorizer) CanManageCategories(entity.Principal) bool               { return a.manage }

func financePrincipal() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Email: "finance@example.com", Role: entity.RoleFinance}
}

func assertCategoryErrorCode(t *testing.T, err error, want domainerror.CategoryErrorCode) {
	t.Helper()
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CategoryError, got %v", err)
	}
	if catErr.Code != want {
		t.Errorf("expected error code %s, got %s", want, catErr.Code)
	}
}

func TestCreateCategory_Success(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCreateCategoryUseCase(repo, &fakeAuthorizer{manage: true})

	output, err := uc.Execute(context.Background(), CreateCategoryInput{
		Principal:   financePrincipal(),
		Name:        "Travel",
		Description: "Flights, trains, mileage",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Category.Active {
		t.Error("new categories must start active")
	}
}

func TestCreateCategory_DuplicateNameCaseInsensitive(t *testing.T) {
	repo := newFakeCategoryRepo(entity.NewCategory("Travel", ""))
	uc := NewCreateCategoryUseCase(repo, &fakeAuthorizer{manage: true})

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		Principal: financePrincipal(),
		Name:      "TRAVEL",
	})
	assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNameExists)
}

func TestCreateCategory_NameReusableAfterDeactivation(t *testing.T) {
	retired := entity.NewCategory("Travel", "")
	retired.Active = false
	uc := NewCreateCategoryUseCase(newFakeCategoryRepo(retired), &fakeAuthorizer{manage: true})

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		Principal: financePrincipal(),
		Name:      "Travel",
	})
	if err != nil {
		t.Fatalf("expected retired name to be reusable, got: %v", err)
	}
}

func TestCreateCategory_BlankNameRejected(t *testing.T) {
	uc := NewCreateCategoryUseCase(newFakeCategoryRepo(), &fakeAuthorizer{manage: true})

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		Principal: financePrincipal(),
		Name:      "   ",
	})
	assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNameRequired)
}

func TestCreateCategory_Forbidden(t *testing.T) {
	uc := NewCreateCategoryUseCase(newFakeCategoryRepo(), &fakeAuthorizer{})

	_, err := uc.Execute(context.Background(), CreateCategoryInput{
		Principal: financePrincipal(),
		Name:      "Travel",
	})
	assertCategoryErrorCode(t, err, domainerror.ErrCodeNotAuthorizedCategories)
}

func TestDeactivateCategory_Success(t *testing.T) {
	cat := entity.NewCategory("Travel", "")
	repo := newFakeCategoryRepo(cat)
	uc := NewDeactivateCategoryUseCase(repo, &fakeAuthorizer{manage: true})

	output, err := uc.Execute(context.Background(), DeactivateCategoryInput{
		Principal:  financePrincipal(),
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Category.Active {
		t.Error("category should be inactive after deactivation")
	}
}

func TestDeactivateCategory_AlreadyInactiveIsNoOp(t *testing.T) {
	cat := entity.NewCategory("Travel", "")
	cat.Active = false
	uc := NewDeactivateCategoryUseCase(newFakeCategoryRepo(cat), &fakeAuthorizer{manage: true})

	output, err := uc.Execute(context.Background(), DeactivateCategoryInput{
		Principal:  financePrincipal(),
		CategoryID: cat.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Category.Active {
		t.Error("category should remain inactive")
	}
}

func TestDeactivateCategory_NotFound(t *testing.T) {
	uc := NewDeactivateCategoryUseCase(newFakeCategoryRepo(), &fakeAuthorizer{manage: true})

	_, err := uc.Execute(context.Background(), DeactivateCategoryInput{
		Principal:  financePrincipal(),
		CategoryID: uuid.New(),
	})
	assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
}

func TestListCategories_OnlyActiveSortedByName(t *testing.T) {
	meals := entity.NewCategory("Meals", "")
	travel := entity.NewCategory("Travel", "")
	retired := entity.NewCategory("Entertainment", "")
	retired.Active = false
	uc := NewListCategoriesUseCase(newFakeCategoryRepo(travel, meals, retired))

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Categories) != 2 {
		t.Fatalf("expected 2 active categories, got %d", len(output.Categories))
	}
	if output.Categories[0].Name != "Meals" || output.Categories[1].Name != "Travel" {
		t.Error("categories not sorted by name")
	}
}
