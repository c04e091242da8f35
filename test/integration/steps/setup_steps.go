package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-segmentation/backend/internal/integration/adapters"
	"github.com/expense-segmentation/backend/internal/integration/persistence/model"
)

func (t *testContext) aUserExistsWithEmail(email string) error {
	_, err := t.ensureUser(email, "employee")
	return err
}

func (t *testContext) aUserExistsWithEmailAndRole(email, role string) error {
	_, err := t.ensureUser(email, role)
	return err
}

func (t *testContext) ensureUser(email, role string) (uuid.UUID, error) {
	var existing model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&existing).Error; err == nil {
		return existing.ID, nil
	}

	userID := uuid.New()
	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Name:         "Test User",
		Email:        email,
		PasswordHash: hashPassword(defaultPassword),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return userID, t.db.DbConn.Create(user).Error
}

func (t *testContext) iAmLoggedInAs(email string) error {
	return t.loginAs(email, "employee")
}

func (t *testContext) iAmLoggedInAsWithRole(email, role string) error {
	return t.loginAs(email, role)
}

func (t *testContext) loginAs(email, role string) error {
	userID, err := t.ensureUser(email, role)
	if err != nil {
		return err
	}

	// The user may have been created earlier with a different role.
	if err := t.db.DbConn.Model(&model.UserModel{}).Where("id = ?", userID).Update("role", role).Error; err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.First(&userModel, "id = ?", userID).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
	token, err := tokenService.GenerateAccessToken(context.Background(), userModel.ToEntity())
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}

	t.accessToken = token
	t.currentUserID = userID
	return nil
}

func (t *testContext) theRequestIsNotAuthenticated() error {
	t.accessToken = ""
	t.headers = make(map[string]string)
	return nil
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) anActiveCategoryExists(name string) error {
	return t.createCategory(name, true)
}

func (t *testContext) anInactiveCategoryExists(name string) error {
	return t.createCategory(name, false)
}

func (t *testContext) createCategory(name string, active bool) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) anExpenseExistsWithTotal(total string) error {
	return t.createExpense(t.currentUserID, total, "submitted")
}

func (t *testContext) anExpenseExistsWithTotalAndStatus(total, status string) error {
	return t.createExpense(t.currentUserID, total, status)
}

func (t *testContext) anExpenseOwnedByExistsWithTotal(email, total string) error {
	ownerID, err := t.ensureUser(email, "employee")
	if err != nil {
		return err
	}
	return t.createExpense(ownerID, total, "submitted")
}

func (t *testContext) createExpense(ownerID uuid.UUID, total, status string) error {
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return fmt.Errorf("invalid expense total %q: %w", total, err)
	}

	expenseID := uuid.New()
	t.currentExpenseID = expenseID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:        expenseID,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Vendor:    "Acme Supplies",
		Amount:    amount,
		Type:      "expense",
		CreatedBy: ownerID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(expenseModel).Error
}

func (t *testContext) theExpenseHasASegment(category, amount, percentage string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid segment amount %q: %w", amount, err)
	}
	pct, err := decimal.NewFromString(percentage)
	if err != nil {
		return fmt.Errorf("invalid segment percentage %q: %w", percentage, err)
	}

	segmentID := uuid.New()
	t.currentSegmentID = segmentID

	// Stagger timestamps so segments seeded in sequence keep their order.
	t.segmentSeq++
	now := time.Now().UTC().Add(time.Duration(t.segmentSeq) * time.Millisecond)

	segmentModel := &model.SegmentModel{
		ID:         segmentID,
		ExpenseID:  t.currentExpenseID,
		Category:   category,
		Amount:     amt,
		Percentage: pct,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(segmentModel).Error
}
