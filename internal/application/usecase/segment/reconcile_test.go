package segment

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/expense-segmentation/backend/internal/domain/error"
)

// assertSegmentErrorCode fails the test unless err is a SegmentError carrying
// the expected code.
func assertSegmentErrorCode(t *testing.T, err error, code domainerror.SegmentErrorCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}

	var segErr *domainerror.SegmentError
	if !errors.As(err, &segErr) {
		t.Fatalf("expected SegmentError, got %T: %v", err, err)
	}

	if segErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, segErr.Code, segErr.Message)
	}
}

func TestDerivePercentage(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		total    string
		expected string
	}{
		{name: "exact share", amount: "60.00", total: "100.00", expected: "60"},
		{name: "smaller share", amount: "40.00", total: "100.00", expected: "40"},
		{name: "repeating decimal rounds to 2dp", amount: "1.00", total: "3.00", expected: "33.33"},
		{name: "repeating decimal rounds up", amount: "2.00", total: "3.00", expected: "66.67"},
		{name: "full amount", amount: "250.00", total: "250.00", expected: "100"},
		{name: "small slice of large total", amount: "0.01", total: "1000.00", expected: "0"},
		{name: "zero total yields zero", amount: "10.00", total: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := derivePercentage(dec(tt.amount), dec(tt.total))
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("derivePercentage(%s, %s) = %s, expected %s",
					tt.amount, tt.total, got, tt.expected)
			}
		})
	}
}

func TestValidateSet_PercentagesSumToHundred(t *testing.T) {
	registry := newFakeRegistry("Travel", "Meals", "Lodging")
	expense := testExpense("100.00")

	// Three-way split whose derived percentages are 33.33 + 33.33 + 33.34.
	inputs := []SegmentInput{
		{Category: "Travel", Amount: dec("33.33")},
		{Category: "Meals", Amount: dec("33.33")},
		{Category: "Lodging", Amount: dec("33.34")},
	}

	segments, err := validateSet(context.Background(), registry, expense, inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := dec("0")
	for _, s := range segments {
		total = total.Add(s.Percentage)
	}
	if total.Sub(dec("100")).Abs().GreaterThan(dec("0.01")) {
		t.Errorf("percentages sum to %s, expected 100.00 within tolerance", total)
	}
}

func TestValidateSet_SumWithinToleranceAccepted(t *testing.T) {
	registry := newFakeRegistry("Travel", "Meals")
	expense := testExpense("100.00")

	// 0.01 under the total is inside the rounding tolerance.
	inputs := []SegmentInput{
		{Category: "Travel", Amount: dec("60.00")},
		{Category: "Meals", Amount: dec("39.99")},
	}

	if _, err := validateSet(context.Background(), registry, expense, inputs); err != nil {
		t.Fatalf("unexpected error for in-tolerance sum: %v", err)
	}
}

func TestValidateSet_EmptySetRejected(t *testing.T) {
	registry := newFakeRegistry("Travel")
	expense := testExpense("100.00")

	_, err := validateSet(context.Background(), registry, expense, nil)
	assertSegmentErrorCode(t, err, domainerror.ErrCodeEmptySegmentSet)
}
