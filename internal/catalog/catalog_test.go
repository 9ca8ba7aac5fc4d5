package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	t.Run("every product resolves by ID", func(t *testing.T) {
		for _, p := range cat.Products() {
			got, err := cat.Product(p.ID)
			if err != nil {
				t.Fatalf("product %s: %v", p.ID, err)
			}
			if got.Name != p.Name {
				t.Errorf("product %s: lookup mismatch", p.ID)
			}
		}
	})

	t.Run("unknown IDs are errors", func(t *testing.T) {
		if _, err := cat.Product("missing"); !errors.Is(err, domain.ErrUnknownProduct) {
			t.Errorf("expected ErrUnknownProduct, got %v", err)
		}
		if _, err := cat.Topping("missing"); !errors.Is(err, domain.ErrUnknownTopping) {
			t.Errorf("expected ErrUnknownTopping, got %v", err)
		}
	})

	t.Run("pizzas are the only configurable products", func(t *testing.T) {
		for _, p := range cat.Products() {
			if p.Configurable() != (p.Category == domain.CategoryPizza) {
				t.Errorf("product %s: configurable flag off", p.ID)
			}
		}
	})

	t.Run("every product has at least one priced variant", func(t *testing.T) {
		for _, p := range cat.Products() {
			if len(p.Prices) == 0 {
				t.Errorf("product %s has no prices", p.ID)
			}
			for variant, price := range p.Prices {
				if !price.IsPositive() {
					t.Errorf("product %s variant %s: non-positive price %s", p.ID, variant, price)
				}
			}
		}
	})

	t.Run("stuffed crust is excluded from the selectable toppings", func(t *testing.T) {
		for _, topping := range cat.SelectableToppings() {
			if topping.ID == StuffedCrustToppingID {
				t.Errorf("stuffed crust must not appear as a regular toggle")
			}
		}
		if len(cat.SelectableToppings()) != len(cat.Toppings())-1 {
			t.Errorf("exactly one topping entry should be filtered out")
		}
	})
}

func TestSeedEmployees(t *testing.T) {
	employees := SeedEmployees()
	if len(employees) != 2 {
		t.Fatalf("expected 2 seeded employees, got %d", len(employees))
	}

	byUsername := map[string]string{"admin": "admin", "cashier": "123"}
	for _, e := range employees {
		password, ok := byUsername[e.Username]
		if !ok {
			t.Errorf("unexpected seeded employee %q", e.Username)
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)); err != nil {
			t.Errorf("employee %s: seeded hash does not match its password", e.Username)
		}
	}
}

func TestDefaultState(t *testing.T) {
	state := DefaultState()
	if len(state.Orders) != 0 || len(state.Expenses) != 0 {
		t.Errorf("default state must start with empty histories")
	}
	if len(state.Inventory) == 0 {
		t.Errorf("default state must carry the seeded inventory")
	}
	if !state.Settings.OpeningBalance.Equal(decimal.Zero) {
		t.Errorf("default opening balance must be zero")
	}
}
