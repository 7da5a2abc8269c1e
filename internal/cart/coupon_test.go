package cart

import "testing"

func drinksAndSandwich() *Cart {
	c := New()
	c.AddItem(Line{Title: "Cola", UnitPrice: price("8"), Quantity: 1, Category: "drinks"})
	c.AddItem(Line{Title: "Shawarma", UnitPrice: price("35"), Quantity: 1, Category: "sandwiches"})
	return c
}

func TestEvaluateEligibility_DrinkWindow(t *testing.T) {
	c := drinksAndSandwich()

	cases := []struct {
		name    string
		profile Profile
		want    Reward
	}{
		{"below window", Profile{OrderCount: 4}, RewardNone},
		{"window start", Profile{OrderCount: 5}, RewardDrink},
		{"mid window", Profile{OrderCount: 6}, RewardDrink},
		{"window end", Profile{OrderCount: 9}, RewardDrink},
		{"drink already used", Profile{OrderCount: 6, UsedDrinkCoupon: true}, RewardNone},
	}

	for _, tc := range cases {
		if got := EvaluateEligibility(tc.profile, c); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestEvaluateEligibility_SideRequiresSideLine(t *testing.T) {
	c := drinksAndSandwich()
	if got := EvaluateEligibility(Profile{OrderCount: 12}, c); got != RewardNone {
		t.Errorf("expected none without a side line, got %q", got)
	}

	c.AddItem(Line{Title: "Fries", UnitPrice: price("12"), Quantity: 1, Category: "side"})
	if got := EvaluateEligibility(Profile{OrderCount: 12}, c); got != RewardSide {
		t.Errorf("expected side, got %q", got)
	}
}

func TestEvaluateEligibility_DrinkRequiresDrinksLine(t *testing.T) {
	c := New()
	c.AddItem(Line{Title: "Shawarma", UnitPrice: price("35"), Quantity: 1, Category: "sandwiches"})

	if got := EvaluateEligibility(Profile{OrderCount: 6}, c); got != RewardNone {
		t.Errorf("expected none without a drinks line, got %q", got)
	}
}

// Scenario from the loyalty flow: orderCount=6, unused drink coupon,
// drinks line (8) + sandwich (35). Applying the coupon zeroes the drink,
// leaving a total of 35.
func TestApplyCoupon_ZeroesExactlyOneDrinkLine(t *testing.T) {
	c := drinksAndSandwich()
	c.RefreshEligibility(Profile{OrderCount: 6})

	if c.Coupon().State != CouponEligible {
		t.Fatalf("expected eligible, got %s", c.Coupon().State)
	}

	reward := c.ApplyCoupon()
	if reward != RewardDrink {
		t.Fatalf("expected drink reward, got %q", reward)
	}
	if got := c.Total(); got.StringFixed(2) != "35.00" {
		t.Errorf("expected total 35.00, got %s", got.StringFixed(2))
	}
}

func TestApplyCoupon_SecondApplyHasNoEffect(t *testing.T) {
	c := drinksAndSandwich()
	c.RefreshEligibility(Profile{OrderCount: 6})
	c.ApplyCoupon()

	before := c.Total()
	if reward := c.ApplyCoupon(); reward != RewardNone {
		t.Errorf("expected no-op on second apply, got %q", reward)
	}
	if !c.Total().Equal(before) {
		t.Errorf("total changed on second apply: %s -> %s", before, c.Total())
	}
}

func TestApplyCoupon_OnlyFirstMatchingLineDiscounted(t *testing.T) {
	c := New()
	c.AddItem(Line{Title: "Cola", UnitPrice: price("8"), Quantity: 1, Category: "drinks"})
	c.AddItem(Line{Title: "Lemonade", UnitPrice: price("10"), Quantity: 1, Category: "drinks"})
	c.RefreshEligibility(Profile{OrderCount: 6})
	c.ApplyCoupon()

	// Only the cola is zeroed; the lemonade keeps its price.
	if got := c.Total(); !got.Equal(price("10")) {
		t.Errorf("expected 10, got %s", got)
	}
}

func TestApplyCoupon_DiscountPinnedToTargetLine(t *testing.T) {
	c := New()
	cola := Line{Title: "Cola", UnitPrice: price("8"), Quantity: 1, Category: "drinks"}
	c.AddItem(cola)
	c.RefreshEligibility(Profile{OrderCount: 6})
	c.ApplyCoupon()

	// A drinks line added after apply must not pick up the discount.
	c.AddItem(Line{Title: "Lemonade", UnitPrice: price("10"), Quantity: 1, Category: "drinks"})

	if got := c.Total(); !got.Equal(price("10")) {
		t.Errorf("expected 10, got %s", got)
	}
	if c.Coupon().TargetLineID != MergeKey(cola) {
		t.Error("expected coupon pinned to the cola line")
	}
}

func TestRefreshEligibility_NeverDowngradesApplied(t *testing.T) {
	c := drinksAndSandwich()
	c.RefreshEligibility(Profile{OrderCount: 6})
	c.ApplyCoupon()

	// Profile no longer qualifies, but APPLIED is terminal for the cart.
	c.RefreshEligibility(Profile{OrderCount: 6, UsedDrinkCoupon: true})

	if c.Coupon().State != CouponApplied {
		t.Errorf("expected applied, got %s", c.Coupon().State)
	}
}

func TestRefreshEligibility_RevokedWhenCartChanges(t *testing.T) {
	c := drinksAndSandwich()
	c.RefreshEligibility(Profile{OrderCount: 6})

	cola := Line{Title: "Cola", UnitPrice: price("8"), Quantity: 1, Category: "drinks"}
	c.RemoveItem(MergeKey(cola))
	c.RefreshEligibility(Profile{OrderCount: 6})

	if c.Coupon().State != CouponNone {
		t.Errorf("expected none after drink removed, got %s", c.Coupon().State)
	}
}
