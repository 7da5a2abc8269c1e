package cart

// Reward is a loyalty discount that zeroes one line's base price.
type Reward string

const (
	RewardNone  Reward = ""
	RewardDrink Reward = "drink"
	RewardSide  Reward = "side"
)

// Category maps a reward to the line category it can discount.
func (r Reward) Category() string {
	switch r {
	case RewardDrink:
		return "drinks"
	case RewardSide:
		return "side"
	}
	return ""
}

type CouponState string

const (
	CouponNone     CouponState = "none"
	CouponEligible CouponState = "eligible"
	CouponApplied  CouponState = "applied"
)

// Coupon tracks the NONE -> ELIGIBLE -> APPLIED lifecycle. APPLIED is
// terminal for the cart; there is no un-apply. A cleared cart starts over
// at NONE.
type Coupon struct {
	State        CouponState `json:"state"`
	Reward       Reward      `json:"reward,omitempty"`
	TargetLineID string      `json:"target_line_id,omitempty"`
}

// Discounts reports whether the applied coupon covers this line.
func (cp Coupon) Discounts(l Line) bool {
	if cp.State != CouponApplied {
		return false
	}
	if l.Category != cp.Reward.Category() {
		return false
	}
	return cp.TargetLineID == "" || cp.TargetLineID == l.LineID
}

// Profile is the slice of the user record coupon eligibility depends on.
type Profile struct {
	OrderCount      int
	UsedDrinkCoupon bool
}

// EvaluateEligibility is a pure function of the profile and cart contents.
// It only signals; loyalty counters are mutated elsewhere, at checkout,
// never during evaluation.
func EvaluateEligibility(p Profile, c *Cart) Reward {
	if p.OrderCount >= 10 && c.HasCategory(RewardSide.Category()) {
		return RewardSide
	}
	if p.OrderCount >= 5 && p.OrderCount < 10 && !p.UsedDrinkCoupon &&
		c.HasCategory(RewardDrink.Category()) {
		return RewardDrink
	}
	return RewardNone
}

// RefreshEligibility re-runs the eligibility rules against the current
// profile and cart. Idempotent; never touches an applied coupon.
// Evaluation happens outside the cart lock because EvaluateEligibility
// reads the cart through its exported methods.
func (c *Cart) RefreshEligibility(p Profile) {
	c.mu.Lock()
	if c.coupon.State == CouponApplied {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	reward := EvaluateEligibility(p, c)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coupon.State == CouponApplied {
		return
	}
	if reward != RewardNone {
		c.coupon = Coupon{State: CouponEligible, Reward: reward}
		return
	}
	c.coupon = Coupon{State: CouponNone}
}

// ApplyCoupon moves ELIGIBLE to APPLIED and pins the discount to the first
// matching line so a second line of the same category is never discounted.
// Returns the reward on a state change, RewardNone otherwise (not eligible,
// or already applied).
func (c *Cart) ApplyCoupon() Reward {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.coupon.State != CouponEligible {
		return RewardNone
	}

	for _, l := range c.lines {
		if l.Category == c.coupon.Reward.Category() {
			c.coupon.State = CouponApplied
			c.coupon.TargetLineID = l.LineID
			return c.coupon.Reward
		}
	}
	return RewardNone
}

// Coupon exposes the current coupon state to the view layer.
func (c *Cart) Coupon() Coupon {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coupon
}
