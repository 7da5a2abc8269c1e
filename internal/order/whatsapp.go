package order

import (
	"fmt"
	"net/url"
	"strings"
)

// ToMSISDN converts a local 05XXXXXXXX number to international form for
// wa.me links.
func ToMSISDN(local string) string {
	if strings.HasPrefix(local, "0") {
		return "972" + local[1:]
	}
	return local
}

// Summary renders the pre-filled chat message for a deep-link order.
func Summary(o *Order) string {
	var b strings.Builder

	b.WriteString("New order:\n")
	for _, it := range o.Items {
		if it.IsWeighted {
			fmt.Fprintf(&b, "- %s, %dg\n", it.Title, it.Quantity)
		} else {
			fmt.Fprintf(&b, "- %dx %s\n", it.Quantity, it.Title)
		}
		if len(it.Vegetables) > 0 {
			fmt.Fprintf(&b, "  vegetables: %s\n", strings.Join(it.Vegetables, ", "))
		}
		for _, a := range it.Additions {
			fmt.Fprintf(&b, "  + %s (%s)\n", a.Name, a.Price.StringFixed(2))
		}
		if it.Comment != "" {
			fmt.Fprintf(&b, "  note: %s\n", it.Comment)
		}
	}

	fmt.Fprintf(&b, "Total: %s\n", o.TotalPrice.StringFixed(2))
	fmt.Fprintf(&b, "Delivery: %s\n", o.DeliveryOption)
	fmt.Fprintf(&b, "Payment: %s\n", o.Payment.Method)
	if o.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", o.Phone)
	}
	if o.CouponUsed != "" {
		fmt.Fprintf(&b, "Coupon: %s\n", o.CouponUsed)
	}
	return b.String()
}

// DeepLink builds the wa.me URL that opens a chat with the restaurant,
// message pre-filled. Sending it is up to the shopper.
func DeepLink(o *Order, businessPhone string) string {
	params := url.Values{}
	params.Set("text", Summary(o))
	return "https://wa.me/" + ToMSISDN(businessPhone) + "?" + params.Encode()
}
