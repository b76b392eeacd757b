package invoicing

import (
	"sort"
	"strings"
)

// FilterInvoices returns the subset of invoices matching a free-text
// search token and an optional status filter, ordered by most recent
// issue date first.
//
// An invoice matches the token when it is a case-insensitive substring
// of the invoice number or of the customer's name; an empty token
// matches everything. An empty status includes all statuses. Both
// conditions compose with logical AND. The sort is stable, so invoices
// issued on the same day keep their input order.
func FilterInvoices(invoices []Invoice, search string, status InvoiceStatus) []Invoice {
	token := strings.ToLower(strings.TrimSpace(search))

	matched := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if token != "" && !matchesToken(inv, token) {
			continue
		}
		if status != "" && inv.Status != status {
			continue
		}
		matched = append(matched, inv)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].DateCreated.After(matched[j].DateCreated)
	})

	return matched
}

func matchesToken(inv Invoice, token string) bool {
	if strings.Contains(strings.ToLower(inv.Number), token) {
		return true
	}
	return inv.Customer != nil && strings.Contains(strings.ToLower(inv.Customer.Name), token)
}
