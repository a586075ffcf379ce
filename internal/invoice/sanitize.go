package invoice

import "strings"

// CollapseEmpty walks a decoded JSON value and rewrites every empty leaf to
// nil: blank or whitespace-only strings and empty lists become explicit
// absence markers. Objects and non-empty lists are visited recursively;
// numbers, booleans and nulls pass through. The pass is idempotent.
func CollapseEmpty(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = CollapseEmpty(val)
		}
		return out
	case []any:
		if len(t) == 0 {
			return nil
		}
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CollapseEmpty(val)
		}
		return out
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return t
	default:
		return v
	}
}

// isValidInvoice gates a collapsed extraction result: only records carrying
// both a classification and a total count as real invoices.
func isValidInvoice(data map[string]any) bool {
	return data["expense_class"] != nil && data["total_amount"] != nil
}
