package domain

// OtherExpenseClass is the fallback classification used whenever a document
// is not a valid invoice or cannot be categorized.
const OtherExpenseClass = "Other"

// ExpenseClasses is the fixed taxonomy of business expense categories the
// model may assign. OtherExpenseClass is the twelfth, fallback value.
var ExpenseClasses = []string{
	"Maintenance & Repairs",
	"Utilities & Energy",
	"Property Management & Admin Fees",
	"Supplies & Consumables",
	"Landscaping & Outdoor Maintenance",
	"Contractor Services (External Work Orders)",
	"Insurance & Compliance",
	"Staff & Labor",
	"Taxes & Permits",
	"Capital Expenditures (CapEx)",
	"Professional Services",
}

// AllExpenseClasses returns the full enumeration including the fallback,
// in the order presented to the model.
func AllExpenseClasses() []string {
	out := make([]string, 0, len(ExpenseClasses)+1)
	out = append(out, ExpenseClasses...)
	out = append(out, OtherExpenseClass)
	return out
}

// TicketCategoryOther is the fallback maintenance ticket category.
const TicketCategoryOther = "OTHER"

// TicketCategories is the fixed set of maintenance ticket categories.
// Model output outside this set is coerced to TicketCategoryOther.
var TicketCategories = map[string]struct{}{
	"PLUMBING":          {},
	"ELECTRICAL":        {},
	"HVAC":              {},
	"APPLIANCE":         {},
	"PEST_CONTROL":      {},
	"LANDSCAPING":       {},
	"SECURITY":          {},
	"CLEANING":          {},
	"STRUCTURAL":        {},
	"PAINTING":          {},
	"FLOORING":          {},
	TicketCategoryOther: {},
}

// ValidTicketCategory reports whether cat (already upper-cased) is part of
// the fixed category set.
func ValidTicketCategory(cat string) bool {
	_, ok := TicketCategories[cat]
	return ok
}

// Ticket priorities, highest severity first. Assigned by the model and not
// validated by this service.
const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
)

// AllowedExtensions holds the acceptable upload extensions (without dot)
// for invoice parsing.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// Conversation status values returned by the ticket assistant.
const (
	StatusCompleted  = "completed"
	StatusClarifying = "clarifying"
)
