package invoice

import (
	"strings"

	"myteai/internal/domain"
	"myteai/internal/llm/openai"
)

// SchemaVersion identifies the extraction contract revision.
const SchemaVersion = "v1"

// ExtractionSchema is the function-call contract the model must invoke for
// invoice extraction. Built once at wiring time and treated as immutable
// configuration data.
type ExtractionSchema struct {
	Version string
	Tool    openai.Tool
}

// NewExtractionSchema constructs the parse_invoice function schema with the
// fixed expense taxonomy.
func NewExtractionSchema() ExtractionSchema {
	classes := domain.AllExpenseClasses()
	enum := make([]any, len(classes))
	for i, c := range classes {
		enum[i] = c
	}

	nullable := func(kind string) []any { return []any{kind, "null"} }

	properties := map[string]any{
		"vendor_name":    map[string]any{"type": nullable("string")},
		"vendor_address": map[string]any{"type": nullable("string")},
		"invoice_number": map[string]any{"type": nullable("string")},
		"invoice_date": map[string]any{
			"type":        nullable("string"),
			"description": "Format: YYYY-MM-DD or MM-YYYY if day is unknown. Use null if not found.",
		},
		"due_date": map[string]any{
			"type":        nullable("string"),
			"description": "Format: YYYY-MM-DD or MM-YYYY if day is unknown. Use null if not found.",
		},
		"total_amount": map[string]any{
			"type":        nullable("number"),
			"description": "The total amount of the invoice, including taxes.",
		},
		"currency": map[string]any{
			"type":        nullable("string"),
			"description": "The currency of the total amount (e.g., DZD, EUR, USD).",
		},
		"tax_amount": map[string]any{"type": nullable("number")},
		"description_summary": map[string]any{
			"type":        nullable("string"),
			"description": "A brief, one-sentence summary of the goods or services provided.",
		},
		"expense_class": map[string]any{
			"type":        nullable("string"),
			"enum":        enum,
			"description": classificationGuide(),
		},
	}

	return ExtractionSchema{
		Version: SchemaVersion,
		Tool: openai.Tool{
			Type: "function",
			Function: openai.FunctionDef{
				Name: "parse_invoice",
				Description: "Analyze this document. If it is not a valid invoice, return null for ALL fields. " +
					"Only extract information explicitly present in the document. " +
					"The 'expense_class' must be one of the provided enumerated values.",
				Parameters: map[string]any{
					"type":       "object",
					"properties": properties,
					"required":   []any{"total_amount", "expense_class"},
				},
			},
		},
	}
}

// classificationGuide spells out the disambiguation rules for each expense
// class. The numbering matches the order of domain.ExpenseClasses.
func classificationGuide() string {
	guides := []string{
		"1. Maintenance & Repairs: Routine, preventative, or reactive *physical fixes* involving *hands-on work* or *replacing parts* of a system.",
		"2. Utilities & Energy: Recurring bills for essential services like energy, water, or waste management.",
		"3. Property Management & Admin Fees: Recurring fees for management, administrative services, or financial operations.",
		"4. Supplies & Consumables: Small, recurring purchases for day-to-day operations.",
		"5. Landscaping & Outdoor Maintenance: Maintenance and upkeep of outdoor areas.",
		"6. Contractor Services (External Work Orders): *Large-scale, project-based physical work* performed by external contractors, often tied to specific agreements or work orders.",
		"7. Insurance & Compliance: Costs related to risk management, safety, and regulatory adherence.",
		"8. Staff & Labor: Salaries or wages for recurring on-site personnel.",
		"9. Taxes & Permits: Government-imposed fees, taxes, or licenses.",
		"10. Capital Expenditures (CapEx): *Large, one-time upgrades or installations* that enhance or replace major systems or structures.",
		"11. Professional Services: Third-party *consulting* and *advisory* services involving *intangible expertise* or specialized knowledge.",
	}
	return "The most appropriate classification. CHOOSE WISELY based on these detailed descriptions:\n" +
		strings.Join(guides, "\n")
}
