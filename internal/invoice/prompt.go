package invoice

const systemPrompt = "You are a world-class invoice parsing and expense classification expert. " +
	"Your sole job is to accurately extract data into the requested JSON format. " +
	"**You MUST strictly follow the detailed descriptions provided in the `expense_class` parameter definition.** " +
	"**Pay close attention to the difference between *physical work* (like repairs) and *non-physical services* (like audits or assessments).** " +
	"If the document is NOT an invoice, return null for ALL fields."

// userPrompt builds the user turn text. The text layer, when present, rides
// along with the rendered image so the model gets layout and accuracy.
func userPrompt(rawText string) string {
	text := "Please analyze this document. Use the image for layout and the raw text for accuracy. " +
		"Adhere strictly to the `parse_invoice` function's requirements. " +
		"**Pay close attention to the detailed descriptions for `expense_class` to distinguish between " +
		"'1. Maintenance' (physical repairs), '10. CapEx' (new installations), and " +
		"'11. Professional Services' (non-physical consulting, like a structural assessment).** " +
		"If it is NOT an invoice, return null for all fields."
	if rawText != "" {
		text += "\n\n--- Raw Text from Document ---\n" + rawText
	}
	return text
}
