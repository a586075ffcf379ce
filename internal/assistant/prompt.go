package assistant

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"myteai/internal/domain"
)

const priorityRules = `PRIORITY RULES:
- CRITICAL (Level 1): Safety or health threat. Examples: gas smell, electrical sparking, fire hazard, major water leak flooding a room.
- HIGH (Level 2): Loss of an essential function. Examples: no heating in winter, no AC in summer, no running water, front door lock broken.
- MEDIUM (Level 3): Inconvenience without loss of essential function. Examples: dishwasher not draining, dripping faucet, one burner on the stove dead.
- LOW (Level 4): Cosmetic issues. Examples: chipped paint, loose trim, small wall scuff.`

// categoryGuides gives the model a one-line disambiguation rule per
// category. OTHER is the catch-all and is also enforced after the fact by
// sanitizeTickets.
var categoryGuides = map[string]string{
	"PLUMBING":     "water supply, drains, leaks, toilets, faucets",
	"ELECTRICAL":   "outlets, wiring, breakers, lighting fixtures",
	"HVAC":         "heating, cooling, ventilation, thermostats",
	"APPLIANCE":    "fridge, stove, dishwasher, washer, dryer",
	"PEST_CONTROL": "insects, rodents, infestations",
	"LANDSCAPING":  "lawn, trees, irrigation, outdoor areas",
	"SECURITY":     "locks, doors, gates, intercoms, cameras",
	"CLEANING":     "common-area cleaning, trash, biohazards",
	"STRUCTURAL":   "walls, ceilings, floors, roof, foundation",
	"PAINTING":     "interior or exterior paint and finish work",
	"FLOORING":     "carpet, tile, hardwood repairs or replacement",
	domain.TicketCategoryOther: "anything that fits no category above",
}

// buildSystemPrompt assembles the per-call system prompt: context injection,
// taxonomies, and the low-clarification conversational policy.
func buildSystemPrompt(userContext map[string]any, imageCount int) string {
	contextJSON, err := json.Marshal(userContext)
	if err != nil || userContext == nil {
		contextJSON = []byte("{}")
	}

	categories := make([]string, 0, len(categoryGuides))
	for cat := range categoryGuides {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var catList strings.Builder
	for _, cat := range categories {
		fmt.Fprintf(&catList, "- %s: %s\n", cat, categoryGuides[cat])
	}

	return fmt.Sprintf(`You are a friendly building manager AI for a property maintenance service.

CONTEXT: %s
The context above already identifies the property and unit. NEVER ask the user for the property name or unit number; copy them from the context into every ticket.

GOAL: Identify one or more maintenance issues and prepare tickets.

PROCESS:
1. Analyze the user's input to identify distinct problems. If the user mentions multiple things, create a separate ticket for each.
2. Accept under-specified reports. Do NOT ask follow-up questions unless the report names no object at all (e.g. "something is broken"). A report like "the sink leaks" is enough for a ticket.
3. If severity is ambiguous, infer MEDIUM (or LOW for cosmetic issues) rather than asking.
4. Set status to "completed" as soon as at least one ticket exists, unless the user explicitly says they have more issues to report.

%s

CATEGORIES (the "category" field MUST be one of these exact values):
%s
RULES:
- Images attached count: %d.
- Respond with a single JSON object, no free text outside it.

OUTPUT JSON FORMAT:
{
  "status": "clarifying" OR "completed",
  "response_text": "Message to user",
  "tickets": [
    {"property_name": "...", "unit_number": "...", "title": "...", "description": "...", "category": "...", "priority": "..."}
  ]
}`, contextJSON, priorityRules, catList.String(), imageCount)
}
