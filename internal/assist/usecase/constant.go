package usecase

import (
	"smart-todo-assistant/internal/assist"
	"smart-todo-assistant/internal/model"
)

// priorityTier is one ordered keyword bucket. Declaration order is the
// authoritative precedence: first tier, then first keyword within the
// tier, wins. Matching is case-insensitive substring containment.
type priorityTier struct {
	priority   model.Priority
	confidence string
	keywords   []string
}

// The low tier reports medium confidence; kept as observed in production.
var priorityTiers = []priorityTier{
	{model.PriorityHigh, assist.ConfidenceHigh, []string{"urgent", "critical", "asap", "important", "high priority", "emergency", "now"}},
	{model.PriorityMedium, assist.ConfidenceMedium, []string{"medium", "moderate", "soon", "this week"}},
	{model.PriorityLow, assist.ConfidenceMedium, []string{"low", "someday", "maybe", "later", "when possible"}},
}

// categoryEntry pairs a category with its ordered keyword list.
type categoryEntry struct {
	name     string
	keywords []string
}

// Categories are scanned in declaration order; within a category, keywords
// in declaration order. First match wins.
var categoryTable = []categoryEntry{
	{"Work", []string{"work", "job", "office", "meeting", "project", "deadline", "client", "boss", "colleague", "presentation", "report", "email"}},
	{"Personal", []string{"personal", "self", "family", "friend", "hobby", "health", "exercise", "workout", "doctor", "appointment"}},
	{"Shopping", []string{"buy", "purchase", "shop", "store", "grocery", "groceries", "mall", "amazon", "order"}},
	{"Health", []string{"health", "doctor", "medicine", "exercise", "gym", "workout", "diet", "medical", "appointment", "checkup"}},
	{"Home", []string{"home", "house", "clean", "laundry", "dishes", "garden", "repair", "maintenance", "bills", "utilities"}},
	{"Finance", []string{"money", "bank", "pay", "bill", "budget", "savings", "investment", "tax", "insurance", "loan"}},
	{"Learning", []string{"learn", "study", "course", "book", "research", "tutorial", "skill", "education", "training"}},
	{"Travel", []string{"travel", "trip", "vacation", "flight", "hotel", "passport", "visa", "booking", "destination"}},
}

const defaultCategory = "General"

// completionActions maps a verb (surface form, lowercase) to its follow-up
// actions. Actions are emitted in list order.
var completionActions = map[string][]string{
	"call":     {"Schedule follow-up", "Send summary email", "Add to contacts"},
	"buy":      {"Check reviews", "Compare prices", "Add to shopping list"},
	"write":    {"Proofread", "Get feedback", "Publish/send"},
	"meeting":  {"Send agenda", "Book room", "Send calendar invite"},
	"read":     {"Take notes", "Write summary", "Share insights"},
	"research": {"Document findings", "Create presentation", "Share results"},
}

const maxCompletionSuggestions = 3

const reminderSuggestionText = "Set reminder 1 day before"

// Time-of-day boundaries for context-free suggestions (inclusive hours).
const (
	workHoursStart = 9
	workHoursEnd   = 17
	eveningStart   = 18
	eveningEnd     = 20
)

// descriptionTemplates is the deterministic fallback for description
// generation, scanned in declaration order.
var descriptionTemplates = []struct {
	keyword  string
	template string
}{
	{"call", "Make a phone call to discuss important matters."},
	{"email", "Send an email with necessary information."},
	{"buy", "Purchase the required items from the store."},
	{"meeting", "Attend or organize a meeting to discuss topics."},
	{"write", "Create written content or documentation."},
	{"read", "Review and understand the material."},
	{"plan", "Organize and structure the upcoming activities."},
	{"review", "Examine and evaluate the content or progress."},
	{"complete", "Finish the outstanding task or project."},
	{"submit", "Send or deliver the required documents."},
}

const defaultDescription = "Complete this task efficiently and effectively."

const describeSystemPrompt = "You are a helpful assistant that creates brief, actionable descriptions for todo items. Keep responses under 50 words and focus on practical steps."
