package usecase

import (
	"fmt"
	"strings"

	"ai-planning-studio/internal/plan"
)

// promptInput is everything the system prompt depends on. Identical inputs
// produce identical prompts.
type promptInput struct {
	Subject      string
	Topic        string
	Prompt       string
	FileContent  string
	Today        string   // YYYY-MM-DD
	ExampleDates []string // consecutive dates starting at Today
}

// buildSystemPrompt assembles the instruction set sent as the system message.
func buildSystemPrompt(in promptInput) string {
	var sb strings.Builder

	sb.WriteString("You are an expert in pedagogy and study planning.\n\n")
	sb.WriteString("TASK: Analyze the study content and generate a smart study schedule.\n\n")

	fmt.Fprintf(&sb, "SUBJECT/COURSE: %s\n", in.Subject)
	if in.Topic != "" {
		fmt.Fprintf(&sb, "TOPIC: %s\n", in.Topic)
	}
	if in.Prompt != "" {
		fmt.Fprintf(&sb, "ADDITIONAL USER CONTEXT: %s\n", in.Prompt)
	}
	if strings.TrimSpace(in.FileContent) != "" {
		sb.WriteString("\nATTACHED FILE CONTENT:\n\"\"\"\n")
		sb.WriteString(in.FileContent)
		sb.WriteString("\n\"\"\"\n\n")
		sb.WriteString("You MUST analyze the file content above and create study tasks based on it.\n")
	}

	fmt.Fprintf(&sb, "\nSTART DATE (TODAY): %s\n\n", in.Today)

	sb.WriteString("## PHASE 1: INTERNAL ANALYSIS (do this before generating tasks)\n\n")
	sb.WriteString("1. **CLASSIFY COMPLEXITY** (1 to 5):\n")
	for _, c := range complexityLevels {
		fmt.Fprintf(&sb, "   - %d: %s (e.g. %s)\n", c.Level, c.Label, c.Examples)
	}
	sb.WriteString("\n2. **ESTIMATE SCOPE**:\n")
	sb.WriteString("   - Identify how many sub-modules or concepts are needed\n")
	sb.WriteString("   - Estimate total study hours (assume 1-2h per session)\n")
	sb.WriteString("   - Work out the number of days from the complexity\n\n")
	sb.WriteString("3. **DAY FORMULA**:\n")
	for _, c := range complexityLevels {
		fmt.Fprintf(&sb, "   - Complexity %d: %d-%d days (%d-%dh total)\n", c.Level, c.MinDays, c.MaxDays, c.MinHours, c.MaxHours)
	}

	sb.WriteString("\n## PHASE 2: SCHEDULE GENERATION\n\n")
	sb.WriteString("MANDATORY RULES:\n")
	fmt.Fprintf(&sb, "1. ALWAYS use CONSECUTIVE days (%s, ...)\n", strings.Join(in.ExampleDates, ", "))
	sb.WriteString("2. NEVER skip days in the schedule\n")
	sb.WriteString("3. One main task per day\n")
	sb.WriteString("4. Include a review every 5-7 days\n")
	sb.WriteString("5. Start with the basics and progress gradually\n\n")

	fmt.Fprintf(&sb, "CORRECT DATES EXAMPLE for %d days:\n", len(in.ExampleDates))
	for i, d := range in.ExampleDates {
		fmt.Fprintf(&sb, "Day %d: %s\n", i+1, d)
	}

	taskSubject := taskSubjectFor(in.Topic)
	sb.WriteString("\n## MANDATORY RESPONSE FORMAT\n\n")
	sb.WriteString("Reply ONLY with valid JSON, without any additional text or markdown:\n\n")
	fmt.Fprintf(&sb, `{
  "estimated_difficulty": 3,
  "total_hours": 25,
  "recommended_days": 12,
  "modules": ["Module 1: Fundamentals", "Module 2: Practice", "Module 3: Advanced"],
  "tasks": [
    {
      "text": "📚 Short task title",
      "description": "Detailed description of what to study (estimated time: 1h30min)",
      "priority": "high",
      "date": %q,
      "category": %q,
      "subject": %q
    }
  ]
}
`, in.Today, in.Subject, taskSubject)

	sb.WriteString("\nTASK FIELDS:\n")
	fmt.Fprintf(&sb, "- \"text\": Short title with an emoji (max %d chars). Emojis: %s\n", maxTaskTextChars, strings.Join(taskEmojis, " "))
	sb.WriteString("- \"description\": Detailed description with the estimated time\n")
	sb.WriteString("- \"priority\": \"high\" (fundamentals), \"medium\" (practice), \"low\" (review)\n")
	sb.WriteString("- \"date\": YYYY-MM-DD on CONSECUTIVE days\n")
	fmt.Fprintf(&sb, "- \"category\": %q\n", in.Subject)
	fmt.Fprintf(&sb, "- \"subject\": %q\n\n", taskSubject)

	fmt.Fprintf(&sb, "Generate between %d and %d tasks depending on the analyzed complexity.", minTasks, maxTasks)

	return sb.String()
}

// buildUserMessage restates the request as the user turn.
func buildUserMessage(in plan.GenerateInput) string {
	msg := "Analyze and create a smart study plan for: " + in.Subject
	if in.Topic != "" {
		msg += " - " + in.Topic
	}
	return msg
}

func taskSubjectFor(topic string) string {
	if topic != "" {
		return topic
	}
	return defaultTaskSubject
}
