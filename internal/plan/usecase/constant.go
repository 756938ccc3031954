package usecase

const (
	// InlineTruncationMarker is appended to fileContent cut at the inline ceiling.
	InlineTruncationMarker = "\n\n[... content truncated: too long ...]"

	// binaryProbeChars is how much of fileContent the binary guard inspects.
	binaryProbeChars = 1000

	// replyLogChars is how much of the model reply is logged.
	replyLogChars = 500

	defaultTaskSubject = "General"

	minTasks = 5
	maxTasks = 30

	maxTaskTextChars = 50
)

// Plan outcomes reported to the observer.
const (
	outcomeSuccess         = "success"
	outcomeInvalidRequest  = "invalid_request"
	outcomeRateLimited     = "rate_limited"
	outcomeQuotaExceeded   = "quota_exceeded"
	outcomeUnavailable     = "unavailable"
	outcomeInvalidResponse = "invalid_response"
)

// taskEmojis are the title prefixes the model is asked to use.
var taskEmojis = []string{"📚", "📝", "🧪", "📖", "💡", "🎯", "✍️", "🔬", "📊", "🧠", "🎓", "✨", "🚀", "💻", "📱"}

// complexityLevel maps a difficulty rating to the schedule the model should aim for.
type complexityLevel struct {
	Level    int
	Label    string
	Examples string
	MinDays  int
	MaxDays  int
	MinHours int
	MaxHours int
}

var complexityLevels = []complexityLevel{
	{1, "Introductory", `"Intro to HTML", "Excel basics"`, 3, 5, 5, 10},
	{2, "Basic-Intermediate", `"CSS Flexbox", "Excel formulas"`, 5, 10, 10, 20},
	{3, "Intermediate", `"JavaScript ES6", "Python OOP"`, 10, 15, 20, 30},
	{4, "Advanced", `"React Hooks", "Intro to Machine Learning"`, 15, 25, 30, 50},
	{5, "Expert", `"Microservices with Go", "Deep Learning", "Kubernetes"`, 25, 30, 50, 80},
}
