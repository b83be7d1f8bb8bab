package survey

import "strings"

// textRule rewrites text when Match appears in the lowercased input. Rules are
// evaluated in order and the first match wins, so more specific substrings
// must come before broader ones.
type textRule struct {
	Match  string
	Result string
}

var simplifiedRules = []textRule{
	{"goals", "What do you want to do with your money?"},
	{"income", "How much money do you earn every month?"},
	{"knowledge", "How much do you know about money matters?"},
	{"banking", "How do you usually use your bank?"},
	{"save money", "Where do you keep the money you save?"},
	{"loan", "Do you need to borrow a small amount of money?"},
	{"apps", "Can you use money apps on a phone?"},
	{"tracking", "Do you want to see where your money goes?"},
}

var helpRules = []textRule{
	{"primary financial", "Pick everything you want help with."},
	{"income range", "Choose the amount closest to what you earn."},
	{"rate your", "There is no wrong answer, pick what feels right."},
	{"currently do most", "Think about how you used your bank last month."},
	{"currently save", "Pick every place where you keep savings."},
	{"need or expect", "A small loan means borrowing a little money."},
	{"interested", "Move the slider to show how much you care about this."},
	{"comfortable", "Think about apps like Google Pay or PhonePe."},
}

const defaultHelpText = "Select the option that best describes your situation"

var iconRules = []textRule{
	{"community", "🤝"},
	{"chit", "🤝"},
	{"mutual", "📈"},
	{"stocks", "📈"},
	{"invest", "📈"},
	{"loan", "💸"},
	{"learn", "📚"},
	{"track", "📊"},
	{"don't save", "🚫"},
	{"save", "💰"},
	{"₹", "💰"},
	{"upi", "📱"},
	{"mobile", "📱"},
	{"net banking", "💻"},
	{"atm", "🏧"},
	{"bank", "🏦"},
	{"gold", "💍"},
	{"cash", "💵"},
	{"post", "📮"},
	{"uncomfortable", "🙅"},
	{"comfort", "👍"},
}

const defaultIcon = "✅"

// Simplify rewrites a question for low-literacy users: a simplified phrasing,
// a help text, and an icon per option. The input is not modified.
func Simplify(q Question) Question {
	out := cloneQuestion(q)
	out.SimplifiedQuestion = simplifyText(q.Question)
	out.HelpText = helpTextFor(q.Question)
	for i := range out.Options {
		out.Options[i].Icon = iconFor(out.Options[i].Text)
	}
	return out
}

func simplifyText(question string) string {
	if result, ok := matchRule(simplifiedRules, question); ok {
		return result
	}
	// Generic simplification when no rule matches.
	simplified := strings.ReplaceAll(question, "financial", "money")
	simplified = strings.ReplaceAll(simplified, "investment", "saving money")
	return simplified
}

func helpTextFor(question string) string {
	if result, ok := matchRule(helpRules, question); ok {
		return result
	}
	return defaultHelpText
}

func iconFor(option string) string {
	if result, ok := matchRule(iconRules, option); ok {
		return result
	}
	return defaultIcon
}

func matchRule(rules []textRule, text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(lowered, rule.Match) {
			return rule.Result, true
		}
	}
	return "", false
}
