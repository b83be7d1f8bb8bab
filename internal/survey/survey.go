// Package survey assembles the financial-literacy questionnaire served by the
// API. Question templates are fixed at start-up; Generate returns copies so
// request-time transforms never touch the shared templates.
package survey

// Question types.
const (
	TypeSingleChoice   = "single-choice"
	TypeMultipleChoice = "multiple-choice"
	TypeSlider         = "slider"
)

// Option is one selectable answer of a choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// Question is a survey question definition. Options is set for choice types;
// Min/Max/Labels for sliders. The accessibility fields are populated only for
// low-literacy surveys.
type Question struct {
	ID                 string            `json:"id"`
	Question           string            `json:"question"`
	Type               string            `json:"type"`
	Options            []Option          `json:"options,omitempty"`
	AllowMultiple      bool              `json:"allowMultiple,omitempty"`
	Min                int               `json:"min,omitempty"`
	Max                int               `json:"max,omitempty"`
	Labels             map[string]string `json:"labels,omitempty"`
	SimplifiedQuestion string            `json:"simplified_question,omitempty"`
	HelpText           string            `json:"help_text,omitempty"`
}

// UserContext carries the caller-provided personalization hints. Only
// LiteracyLevel affects output today; the rest are accepted for forward
// compatibility with location- and age-aware surveys.
type UserContext struct {
	Location      string
	AgeGroup      string
	Interest      string
	LiteracyLevel string
}

// Generator produces ordered surveys from a fixed template set.
type Generator struct {
	templates []Question
}

// NewGenerator builds a generator over the given ordered templates.
func NewGenerator(templates []Question) *Generator {
	return &Generator{templates: templates}
}

// Generate returns the ordered question list for the given user context. When
// the caller reports low literacy every question is passed through the
// accessibility transform.
func (g *Generator) Generate(ctx UserContext) []Question {
	questions := make([]Question, 0, len(g.templates))
	for _, tpl := range g.templates {
		q := cloneQuestion(tpl)
		if ctx.LiteracyLevel == "low" {
			q = Simplify(q)
		}
		questions = append(questions, q)
	}
	return questions
}

// Templates returns the generator's template set in order.
func (g *Generator) Templates() []Question {
	out := make([]Question, 0, len(g.templates))
	for _, tpl := range g.templates {
		out = append(out, cloneQuestion(tpl))
	}
	return out
}

func cloneQuestion(q Question) Question {
	out := q
	if q.Options != nil {
		out.Options = make([]Option, len(q.Options))
		copy(out.Options, q.Options)
	}
	if q.Labels != nil {
		out.Labels = make(map[string]string, len(q.Labels))
		for k, v := range q.Labels {
			out.Labels[k] = v
		}
	}
	return out
}
