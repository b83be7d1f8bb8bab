package survey

import (
	"reflect"
	"testing"
)

var wantOrder = []string{
	"financial_goals",
	"income_range",
	"financial_knowledge",
	"banking_habits",
	"savings_method",
	"loan_needs",
	"digital_comfort",
	"tracking_interest",
}

func TestGenerateOrder(t *testing.T) {
	g := NewGenerator(DefaultTemplates())
	questions := g.Generate(UserContext{LiteracyLevel: "moderate"})

	if len(questions) != len(wantOrder) {
		t.Fatalf("expected %d questions, got %d", len(wantOrder), len(questions))
	}
	for i, q := range questions {
		if q.ID != wantOrder[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantOrder[i], q.ID)
		}
	}
}

func TestGenerateWithoutTransform(t *testing.T) {
	g := NewGenerator(DefaultTemplates())

	for _, level := range []string{"", "moderate", "high", "LOW"} {
		questions := g.Generate(UserContext{LiteracyLevel: level})
		for _, q := range questions {
			if q.SimplifiedQuestion != "" || q.HelpText != "" {
				t.Fatalf("literacy %q: expected untransformed questions, got %+v", level, q)
			}
			for _, opt := range q.Options {
				if opt.Icon != "" {
					t.Fatalf("literacy %q: expected no option icons, got %q", level, opt.Icon)
				}
			}
		}
	}
}

func TestGenerateLowLiteracy(t *testing.T) {
	g := NewGenerator(DefaultTemplates())
	questions := g.Generate(UserContext{LiteracyLevel: "low"})

	for _, q := range questions {
		if q.SimplifiedQuestion == "" {
			t.Fatalf("question %s: expected simplified_question", q.ID)
		}
		if q.HelpText == "" {
			t.Fatalf("question %s: expected help_text", q.ID)
		}
		for _, opt := range q.Options {
			if opt.Icon == "" {
				t.Fatalf("question %s option %s: expected icon", q.ID, opt.ID)
			}
		}
	}
}

func TestGenerateDoesNotMutateTemplates(t *testing.T) {
	templates := DefaultTemplates()
	g := NewGenerator(templates)

	before := g.Templates()
	_ = g.Generate(UserContext{LiteracyLevel: "low"})
	after := g.Templates()

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("low-literacy generation mutated the shared templates")
	}
	for _, q := range after {
		if q.SimplifiedQuestion != "" || q.HelpText != "" {
			t.Fatalf("template %s carries transform output", q.ID)
		}
	}
}

func TestSliderTemplateShape(t *testing.T) {
	g := NewGenerator(DefaultTemplates())
	questions := g.Generate(UserContext{})

	slider := questions[len(questions)-1]
	if slider.ID != "tracking_interest" || slider.Type != TypeSlider {
		t.Fatalf("expected trailing slider question, got %+v", slider)
	}
	if slider.Min != 1 || slider.Max != 5 {
		t.Fatalf("expected slider range [1,5], got [%d,%d]", slider.Min, slider.Max)
	}
	if slider.Labels["3"] != "Somewhat Interested" {
		t.Fatalf("unexpected slider labels: %v", slider.Labels)
	}
	if len(slider.Options) != 0 {
		t.Fatalf("slider must not carry options")
	}
}
