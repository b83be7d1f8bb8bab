package survey

// DefaultTemplates returns the built-in question set. The order is a contract:
// clients render questions positionally.
func DefaultTemplates() []Question {
	return []Question{
		{
			ID:       "financial_goals",
			Question: "What are your primary financial goals?",
			Type:     TypeMultipleChoice,
			Options: []Option{
				{ID: "save", Text: "Save for emergencies"},
				{ID: "invest", Text: "Invest for long-term growth"},
				{ID: "loan", Text: "Get a small loan for specific needs"},
				{ID: "education", Text: "Learn more about financial management"},
				{ID: "community", Text: "Save with family or community members"},
				{ID: "track", Text: "Track and manage my spending better"},
			},
			AllowMultiple: true,
		},
		{
			ID:       "income_range",
			Question: "What is your monthly income range?",
			Type:     TypeSingleChoice,
			Options: []Option{
				{ID: "income_low", Text: "Below ₹15,000"},
				{ID: "income_medium_low", Text: "₹15,000 - ₹30,000"},
				{ID: "income_medium", Text: "₹30,000 - ₹60,000"},
				{ID: "income_medium_high", Text: "₹60,000 - ₹1,20,000"},
				{ID: "income_high", Text: "Above ₹1,20,000"},
			},
		},
		{
			ID:       "financial_knowledge",
			Question: "How would you rate your financial knowledge?",
			Type:     TypeSingleChoice,
			Options: []Option{
				{ID: "beginner", Text: "Beginner - I know very little"},
				{ID: "basic", Text: "Basic - I understand fundamental concepts"},
				{ID: "intermediate", Text: "Intermediate - I can make informed decisions"},
				{ID: "advanced", Text: "Advanced - I understand complex financial products"},
			},
		},
		{
			ID:       "banking_habits",
			Question: "How do you currently do most of your banking?",
			Type:     TypeSingleChoice,
			Options: []Option{
				{ID: "traditional", Text: "Traditional bank branches"},
				{ID: "atm", Text: "ATMs"},
				{ID: "net_banking", Text: "Net banking on computer"},
				{ID: "mobile", Text: "Mobile banking apps"},
				{ID: "upi", Text: "UPI apps (Google Pay, PhonePe, etc.)"},
				{ID: "limited", Text: "I have limited banking access"},
			},
		},
		{
			ID:       "savings_method",
			Question: "How do you currently save money?",
			Type:     TypeMultipleChoice,
			Options: []Option{
				{ID: "bank", Text: "Bank savings account"},
				{ID: "cash", Text: "Cash at home"},
				{ID: "fd", Text: "Fixed deposits"},
				{ID: "post", Text: "Post office schemes"},
				{ID: "chit", Text: "Chit funds/community savings"},
				{ID: "gold", Text: "Gold/jewelry"},
				{ID: "mutual_funds", Text: "Mutual funds"},
				{ID: "stocks", Text: "Direct stocks"},
				{ID: "no_savings", Text: "I don't save regularly"},
			},
			AllowMultiple: true,
		},
		{
			ID:       "loan_needs",
			Question: "Do you currently need or expect to need a small loan?",
			Type:     TypeSingleChoice,
			Options: []Option{
				{ID: "current", Text: "Yes, I currently need a small loan"},
				{ID: "future", Text: "Not now, but might in the near future"},
				{ID: "no", Text: "No, I don't expect to need a loan"},
			},
		},
		{
			ID:       "digital_comfort",
			Question: "How comfortable are you using digital/mobile financial apps?",
			Type:     TypeSingleChoice,
			Options: []Option{
				{ID: "very", Text: "Very comfortable - I use multiple apps regularly"},
				{ID: "somewhat", Text: "Somewhat comfortable - I use basic features"},
				{ID: "limited", Text: "Limited comfort - I use them with help"},
				{ID: "uncomfortable", Text: "Uncomfortable - I prefer not to use them"},
			},
		},
		{
			ID:       "tracking_interest",
			Question: "How interested are you in tracking and analyzing your spending habits?",
			Type:     TypeSlider,
			Min:      1,
			Max:      5,
			Labels: map[string]string{
				"1": "Not Interested",
				"3": "Somewhat Interested",
				"5": "Very Interested",
			},
		},
	}
}
