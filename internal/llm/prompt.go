package llm

import (
	"encoding/json"
	"fmt"
)

// SystemPrompt frames the model as the Finergize advisor. The feature list
// mirrors the catalogue the local engine scores.
const SystemPrompt = `You are a specialized financial advisor AI for Finergize, an Indian financial platform with six key features:
1. Digital Banking - Modern mobile banking services
2. Mutual Funds - Simple investment options
3. Community Savings - Group-based savings programs
4. Micro Loans - Small, accessible loans
5. Analytics Profile - Personal financial insights
6. Financial Education - Learning resources

Your goal is to recommend the most suitable Finergize features based on user survey responses. Prioritize features that best match their needs. Respond with JSON only. Output must match the schema exactly.`

const outputSchema = `{
  "prioritized_features": [
    {"id": "digital_banking|mutual_funds|community_savings|micro_loans|analytics_profile|financial_education", "score": 1-10, "explanation": "...", "tip": "..."}
  ],
  "user_profile": {"knowledge_level": "...", "income_level": "..."}
}`

// BuildUserPrompt renders the survey responses into the scoring request.
func BuildUserPrompt(input RecommendInput) (string, error) {
	payload, err := json.Marshal(input.Responses)
	if err != nil {
		return "", fmt.Errorf("marshal survey responses: %w", err)
	}
	return fmt.Sprintf(
		"Survey responses:\n%s\n\nScore every one of the six features from 1 to 10 and return JSON with this shape:\n%s\nInclude all six feature ids exactly once.",
		payload, outputSchema,
	), nil
}
