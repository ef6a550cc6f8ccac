package ollama

import "fmt"

const promptTemplate = `You are an experienced marketing analyst. Based on the analytical facts provided, draw brief conclusions and recommendations.

Analytical facts:

%s

Requirements:
- Write at most one paragraph of brief conclusions about the results
- Do NOT list specific figures or percentages (the user already sees them)
- Draw conclusions about trends, problems and opportunities
- Give 3-5 concrete recommendations as a list
- Be concise and to the point

Format: one paragraph of conclusions, then a list of 3-5 recommendations.`

// BuildPrompt monta a instrução enviada ao modelo com os fatos calculados
func BuildPrompt(facts string) string {
	return fmt.Sprintf(promptTemplate, facts)
}
