// Package llm builds classification prompts, talks to the configured
// provider, and parses the structured response.
package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Taxonomy is the closed set of categories the classification service is
// instructed to use. The pipeline's own synthetic categories
// (Personal/Homelab, Dead) are assigned locally and never requested here.
var Taxonomy = []string{
	"Financial/Banking",
	"Financial/Investments",
	"Financial/Cryptocurrency",
	"Social",
	"Email",
	"Tools/Development",
	"Tools/Productivity",
	"Tools/Design",
	"Tools/Analytics",
	"Tools/Project Management",
	"Tools/Communication",
	"Tools/Marketing",
	"Shopping",
	"Entertainment",
	"Government/Legal",
	"Utilities",
	"Education",
	"Healthcare",
	"Gaming",
	"Travel",
	"Forum",
	"Cloud/Storage",
	"Cloud/Computing",
	"Cloud/Hosting",
	"Security",
	"AI",
	"Personal/Homelab",
}

const promptTemplate = `## Password Vault Item Categorization Prompt

You are a specialized system that categorizes password vault entries into appropriate categories and subcategories. You will be given information about password vault items, and your task is to assign each to the most appropriate category using a hierarchical structure.

### Category Structure:
Categories can include subcategories using '/' as a separator. For example, "Tools/Development" means this item belongs to the "Development" subcategory within the "Tools" main category.

### Available Categories:
%s

### Input Format:
For each item, you will receive the following information:
- ID: The unique id of the item
- Name: The title of the item
- URL: The website URL or the package name of android app (if available)
- Username: The username (if available)
- Type: The type of item (login, secure note, card, etc.)
- Current Folder: The company folder it belongs to (if any)

### Items to categorize:
%s

### Output Format:
Respond strictly with a JSON array where each item contains:
1. The original item's id (as 'id')
2. The original item's name
3. The assigned category (must be one from the provided list, using '/' for subcategories)
4. A confidence score (0-100)
5. A brief explanation (2-3 words) of why this category was chosen
6. This will be processed by a script, so ensure the output is valid JSON and only output the JSON.

Example response:
` + "```json" + `
[
  {
    "id": "51e7100b-0c56-44ac-afd5-ace000215975",
    "name": "Chase Bank",
    "category": "Financial/Banking",
    "confidence": 95,
    "reason": "Banking service"
  },
  {
    "id": "c3bd51dc-592d-4d63-b253-afd700988e0e",
    "name": "GitHub",
    "category": "Tools/Development",
    "confidence": 96,
    "reason": "Code hosting"
  }
]
` + "```" + `

Do not include any explanatory text outside the JSON array. The response must be valid JSON that can be parsed programmatically.`

// BuildPrompt renders the classification instruction for a batch of items.
func BuildPrompt(items []BatchItem) (string, error) {
	itemsJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal batch items: %w", err)
	}

	var categories strings.Builder
	for _, c := range Taxonomy {
		categories.WriteString("- ")
		categories.WriteString(c)
		categories.WriteString("\n")
	}

	return fmt.Sprintf(promptTemplate, strings.TrimRight(categories.String(), "\n"), string(itemsJSON)), nil
}
