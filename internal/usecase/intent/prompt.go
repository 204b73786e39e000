package intent

import "fmt"

// systemPrompt keeps the model from inventing a purpose filter when the user
// did not ask for one. An over-eager purpose filter hides matching products.
const systemPrompt = "You are a product filter assistant. When no specific purpose is mentioned, " +
	"do not set any purpose filter to show all matching products. Only set purpose when explicitly " +
	"mentioned (e.g., 'sport shoes', 'formal shoes', 'casual shoes')."

const promptTemplate = `Analyze this shopping request: %q and extract detailed product preferences.

Rules for extraction:
1. Main Category:
   - sneakers: running shoes, sport shoes, athletic footwear
   - formal: dress shoes, business shoes, oxford, loafers
   - sandals: flip-flops, slides, beach footwear

2. Price Analysis:
   - For "between X and Y": set both min and max
   - For "under/below X": set min to 0 and max to X
   - For "above/over X": set min to X and max to null
   - Parse number ranges like "60-75" as min and max

3. Purpose Detection:
   - casual: everyday wear, regular use, casual style, basic shoes
   - sport: athletic, training, running, gym, sports activities
   - formal: business, dress, professional, office wear
   - comfort: focus on comfort, walking, daily use

4. Additional Attributes:
   - age_group: kids, adult, men, women
   - style: comfortable, lightweight, professional

Respond with a JSON object exactly in this format:
{
  "category": "sneakers",
  "priceRange": {
    "min": 60,
    "max": 75
  },
  "filters": {
    "purpose": null,
    "age_group": null,
    "style": null
  }
}

Use null for anything not explicitly mentioned in the request.
Only respond with the JSON, no other text.`

func buildPrompt(message string) string {
	return fmt.Sprintf(promptTemplate, message)
}
