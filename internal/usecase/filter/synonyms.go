package filter

// Static keyword tables resolving free-form intent tokens to the vocabulary
// actually present in product names and categories. A token not found in a
// table is used verbatim as its own single-element synonym set.

var purposeSynonyms = map[string][]string{
	"casual":  {"casual", "everyday", "street", "daily"},
	"sport":   {"sport", "training", "running", "run", "athletic", "gym"},
	"formal":  {"formal", "business", "dress", "oxford", "loafer", "derby", "office"},
	"comfort": {"comfort", "comfortable", "walking", "cushion"},
}

var ageGroupSynonyms = map[string][]string{
	"kids":  {"kids", "kid", "children", "child", "junior"},
	"men":   {"men", "mens"},
	"women": {"women", "womens"},
	"adult": {"adult", "adults"},
}

var styleSynonyms = map[string][]string{
	"comfortable":  {"comfortable", "comfort", "cushion"},
	"lightweight":  {"lightweight", "light"},
	"professional": {"professional", "business", "executive", "oxford"},
}

// resolve returns the synonym set for token, falling back to the token itself.
func resolve(table map[string][]string, token string) []string {
	if syns, ok := table[token]; ok {
		return syns
	}
	return []string{token}
}
