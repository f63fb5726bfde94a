package intent

// Unknown is the resolver result when every strategy fails.
const Unknown = "unknown"

// CatchAllCategory marks generic intents that absorb anything vaguely
// on-topic. A lexical hit on one of these is weaker evidence than a hit on a
// specific intent, which the resolver priority order accounts for.
const CatchAllCategory = "general"

// Intent is one entry of the fixed catalog, loaded once at process start.
type Intent struct {
	Name     string   `json:"intent"`
	Category string   `json:"category"`
	Triggers []string `json:"triggers"`
}

// Catalog is immutable, process-wide reference data. Reads need no locking.
type Catalog struct {
	intents []Intent
}

func NewCatalog(intents []Intent) *Catalog {
	return &Catalog{intents: intents}
}

func (c *Catalog) Intents() []Intent {
	return c.intents
}

// IsCatchAll reports whether the named intent belongs to the generic
// catch-all category.
func (c *Catalog) IsCatchAll(name string) bool {
	for _, in := range c.intents {
		if in.Name == name {
			return in.Category == CatchAllCategory
		}
	}
	return false
}
