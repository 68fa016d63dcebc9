package forward

import "time"

// aliasRule maps a canonical payload key to every output name the upstream
// n8n form may expect for that field. The first output is always the
// canonical name itself.
type aliasRule struct {
	canonical string
	outputs   []string
}

// aliasTable drives both the fan-out in Normalize and the reverse lookup in
// Field. Adding a new downstream alias is a data change here, not a code
// change in the encoders.
var aliasTable = []aliasRule{
	{canonical: "accountName", outputs: []string{"accountName", "Account Name", "account_name"}},
	{canonical: "category", outputs: []string{"category", "Category"}},
	{canonical: "prompt", outputs: []string{"prompt", "Prompt", "text", "message"}},
}

const submittedAtKey = "submittedAt"

// Normalize copies body and fans each canonical field out to every known
// alias, stamping submittedAt (RFC 3339) when absent. Unknown keys pass
// through untouched. The input map is never modified.
func Normalize(body map[string]any) map[string]any {
	out := make(map[string]any, len(body)+8)
	for k, v := range body {
		out[k] = v
	}
	for _, rule := range aliasTable {
		value, ok := lookup(body, rule)
		if !ok {
			continue
		}
		for _, name := range rule.outputs {
			out[name] = value
		}
	}
	if _, ok := out[submittedAtKey]; !ok {
		out[submittedAtKey] = time.Now().UTC().Format(time.RFC3339)
	}
	return out
}

// Field returns the first non-empty string found under any alias of the
// canonical key, the same resolution order the upstream form applies.
func Field(body map[string]any, canonical string) string {
	for _, rule := range aliasTable {
		if rule.canonical != canonical {
			continue
		}
		if v, ok := lookup(body, rule); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

func lookup(body map[string]any, rule aliasRule) (any, bool) {
	for _, name := range rule.outputs {
		v, ok := body[name]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && s == "" {
			continue
		}
		return v, true
	}
	return nil, false
}
