package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/artem13815/skillgap/pkg/analysis"
)

const payloadSchemaJSON = `{
	"type": ["object", "null"],
	"properties": {
		"jobs": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["career"],
				"properties": {
					"career": {"type": "string", "minLength": 1},
					"matched": {"type": ["array", "null"], "items": {"type": "string"}},
					"missing": {"type": ["array", "null"], "items": {"type": "string"}},
					"courses": {"type": ["array", "null"], "items": {"type": "string"}},
					"match_percent": {"type": "number", "minimum": 0, "maximum": 100}
				}
			}
		}
	}
}`

var payloadSchema = mustSchema(payloadSchemaJSON)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("report payload schema: %v", err))
	}
	return schema
}

type payload struct {
	Jobs []analysis.Result `json:"jobs"`
}

// ValidatePayload checks a report request body against the payload schema and
// decodes its jobs. An empty body or a body without jobs yields no results.
func ValidatePayload(raw []byte) ([]analysis.Result, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []analysis.Result{}, nil
	}
	res, err := payloadSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if !res.Valid() {
		msgs := make([]string, len(res.Errors()))
		for i, desc := range res.Errors() {
			msgs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(msgs, "; "))
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	jobs := make([]analysis.Result, 0, len(p.Jobs))
	for _, j := range p.Jobs {
		if j.Matched == nil {
			j.Matched = []string{}
		}
		if j.Missing == nil {
			j.Missing = []string{}
		}
		if j.Courses == nil {
			j.Courses = []string{}
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
