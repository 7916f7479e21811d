package elastic

import (
	"fmt"
	"strconv"

	"github.com/nkuhub/infosearch/internal/domain/search/plan"
)

// searchBody serializes a query plan into the Elasticsearch request body.
func searchBody(p plan.Plan) (map[string]any, error) {
	query, err := encodeNode(p.Query)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"query": query,
		"size":  p.Size,
	}

	if len(p.Highlight.Fields) > 0 {
		fields := make(map[string]any, len(p.Highlight.Fields))
		for _, f := range p.Highlight.Fields {
			fields[f] = map[string]any{}
		}
		body["highlight"] = map[string]any{
			"pre_tags":  []string{p.Highlight.PreTag},
			"post_tags": []string{p.Highlight.PostTag},
			"fields":    fields,
		}
	}

	if p.Sort != nil {
		order := "asc"
		if p.Sort.Desc {
			order = "desc"
		}
		body["sort"] = []any{
			map[string]any{p.Sort.Field: map[string]any{"order": order}},
		}
	}

	return body, nil
}

func encodeNode(n plan.Node) (map[string]any, error) {
	switch node := n.(type) {
	case plan.MultiMatch:
		fields := make([]string, 0, len(node.Fields))
		for _, f := range node.Fields {
			fields = append(fields, f.Name+"^"+strconv.FormatFloat(f.Boost, 'g', -1, 64))
		}
		return map[string]any{
			"multi_match": map[string]any{
				"query":  node.Query,
				"fields": fields,
			},
		}, nil
	case plan.Bool:
		clause := map[string]any{}
		if err := encodeClause(clause, "must", node.Must); err != nil {
			return nil, err
		}
		if err := encodeClause(clause, "should", node.Should); err != nil {
			return nil, err
		}
		if err := encodeClause(clause, "filter", node.Filter); err != nil {
			return nil, err
		}
		return map[string]any{"bool": clause}, nil
	case plan.MatchPhrase:
		return map[string]any{
			"match_phrase": map[string]any{node.Field: node.Phrase},
		}, nil
	case plan.Wildcard:
		return map[string]any{
			"wildcard": map[string]any{
				node.Field: map[string]any{"value": node.Pattern},
			},
		}, nil
	case plan.Terms:
		return map[string]any{
			"terms": map[string]any{node.Field: node.Values},
		}, nil
	default:
		return nil, fmt.Errorf("unknown query node %T", n)
	}
}

func encodeClause(clause map[string]any, name string, nodes []plan.Node) error {
	if len(nodes) == 0 {
		return nil
	}
	encoded := make([]any, 0, len(nodes))
	for _, n := range nodes {
		e, err := encodeNode(n)
		if err != nil {
			return err
		}
		encoded = append(encoded, e)
	}
	clause[name] = encoded
	return nil
}

// suggestBody builds a completion-suggester request for the given prefix.
func suggestBody(prefix string, size int) map[string]any {
	return map[string]any{
		"suggest": map[string]any{
			"title-suggest": map[string]any{
				"prefix": prefix,
				"completion": map[string]any{
					"field":           "suggest",
					"size":            size,
					"skip_duplicates": true,
				},
			},
		},
		"_source": false,
	}
}
