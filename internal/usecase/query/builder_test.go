package query

import (
	"reflect"
	"testing"

	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/mode"
	"github.com/nkuhub/infosearch/internal/domain/search/plan"
	"github.com/nkuhub/infosearch/internal/domain/search/request"
	"github.com/nkuhub/infosearch/internal/domain/search/scope"
	"github.com/nkuhub/infosearch/internal/domain/search/sortby"
)

func mustRequest(t *testing.T, q string, m mode.Mode, sc scope.Scope, sort sortby.Sort, filetypes []string) *request.Request {
	t.Helper()
	r, err := request.New(q, m, sc, sort, filetypes, false, 1, "")
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

func TestBuild_BasicAllFields(t *testing.T) {
	b := NewBuilder(0)
	p := b.Build(mustRequest(t, "南开", mode.Basic, scope.All, sortby.Relevance, nil))

	mm, ok := p.Query.(plan.MultiMatch)
	if !ok {
		t.Fatalf("query is %T, want MultiMatch", p.Query)
	}
	want := []plan.BoostedField{{Name: "title", Boost: 2.0}, {Name: "content", Boost: 1.0}}
	if !reflect.DeepEqual(mm.Fields, want) {
		t.Errorf("fields = %+v, want %+v", mm.Fields, want)
	}
	if mm.Query != "南开" {
		t.Errorf("query text = %q", mm.Query)
	}
	if p.Size != DefaultMaxResults {
		t.Errorf("size = %d, want %d", p.Size, DefaultMaxResults)
	}
	if p.Sort != nil {
		t.Errorf("unexpected sort clause %+v", p.Sort)
	}
}

func TestBuild_TitleScope(t *testing.T) {
	b := NewBuilder(0)
	p := b.Build(mustRequest(t, "讲座", mode.Basic, scope.Title, sortby.Relevance, nil))

	mm := p.Query.(plan.MultiMatch)
	if len(mm.Fields) != 1 || mm.Fields[0].Name != "title" || mm.Fields[0].Boost != 2.0 {
		t.Errorf("fields = %+v", mm.Fields)
	}
	if !reflect.DeepEqual(p.Highlight.Fields, []string{"title"}) {
		t.Errorf("highlight fields = %v", p.Highlight.Fields)
	}
}

func TestBuild_DocumentWithExplicitFiletypes(t *testing.T) {
	b := NewBuilder(0)
	p := b.Build(mustRequest(t, "培养方案", mode.Document, scope.All, sortby.Relevance, []string{"PDF", "Docx"}))

	bq, ok := p.Query.(plan.Bool)
	if !ok {
		t.Fatalf("query is %T, want Bool", p.Query)
	}
	if len(bq.Must) != 1 || len(bq.Filter) != 1 {
		t.Fatalf("must/filter = %d/%d", len(bq.Must), len(bq.Filter))
	}

	mm := bq.Must[0].(plan.MultiMatch)
	want := []plan.BoostedField{
		{Name: "title", Boost: 2.0},
		{Name: "content", Boost: 1.0},
		{Name: "filename", Boost: 1.5},
		{Name: "filetype", Boost: 1.0},
	}
	if !reflect.DeepEqual(mm.Fields, want) {
		t.Errorf("fields = %+v, want %+v", mm.Fields, want)
	}

	terms := bq.Filter[0].(plan.Terms)
	if terms.Field != "filetype" {
		t.Errorf("filter field = %q", terms.Field)
	}
	if !reflect.DeepEqual(terms.Values, []string{"pdf", "docx"}) {
		t.Errorf("filter values = %v, want lowercased input", terms.Values)
	}
}

func TestBuild_DocumentDefaultFiletypes(t *testing.T) {
	b := NewBuilder(0)
	p := b.Build(mustRequest(t, "表格", mode.Document, scope.All, sortby.Relevance, nil))

	terms := p.Query.(plan.Bool).Filter[0].(plan.Terms)
	if !reflect.DeepEqual(terms.Values, SupportedFiletypes) {
		t.Errorf("filter values = %v, want supported set", terms.Values)
	}
}

func TestBuild_Phrase(t *testing.T) {
	b := NewBuilder(0)
	p := b.Build(mustRequest(t, "数学建模", mode.Phrase, scope.All, sortby.Relevance, nil))

	bq := p.Query.(plan.Bool)
	if len(bq.Should) != 2 {
		t.Fatalf("should clauses = %d, want 2", len(bq.Should))
	}
	mp := bq.Should[0].(plan.MatchPhrase)
	if mp.Field != "title" || mp.Phrase != "数学建模" {
		t.Errorf("first phrase clause = %+v", mp)
	}
}

func TestBuild_WildcardSortDate(t *testing.T) {
	b := NewBuilder(500)
	p := b.Build(mustRequest(t, "北大？", mode.Wildcard, scope.All, sortby.Date, nil))

	bq := p.Query.(plan.Bool)
	wc := bq.Should[0].(plan.Wildcard)
	if wc.Pattern != "北大?" {
		t.Errorf("pattern = %q, want %q", wc.Pattern, "北大?")
	}

	if p.Sort == nil || p.Sort.Field != "date" || !p.Sort.Desc {
		t.Errorf("sort clause = %+v, want date desc", p.Sort)
	}
	if p.Size != 500 {
		t.Errorf("size = %d, want 500", p.Size)
	}
}

func TestNormalizeWildcard(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"北大？", "北大?"},
		{"南开＊", "南开*"},
		{"数学", "数学*"},
		{"a*b", "a*b"},
		{"a?b", "a?b"},
	}
	for _, tt := range tests {
		if got := NormalizeWildcard(tt.in); got != tt.want {
			t.Errorf("NormalizeWildcard(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuild_HighlightMarkers(t *testing.T) {
	b := NewBuilder(0)
	p := b.Build(mustRequest(t, "南开", mode.Basic, scope.All, sortby.Relevance, nil))

	if p.Highlight.PreTag != "<mark>" || p.Highlight.PostTag != "</mark>" {
		t.Errorf("highlight markers = %q/%q", p.Highlight.PreTag, p.Highlight.PostTag)
	}
	if !reflect.DeepEqual(p.Highlight.Fields, []string{"title", "content"}) {
		t.Errorf("highlight fields = %v", p.Highlight.Fields)
	}
}

func TestApplyHighlights(t *testing.T) {
	hits := []hit.Hit{
		{Title: "原始标题", Content: "原始正文", HighlightedTitle: "<mark>高亮</mark>标题"},
		{Title: "只有原始", Content: "正文"},
	}

	ApplyHighlights(hits, []string{"title", "content"})

	if hits[0].HighlightedTitle != "<mark>高亮</mark>标题" {
		t.Errorf("engine fragment overwritten: %q", hits[0].HighlightedTitle)
	}
	if hits[0].HighlightedContent != "原始正文" {
		t.Errorf("missing fallback for content: %q", hits[0].HighlightedContent)
	}
	if hits[1].HighlightedTitle != "只有原始" {
		t.Errorf("missing fallback for title: %q", hits[1].HighlightedTitle)
	}
}
