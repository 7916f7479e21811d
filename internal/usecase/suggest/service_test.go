package suggest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

type mockEngine struct {
	suggestFunc func(ctx context.Context, prefix string, size int) ([]string, error)
	calls       int
}

func (m *mockEngine) Suggest(ctx context.Context, prefix string, size int) ([]string, error) {
	m.calls++
	return m.suggestFunc(ctx, prefix, size)
}

func TestSuggest_ReturnsCompletions(t *testing.T) {
	engine := &mockEngine{
		suggestFunc: func(_ context.Context, prefix string, size int) ([]string, error) {
			if prefix != "南开" || size != MaxSuggestions {
				t.Errorf("prefix = %q, size = %d", prefix, size)
			}
			return []string{"南开大学", "南开新闻"}, nil
		},
	}
	svc, err := New(engine, 8, zap.NewNop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got := svc.Suggest(context.Background(), "南开")
	if want := []string{"南开大学", "南开新闻"}; !reflect.DeepEqual(got, want) {
		t.Errorf("suggestions = %v, want %v", got, want)
	}
}

func TestSuggest_EmptyPrefix(t *testing.T) {
	engine := &mockEngine{
		suggestFunc: func(_ context.Context, _ string, _ int) ([]string, error) {
			t.Error("engine called for empty prefix")
			return nil, nil
		},
	}
	svc, _ := New(engine, 8, zap.NewNop())

	got := svc.Suggest(context.Background(), "   ")
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestSuggest_EngineFailureDegrades(t *testing.T) {
	engine := &mockEngine{
		suggestFunc: func(_ context.Context, _ string, _ int) ([]string, error) {
			return nil, errors.New("cluster down")
		},
	}
	svc, _ := New(engine, 8, zap.NewNop())

	got := svc.Suggest(context.Background(), "南")
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestSuggest_CachesByPrefix(t *testing.T) {
	engine := &mockEngine{
		suggestFunc: func(_ context.Context, _ string, _ int) ([]string, error) {
			return []string{"南开大学"}, nil
		},
	}
	svc, _ := New(engine, 8, zap.NewNop())

	ctx := context.Background()
	svc.Suggest(ctx, "南")
	svc.Suggest(ctx, "南")
	if engine.calls != 1 {
		t.Errorf("engine calls = %d, want 1 (second served from cache)", engine.calls)
	}

	svc.Suggest(ctx, "开")
	if engine.calls != 2 {
		t.Errorf("engine calls = %d, want 2 (new prefix)", engine.calls)
	}
}

func TestSuggest_CapsResultCount(t *testing.T) {
	many := make([]string, 25)
	for i := range many {
		many[i] = "候选"
	}
	engine := &mockEngine{
		suggestFunc: func(_ context.Context, _ string, _ int) ([]string, error) {
			return many, nil
		},
	}
	svc, _ := New(engine, 8, zap.NewNop())

	got := svc.Suggest(context.Background(), "候")
	if len(got) != MaxSuggestions {
		t.Errorf("len = %d, want %d", len(got), MaxSuggestions)
	}
}

func TestSuggest_ErrorsNotCached(t *testing.T) {
	fail := true
	engine := &mockEngine{
		suggestFunc: func(_ context.Context, _ string, _ int) ([]string, error) {
			if fail {
				return nil, errors.New("transient")
			}
			return []string{"南开大学"}, nil
		},
	}
	svc, _ := New(engine, 8, zap.NewNop())

	ctx := context.Background()
	if got := svc.Suggest(ctx, "南"); len(got) != 0 {
		t.Fatalf("got %v during outage", got)
	}
	fail = false
	if got := svc.Suggest(ctx, "南"); len(got) != 1 {
		t.Errorf("got %v after recovery, want the fresh result", got)
	}
}
