package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/nkuhub/infosearch/internal/domain"
	domprofile "github.com/nkuhub/infosearch/internal/domain/profile"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn    func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn func(ctx context.Context, key string) (map[string]string, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func TestGet_Found(t *testing.T) {
	repo := New(&mockStore{
		hgetAllFn: func(_ context.Context, key string) (map[string]string, error) {
			if key != "infosearch:profile:alice" {
				t.Errorf("key = %q", key)
			}
			return map[string]string{"role": "教师", "college": "物理科学学院"}, nil
		},
	})

	p, err := repo.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != domprofile.RoleTeacher {
		t.Errorf("role = %q", p.Role)
	}
	if p.College != "物理科学学院" {
		t.Errorf("college = %q", p.College)
	}
	if p.Username != "alice" {
		t.Errorf("username = %q", p.Username)
	}
}

func TestGet_Missing(t *testing.T) {
	repo := New(&mockStore{})

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("error = %v, want ErrProfileNotFound", err)
	}
}

func TestGet_UnknownRoleAndEmptyCollege(t *testing.T) {
	repo := New(&mockStore{
		hgetAllFn: func(_ context.Context, _ string) (map[string]string, error) {
			return map[string]string{"role": "校友"}, nil
		},
	})

	p, err := repo.Get(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Role != domprofile.RoleUnset {
		t.Errorf("role = %q, want unset", p.Role)
	}
	if p.College != domprofile.Unset {
		t.Errorf("college = %q, want unset sentinel", p.College)
	}
	if p.HasCollege() {
		t.Error("HasCollege() = true for unset college")
	}
}

func TestSave(t *testing.T) {
	var gotKey string
	var gotFields map[string]string
	repo := New(&mockStore{
		hsetFn: func(_ context.Context, key string, fields map[string]string) error {
			gotKey, gotFields = key, fields
			return nil
		},
	})

	p := domprofile.Profile{Username: "carol", Role: domprofile.RoleGraduate, College: "数学科学学院"}
	if err := repo.Save(context.Background(), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "infosearch:profile:carol" {
		t.Errorf("key = %q", gotKey)
	}
	if gotFields["role"] != "研究生" || gotFields["college"] != "数学科学学院" {
		t.Errorf("fields = %+v", gotFields)
	}
}

func TestSave_RequiresUsername(t *testing.T) {
	repo := New(&mockStore{})
	if err := repo.Save(context.Background(), &domprofile.Profile{}); err == nil {
		t.Fatal("expected error for empty username")
	}
}
