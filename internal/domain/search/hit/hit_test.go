package hit

import "testing"

func TestKind(t *testing.T) {
	doc := Hit{Title: "通知", Filetype: "pdf", Filename: "notice.pdf"}
	if doc.Kind() != Document {
		t.Errorf("Kind() = %v, want Document", doc.Kind())
	}

	page := Hit{Title: "新闻", Content: "正文"}
	if page.Kind() != Page {
		t.Errorf("Kind() = %v, want Page", page.Kind())
	}
}

func TestBlob(t *testing.T) {
	h := Hit{Title: "ACM 竞赛", Content: "计算机学院"}
	if got := h.Blob(); got != "acm 竞赛 计算机学院" {
		t.Errorf("Blob() = %q", got)
	}

	empty := Hit{}
	if got := empty.Blob(); got != " " {
		t.Errorf("Blob() on empty hit = %q", got)
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		h    Hit
		want string
	}{
		{"publish date wins", Hit{PublishDate: "2024-03-05", Date: "2024-01-01"}, "2024-03-05"},
		{"date fallback", Hit{Date: "2024-01-01"}, "2024-01-01"},
		{"neither", Hit{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Timestamp(); got != tt.want {
				t.Errorf("Timestamp() = %q, want %q", got, tt.want)
			}
		})
	}
}
