package rank

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nkuhub/infosearch/internal/domain/profile"
	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/sortby"
)

func newTestRanker() *Ranker {
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_personalization_failures"})
	return New(counter, zap.NewNop())
}

func teacherProfile(college string) *profile.Profile {
	return &profile.Profile{Username: "prof", Role: profile.RoleTeacher, College: college}
}

func studentProfile(college string) *profile.Profile {
	return &profile.Profile{Username: "stu", Role: profile.RoleUndergraduate, College: college}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRank_NilProfileIsIdentity(t *testing.T) {
	r := newTestRanker()
	hits := []hit.Hit{
		{Title: "乙", EngineScore: 1},
		{Title: "甲", EngineScore: 9},
	}

	out := r.Rank(hits, nil, sortby.Relevance)

	if len(out) != 2 || out[0].Title != "乙" || out[1].Title != "甲" {
		t.Errorf("nil profile must not re-order: %+v", out)
	}
}

func TestComputeBoost_TeacherTags(t *testing.T) {
	prof := teacherProfile(profile.Unset)

	tests := []struct {
		name string
		blob string
		want float64
	}{
		{"academic only", "最新科研进展", 1.3},
		{"admin only", "教务通知 课程安排", 1.2},
		{"both stack", "科研与教务", 1.3 * 1.2},
		{"neither", "校园风光", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeBoost(tt.blob, prof, nil)
			if !almostEqual(got, tt.want) {
				t.Errorf("computeBoost(%q) = %v, want %v", tt.blob, got, tt.want)
			}
		})
	}
}

func TestComputeBoost_StudentTags(t *testing.T) {
	prof := studentProfile(profile.Unset)

	got := computeBoost("学生夜跑活动", prof, nil)
	// 学生/活动 hit the first set, 夜跑/活动 the second; both fire once.
	want := 1.2 * 1.15
	if !almostEqual(got, want) {
		t.Errorf("computeBoost = %v, want %v", got, want)
	}
}

func TestComputeBoost_CollegeNameTiers(t *testing.T) {
	related := relatedColleges("物理科学学院")
	prof := &profile.Profile{Role: profile.RoleUnset, College: "物理科学学院"}

	tests := []struct {
		name string
		blob string
		want float64
	}{
		{"full name", "物理科学学院公告", 1.4},
		// 物理学院 matches the alias tier and also appears in the related
		// list, which stacks independently.
		{"alias", "物理学院公告", 1.3 * 1.15},
		// 量子 and 光学 are college keywords: 1.1 + 2*0.05
		{"keyword density", "量子光学进展", 1.1 + 0.1},
		{"no match", "校医院体检", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeBoost(tt.blob, prof, related)
			if !almostEqual(got, tt.want) {
				t.Errorf("computeBoost(%q) = %v, want %v", tt.blob, got, tt.want)
			}
		})
	}
}

func TestComputeBoost_KeywordDensityCap(t *testing.T) {
	prof := &profile.Profile{Role: profile.RoleUnset, College: "经济学院"}

	// 8 keyword hits would add 0.40; the bonus caps at +30%.
	blob := "经济 金融 贸易 市场 投资 统计 财务 商业"
	got := computeBoost(blob, prof, nil)
	if !almostEqual(got, 1.4) {
		t.Errorf("computeBoost = %v, want 1.4 (capped)", got)
	}
}

func TestComputeBoost_RelatedCollegeStacksWithNameMatch(t *testing.T) {
	college := "化学学院"
	related := relatedColleges(college)
	prof := &profile.Profile{Role: profile.RoleUnset, College: college}

	got := computeBoost("化学学院与材料科学与工程学院联合项目", prof, related)
	// Full name 1.4, related college 1.15, and 项目 is not an activity tag.
	// 项目 is a base keyword but the name tier already matched, so no keyword
	// bonus applies.
	want := 1.4 * 1.15
	if !almostEqual(got, want) {
		t.Errorf("computeBoost = %v, want %v", got, want)
	}
}

func TestComputeBoost_ActivityAmplifier(t *testing.T) {
	college := "计算机与网络空间安全学院"
	related := relatedColleges(college)
	prof := &profile.Profile{Role: profile.RoleUnset, College: college}

	t.Run("primary college activity", func(t *testing.T) {
		got := computeBoost("计算机与网络空间安全学院社团活动", prof, related)
		// Full name 1.4; the related entry 网络空间安全学院 is a substring of
		// the full name and stacks independently; activity at full strength.
		want := 1.4 * 1.15 * 1.25
		if !almostEqual(got, want) {
			t.Errorf("computeBoost = %v, want %v", got, want)
		}
	})

	t.Run("related college activity", func(t *testing.T) {
		got := computeBoost("人工智能学院讲座预告", prof, related)
		// No name/alias match; 人工智能 is a CS keyword and 讲座 a base
		// keyword (two matches); related college 1.15 and the reduced
		// activity boost stack on top.
		want := (1.1 + 0.1) * 1.15 * 1.1
		if !almostEqual(got, want) {
			t.Errorf("computeBoost = %v, want %v", got, want)
		}
	})
}

func TestComputeBoost_LatinAliasesLowercased(t *testing.T) {
	prof := &profile.Profile{Role: profile.RoleUnset, College: "商学院"}

	// Blobs are lower-cased, so "MBA" must match case-insensitively.
	got := computeBoost((&hit.Hit{Title: "MBA 招生简章"}).Blob(), prof, nil)
	if !almostEqual(got, 1.3) {
		t.Errorf("computeBoost = %v, want 1.3 (alias tier)", got)
	}
}

func TestComputeBoost_Deterministic(t *testing.T) {
	college := "计算机与网络空间安全学院"
	related := relatedColleges(college)
	prof := teacherProfile(college)
	blob := "计算机学院 acm 竞赛与科研讲座"

	first := computeBoost(blob, prof, related)
	for i := 0; i < 10; i++ {
		if got := computeBoost(blob, prof, related); got != first {
			t.Fatalf("run %d: computeBoost = %v, want %v", i, got, first)
		}
	}
}

func TestScoreHit_EngineScoreTieBreak(t *testing.T) {
	r := newTestRanker()
	prof := teacherProfile(profile.Unset)

	low, err := r.scoreHit(hit.Hit{Title: "科研", EngineScore: 1}, prof, nil)
	if err != nil {
		t.Fatalf("scoreHit: %v", err)
	}
	high, err := r.scoreHit(hit.Hit{Title: "科研", EngineScore: 5}, prof, nil)
	if err != nil {
		t.Fatalf("scoreHit: %v", err)
	}

	if !almostEqual(low.score, 1.3*(1+0.019*1)) {
		t.Errorf("low score = %v", low.score)
	}
	if high.score <= low.score {
		t.Errorf("engine score must break ties: %v <= %v", high.score, low.score)
	}
}

func TestRank_BoostedHitOutranksPlainTwin(t *testing.T) {
	r := newTestRanker()
	prof := teacherProfile("物理科学学院")

	hits := []hit.Hit{
		{Title: "校园新闻", URL: "https://a", EngineScore: 3},
		{Title: "物理学院科研动态", URL: "https://b", EngineScore: 3},
	}

	out := r.Rank(hits, prof, sortby.Relevance)

	if out[0].URL != "https://b" {
		t.Errorf("boosted hit should rank first, got %q", out[0].URL)
	}
}

func TestRank_TimeSort(t *testing.T) {
	r := newTestRanker()
	prof := studentProfile(profile.Unset)

	hits := []hit.Hit{
		{Title: "无日期", URL: "https://undated", EngineScore: 9},
		{Title: "旧闻", URL: "https://old", PublishDate: "2023-01-01", EngineScore: 1},
		{Title: "新闻", URL: "https://new", PublishDate: "2024-06-01", EngineScore: 1},
	}

	out := r.Rank(hits, prof, sortby.Time)

	wantOrder := []string{"https://new", "https://old", "https://undated"}
	for i, want := range wantOrder {
		if out[i].URL != want {
			t.Errorf("position %d = %q, want %q", i, out[i].URL, want)
		}
	}
}

func TestRank_TimeSortTieBreaksByScore(t *testing.T) {
	r := newTestRanker()
	prof := studentProfile(profile.Unset)

	hits := []hit.Hit{
		{Title: "普通", URL: "https://plain", PublishDate: "2024-06-01", EngineScore: 1},
		{Title: "奖学金通知", URL: "https://boosted", PublishDate: "2024-06-01", EngineScore: 1},
	}

	out := r.Rank(hits, prof, sortby.Time)

	if out[0].URL != "https://boosted" {
		t.Errorf("equal timestamps must order by score desc, got %q first", out[0].URL)
	}
}

func TestRank_StableForEqualKeys(t *testing.T) {
	r := newTestRanker()
	prof := studentProfile(profile.Unset)

	hits := []hit.Hit{
		{Title: "通知一", URL: "https://1", EngineScore: 2},
		{Title: "通知二", URL: "https://2", EngineScore: 2},
		{Title: "通知三", URL: "https://3", EngineScore: 2},
	}

	out := r.Rank(hits, prof, sortby.Relevance)

	for i, want := range []string{"https://1", "https://2", "https://3"} {
		if out[i].URL != want {
			t.Errorf("position %d = %q, want %q (stability)", i, out[i].URL, want)
		}
	}
}

func TestRank_Idempotent(t *testing.T) {
	r := newTestRanker()
	prof := teacherProfile("计算机与网络空间安全学院")

	hits := []hit.Hit{
		{Title: "编程竞赛", URL: "https://1", EngineScore: 2},
		{Title: "科研项目申报", URL: "https://2", EngineScore: 5},
		{Title: "校园通知", URL: "https://3", EngineScore: 8},
		{Title: "网安学院讲座", URL: "https://4", EngineScore: 1},
	}

	once := r.Rank(hits, prof, sortby.Relevance)
	twice := r.Rank(once, prof, sortby.Relevance)

	for i := range once {
		if once[i].URL != twice[i].URL {
			t.Errorf("position %d changed on re-rank: %q vs %q", i, once[i].URL, twice[i].URL)
		}
	}
}

func TestRelatedColleges(t *testing.T) {
	got := relatedColleges("医学院")
	// Union of the relation graph and the variant list, deduplicated.
	want := map[string]bool{"生命科学学院": true, "药学院": true, "生命科学院": true}
	if len(got) != len(want) {
		t.Fatalf("relatedColleges = %v", got)
	}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected related college %q", c)
		}
	}

	if relatedColleges(profile.Unset) != nil {
		t.Error("unset college must have no related colleges")
	}
	if relatedColleges("") != nil {
		t.Error("empty college must have no related colleges")
	}
}
