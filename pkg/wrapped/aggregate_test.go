package wrapped

import (
	"reflect"
	"testing"
	"time"
)

func repo(name string, stars int, lang string) RepositorySummary {
	return RepositorySummary{Name: name, Stars: stars, Language: lang}
}

func fixedEstimate(contributions int) Estimate {
	return Estimate{
		Contributions: contributions,
		Heatmap:       NewHeatmap(nil, contributions),
		LongestStreak: 20,
		Persona:       "Dev Ninja",
	}
}

func TestAggregate_Scenario(t *testing.T) {
	in := Input{
		Profile: Profile{Login: "octo"},
		Repos: []RepositorySummary{
			repo("a", 30, "Go"),
			repo("b", 0, "Go"),
			repo("c", 15, "Rust"),
		},
		FetchedAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}

	vm := Aggregate(in, fixedEstimate(80), DefaultPolicy())

	if vm.Stats.Stars != 45 {
		t.Errorf("Stars = %d, want 45", vm.Stats.Stars)
	}
	wantLangs := []LanguageTally{{"Go", 2}, {"Rust", 1}}
	if !reflect.DeepEqual(vm.Languages, wantLangs) {
		t.Errorf("Languages = %v, want %v", vm.Languages, wantLangs)
	}
	if len(vm.TopRepos) != 2 || vm.TopRepos[0].Name != "a" || vm.TopRepos[1].Name != "c" {
		t.Errorf("TopRepos = %v, want [a c]", vm.TopRepos)
	}
	// floor(45/15 + 80/8) = 13
	if vm.Stats.Score != 13 {
		t.Errorf("Score = %d, want 13", vm.Stats.Score)
	}
	if vm.Stats.Commits != 56 {
		t.Errorf("Commits = %d, want 56", vm.Stats.Commits)
	}
	if vm.Stats.PullRequests != 12 || !vm.Stats.PullRequestsEstimated {
		t.Errorf("PullRequests = %d estimated=%v, want 12 estimated", vm.Stats.PullRequests, vm.Stats.PullRequestsEstimated)
	}
	if vm.Stats.ActiveDays != 26 {
		t.Errorf("ActiveDays = %d, want 26", vm.Stats.ActiveDays)
	}
	if !vm.GeneratedAt.Equal(in.FetchedAt) {
		t.Errorf("GeneratedAt = %v", vm.GeneratedAt)
	}
}

func TestAggregate_EmptyRepos(t *testing.T) {
	vm := Aggregate(Input{Profile: Profile{Login: "new"}}, fixedEstimate(50), DefaultPolicy())

	if vm.Stats.Stars != 0 || vm.Stats.Repos != 0 {
		t.Errorf("stats = %+v", vm.Stats)
	}
	if len(vm.Languages) != 0 {
		t.Errorf("Languages = %v, want empty", vm.Languages)
	}
	if len(vm.TopRepos) != 0 {
		t.Errorf("TopRepos = %v, want empty", vm.TopRepos)
	}
	if vm.Stats.Score != 6 {
		t.Errorf("Score = %d, want 6", vm.Stats.Score)
	}
}

func TestAggregate_RealPullRequests(t *testing.T) {
	in := Input{PullRequests: 7, PullRequestsKnown: true}
	vm := Aggregate(in, fixedEstimate(1000), DefaultPolicy())
	if vm.Stats.PullRequests != 7 || vm.Stats.PullRequestsEstimated {
		t.Errorf("PullRequests = %d estimated=%v", vm.Stats.PullRequests, vm.Stats.PullRequestsEstimated)
	}
}

func TestAggregate_StarsSumAllRepos(t *testing.T) {
	var repos []RepositorySummary
	want := 0
	for i := range 40 {
		repos = append(repos, repo("r", i, ""))
		want += i
	}
	vm := Aggregate(Input{Repos: repos}, fixedEstimate(50), DefaultPolicy())
	if vm.Stats.Stars != want {
		t.Errorf("Stars = %d, want %d", vm.Stats.Stars, want)
	}
}

func TestAggregate_Pure(t *testing.T) {
	in := Input{Repos: []RepositorySummary{repo("b", 1, "Go"), repo("a", 5, "Go")}}
	before := append([]RepositorySummary(nil), in.Repos...)

	est := fixedEstimate(100)
	first := Aggregate(in, est, DefaultPolicy())
	second := Aggregate(in, est, DefaultPolicy())

	if !reflect.DeepEqual(first, second) {
		t.Error("Aggregate should be deterministic")
	}
	if !reflect.DeepEqual(in.Repos, before) {
		t.Error("Aggregate must not reorder its input")
	}
}

func TestScorePolicy_Clamp(t *testing.T) {
	p := DefaultPolicy().Score
	tests := []struct {
		stars, contrib, want int
	}{
		{0, 0, 0},
		{0, 50, 6},
		{15, 8, 2},
		{14, 7, 1},
		{7, 7, 1},
		{7, 3, 0},
		{1500, 0, 100},
		{100000, 100000, 100},
	}
	for _, tt := range tests {
		if got := p.Score(tt.stars, tt.contrib); got != tt.want {
			t.Errorf("Score(%d, %d) = %d, want %d", tt.stars, tt.contrib, got, tt.want)
		}
	}
}

func TestScorePolicy_Custom(t *testing.T) {
	p := ScorePolicy{StarDivisor: 1, ContribDivisor: 100}
	if got := p.Score(40, 200); got != 42 {
		t.Errorf("Score = %d, want 42", got)
	}
}

func TestTallyLanguages(t *testing.T) {
	repos := []RepositorySummary{
		repo("1", 0, "Python"),
		repo("2", 0, "Go"),
		repo("3", 0, ""),
		repo("4", 0, "Go"),
		repo("5", 0, "C"),
		repo("6", 0, "Rust"),
		repo("7", 0, "Zig"),
		repo("8", 0, "Lua"),
	}
	got := TallyLanguages(repos, 5)
	want := []LanguageTally{{"Go", 2}, {"Python", 1}, {"C", 1}, {"Rust", 1}, {"Zig", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TallyLanguages = %v, want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("tally not sorted at %d: %v", i, got)
		}
	}
}

func TestTopRepos(t *testing.T) {
	var repos []RepositorySummary
	for i := range 12 {
		repos = append(repos, repo(string(rune('a'+i)), i%3, ""))
	}
	// Starred repo outside the first ten is ignored.
	repos[11].Stars = 1000

	got := TopRepos(repos, 10, 6)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6: %v", len(got), got)
	}
	for _, r := range got {
		if r.Stars <= 0 {
			t.Errorf("unstarred repo %q included", r.Name)
		}
		if r.Name == "l" {
			t.Error("repo outside the window included")
		}
	}
	// Ties keep input order: c, f, i all have 2 stars.
	if got[0].Name != "c" || got[1].Name != "f" || got[2].Name != "i" {
		t.Errorf("tie order = %v", got[:3])
	}
}

func TestPolicyValidate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}
	bad := []func(*Policy){
		func(p *Policy) { p.TopLanguages = 0 },
		func(p *Policy) { p.RepoWindow = -1 },
		func(p *Policy) { p.TopRepos = 0 },
		func(p *Policy) { p.Score.StarDivisor = 0 },
		func(p *Policy) { p.Score.ContribDivisor = -8 },
	}
	for i, mutate := range bad {
		p := DefaultPolicy()
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
