package usecase

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/huefit/backend/internal/domain"
)

// fakeScorer plays the remote recommendation service.
type fakeScorer struct {
	recs  []domain.ProductCompatibility
	err   error
	calls int
}

func (f *fakeScorer) Recommend(ctx context.Context, products []domain.Product, skinTone domain.SkinToneInfo) ([]domain.ProductCompatibility, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.recs, nil
}

func warmLight() domain.SkinToneInfo {
	return domain.SkinToneInfo{Undertone: domain.UndertoneWarm, Depth: domain.DepthLight}
}

func TestScore_RecommendedColorOnTop(t *testing.T) {
	svc := NewCompatibilityService(nil, zap.NewNop())

	// Coral is in the warm-light palette: neutral 50 +10 color match +5 top.
	p := domain.Product{ID: "p1", Colors: []string{"Coral"}, Category: "Tops"}
	got := svc.Score(context.Background(), p, warmLight())

	if got.CompatibilityScore != 65 {
		t.Errorf("score = %d, want 65", got.CompatibilityScore)
	}
	if !strings.Contains(got.Reason, "Coral") {
		t.Errorf("reason %q should mention the matched color", got.Reason)
	}
	if !strings.Contains(got.Reason, "warm light") {
		t.Errorf("reason %q should mention the skin tone", got.Reason)
	}
}

func TestScoreAll_IncompleteProfile(t *testing.T) {
	remote := &fakeScorer{recs: []domain.ProductCompatibility{
		{ProductID: "p1", CompatibilityScore: 90},
	}}
	svc := NewCompatibilityService(remote, zap.NewNop())

	products := []domain.Product{
		{ID: "p1", Colors: []string{"Coral"}, Category: "Tops"},
		{ID: "p2", Colors: []string{"Cold blue"}},
	}
	profiles := []domain.SkinToneInfo{
		{},
		{Undertone: domain.UndertoneWarm},
		{Depth: domain.DepthLight},
	}

	for _, profile := range profiles {
		results := svc.ScoreAll(context.Background(), products, profile)
		for i, res := range results {
			if res.CompatibilityScore != 50 {
				t.Errorf("profile %+v product %d: score = %d, want exactly 50", profile, i, res.CompatibilityScore)
			}
			if res.Reason != incompleteProfileReason {
				t.Errorf("profile %+v: reason = %q", profile, res.Reason)
			}
		}
	}
	if remote.calls != 0 {
		t.Errorf("remote consulted %d times for incomplete profiles, want 0", remote.calls)
	}
}

func TestScoreAll_LocalRules(t *testing.T) {
	svc := NewCompatibilityService(nil, zap.NewNop())
	ctx := context.Background()

	profile := domain.SkinToneInfo{
		Undertone:            domain.UndertoneWarm,
		Depth:                domain.DepthLight,
		RecommendedColors:    []string{"Coral", "Peach", "Gold", "Honey", "Amber", "Terracotta"},
		NotRecommendedColors: []string{"Lavender", "Navy", "Plum", "Cobalt", "Lilac", "Indigo"},
	}

	tests := []struct {
		name    string
		product domain.Product
		want    int
	}{
		{
			"one recommended color plus face-adjacent category",
			domain.Product{ID: "a", Colors: []string{"Coral"}, Category: "Tops"},
			65,
		},
		{
			"recommended and discouraged cancel out",
			domain.Product{ID: "b", Colors: []string{"Peach", "Lavender"}},
			50,
		},
		{
			"single discouraged color",
			domain.Product{ID: "c", Colors: []string{"Lavender"}},
			35,
		},
		{
			"no matches two colors",
			domain.Product{ID: "d", Colors: []string{"Graphite", "Slate"}},
			50,
		},
		{
			"clamped at 100",
			domain.Product{ID: "e", Colors: []string{"Coral", "Peach", "Gold", "Honey", "Amber", "Terracotta"}, Category: "Dresses"},
			100,
		},
		{
			"clamped at 0",
			domain.Product{ID: "f", Colors: []string{"Lavender", "Navy", "Plum", "Cobalt", "Lilac", "Indigo"}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Score(ctx, tt.product, profile)
			if got.CompatibilityScore != tt.want {
				t.Errorf("score = %d, want %d", got.CompatibilityScore, tt.want)
			}
			if got.Reason == "" {
				t.Error("reason must never be empty")
			}
		})
	}
}

func TestScore_ToneAlignmentReason(t *testing.T) {
	svc := NewCompatibilityService(nil, zap.NewNop())

	// Mustard matches nothing in either list but is a warm-toned color.
	profile := domain.SkinToneInfo{
		Undertone:            domain.UndertoneWarm,
		Depth:                domain.DepthLight,
		RecommendedColors:    []string{"Navy"},
		NotRecommendedColors: []string{"Silver"},
	}
	p := domain.Product{ID: "p1", Colors: []string{"Mustard"}}
	got := svc.Score(context.Background(), p, profile)

	if !strings.Contains(got.Reason, "Mustard") || !strings.Contains(got.Reason, "warm") {
		t.Errorf("reason %q should explain the tone alignment", got.Reason)
	}
}

func TestScoreAll_RemoteFirst(t *testing.T) {
	ctx := context.Background()
	products := []domain.Product{
		{ID: "p1", Colors: []string{"Coral"}, Category: "Tops"},
		{ID: "p2", Colors: []string{"Graphite", "Slate"}},
	}

	t.Run("remote results win, gaps filled locally", func(t *testing.T) {
		remote := &fakeScorer{recs: []domain.ProductCompatibility{
			{ProductID: "p1", CompatibilityScore: 88, Reason: "Service pick."},
		}}
		svc := NewCompatibilityService(remote, zap.NewNop())

		results := svc.ScoreAll(ctx, products, warmLight())
		if results[0].CompatibilityScore != 88 || results[0].Reason != "Service pick." {
			t.Errorf("results[0] = %+v, want the remote result", results[0])
		}
		// p2 was absent from the remote response: local rules apply.
		if results[1].CompatibilityScore != 50 {
			t.Errorf("results[1].score = %d, want 50 from local rules", results[1].CompatibilityScore)
		}
		if remote.calls != 1 {
			t.Errorf("remote called %d times, want one batched call", remote.calls)
		}
	})

	t.Run("out-of-range remote scores are clamped", func(t *testing.T) {
		remote := &fakeScorer{recs: []domain.ProductCompatibility{
			{ProductID: "p1", CompatibilityScore: 140},
			{ProductID: "p2", CompatibilityScore: -20},
		}}
		svc := NewCompatibilityService(remote, zap.NewNop())

		results := svc.ScoreAll(ctx, products, warmLight())
		if results[0].CompatibilityScore != 100 {
			t.Errorf("results[0].score = %d, want 100", results[0].CompatibilityScore)
		}
		if results[1].CompatibilityScore != 0 {
			t.Errorf("results[1].score = %d, want 0", results[1].CompatibilityScore)
		}
	})

	t.Run("remote failure degrades silently to local rules", func(t *testing.T) {
		remote := &fakeScorer{err: domain.ErrScoringUnavailable}
		svc := NewCompatibilityService(remote, zap.NewNop())

		results := svc.ScoreAll(ctx, products, warmLight())
		if results[0].CompatibilityScore != 65 {
			t.Errorf("results[0].score = %d, want 65 from local rules", results[0].CompatibilityScore)
		}
		if results[1].CompatibilityScore != 50 {
			t.Errorf("results[1].score = %d, want 50 from local rules", results[1].CompatibilityScore)
		}
	})
}

func TestRecommend(t *testing.T) {
	svc := NewCompatibilityService(nil, zap.NewNop())
	ctx := context.Background()

	profile := domain.SkinToneInfo{
		Undertone:            domain.UndertoneWarm,
		Depth:                domain.DepthLight,
		RecommendedColors:    []string{"Coral"},
		NotRecommendedColors: []string{"Mint"},
	}
	products := []domain.Product{
		{ID: "a", Colors: []string{"Coral"}, Category: "Tops"},    // 65
		{ID: "b", Colors: []string{"Mint"}},                       // 35, dropped
		{ID: "c", Colors: []string{"Graphite", "Slate"}},          // 50
		{ID: "d", Colors: []string{"Coral", "Graphite"}},          // 60
		{ID: "e", Colors: []string{"Taupe", "Stone"}},             // 50, ties with c
	}

	t.Run("filters and ranks", func(t *testing.T) {
		ranked := svc.Recommend(ctx, products, profile, 0)

		wantOrder := []string{"a", "d", "c", "e"}
		if len(ranked) != len(wantOrder) {
			t.Fatalf("got %d products, want %d", len(ranked), len(wantOrder))
		}
		for i, want := range wantOrder {
			if ranked[i].Product.ID != want {
				t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Product.ID, want)
			}
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		ranked := svc.Recommend(ctx, products, profile, 2)
		if len(ranked) != 2 {
			t.Fatalf("got %d products, want 2", len(ranked))
		}
		if ranked[0].Product.ID != "a" || ranked[1].Product.ID != "d" {
			t.Errorf("top two = %s, %s, want a, d", ranked[0].Product.ID, ranked[1].Product.ID)
		}
	})
}
