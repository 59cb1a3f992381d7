package progress

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/happymath/internal/gametype"
	"github.com/abhisek/happymath/internal/i18n"
	prog "github.com/abhisek/happymath/internal/progress"
	"github.com/abhisek/happymath/internal/screen"
	"github.com/abhisek/happymath/internal/store"
)

func TestViewListsGamesAndTotals(t *testing.T) {
	ctx := context.Background()
	p := prog.Open(ctx, store.NewMemoryKV())
	p.BeginSession()
	for i := 0; i < 3; i++ {
		p.RecordAnswer(ctx, gametype.Addition, true)
	}
	p.RecordAnswer(ctx, gametype.Division, false)

	env := screen.NewEnv(ctx, p, nil)
	if err := env.SetLang(ctx, i18n.English); err != nil {
		t.Fatal(err)
	}
	view := New(env).View(120, 30)

	for _, want := range []string{
		"Addition Fun", "Decimal Dash",
		"Level 1 • 3/10",
		"Total: Problems 4",
		"Accuracy 75%",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if New(env).Title() != "Game Progress" {
		t.Errorf("Title = %q", New(env).Title())
	}
}
