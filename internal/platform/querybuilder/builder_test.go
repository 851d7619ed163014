package querybuilder

import (
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "venue_city").From("matches").
		Where(
			Eq("match_date", "2025-08-28"),
			Eq("competition_type", "cup"),
			ILike("venue_city", "man"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id, venue_city FROM matches WHERE match_date = $1 AND competition_type = $2 AND venue_city ILIKE $3 ORDER BY kickoff_at, id"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[2] != "%man%" {
		t.Fatalf("expected ILIKE needle to be wrapped in wildcards, got %v", args[2])
	}
}

func TestSelectBuilder_Gte(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("matches").
		Where(Gte("match_date", "2025-08-28")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT id FROM matches WHERE match_date >= $1"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "2025-08-28" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	t.Parallel()

	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
	if _, _, err := Select().From("matches").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestInsertBuilder_WithSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("sync_log").
		Columns("league_id", "sync_date", "synced_at").
		Values(int64(39), "2025-08-28", "now").
		Suffix("ON CONFLICT (league_id, sync_date) DO UPDATE SET synced_at = EXCLUDED.synced_at").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "INSERT INTO sync_log (league_id, sync_date, synced_at) VALUES ($1, $2, $3) ON CONFLICT (league_id, sync_date) DO UPDATE SET synced_at = EXCLUDED.synced_at"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
}

func TestInsertBuilder_RowLengthMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("sync_log").
		Columns("league_id", "sync_date").
		Values(int64(39)).
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for row length mismatch")
	}
}

type insertModelFixture struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Skip string `db:"-"`
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	query, args, err := InsertModel("teams", insertModelFixture{ID: "t1", Name: "Arsenal", Skip: "x"}, "")
	if err != nil {
		t.Fatalf("InsertModel error: %v", err)
	}

	want := "INSERT INTO teams (id, name) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "t1" || args[1] != "Arsenal" {
		t.Fatalf("unexpected args: %v", args)
	}
}
