package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("p.id", "p.name", "COALESCE(t.name, '') AS team_name").
		From("players p").
		LeftJoin("teams t", "t.id = p.team_id AND t.deleted_at IS NULL").
		Where(Eq("p.team_id", int64(3)), IsNull("p.deleted_at")).
		OrderBy("team_name", "p.name").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.id, p.name, COALESCE(t.name, '') AS team_name FROM players p " +
		"LEFT JOIN teams t ON t.id = p.team_id AND t.deleted_at IS NULL " +
		"WHERE p.team_id = $1 AND p.deleted_at IS NULL ORDER BY team_name, p.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinsAndOrder(t *testing.T) {
	query, args, err := Select("f.id", "home.name AS home_team").
		From("fixtures f").
		Join("teams home", "home.id = f.home_team_id").
		Where(IsNull("f.deleted_at"), Eq("f.status", "completed")).
		OrderBy("f.match_date DESC", "f.id DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT f.id, home.name AS home_team FROM fixtures f JOIN teams home ON home.id = f.home_team_id " +
		"WHERE f.deleted_at IS NULL AND f.status = $1 ORDER BY f.match_date DESC, f.id DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"completed"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("name", "city").
		Values("Garuda FC", "Bandung").
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (name, city) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Garuda FC" || args[1] != "Bandung" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("teams").Columns("name", "city").Values("only-one").ToSQL(); err == nil {
		t.Fatalf("expected error for mismatched values")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("fixtures").
		Set("home_score", 2).
		SetExpr("updated_at", "NOW()").
		SetExpr("status", "?", "completed").
		Where(Eq("id", int64(9)), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE fixtures SET home_score = $1, updated_at = NOW(), status = $2 WHERE id = $3 AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{2, "completed", int64(9)}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := Update("teams").Set("name", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where")
	}
}

type modelRow struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Ignored string
	secret  string `db:"secret"`
}

func TestInsertAndUpdateModel(t *testing.T) {
	row := modelRow{ID: 4, Name: "Garuda FC", City: "Bandung", secret: "x"}

	query, args, err := InsertModel("teams", row, []string{"id"}, "id")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}
	if query != "INSERT INTO teams (name, city) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected insert query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"Garuda FC", "Bandung"}) {
		t.Fatalf("unexpected insert args: %+v", args)
	}

	builder, err := UpdateModel("teams", &row, []string{"id"})
	if err != nil {
		t.Fatalf("update model: %v", err)
	}
	query, args, err = builder.SetExpr("updated_at", "NOW()").Where(Eq("id", row.ID)).ToSQL()
	if err != nil {
		t.Fatalf("build update model query: %v", err)
	}
	if query != "UPDATE teams SET name = $1, city = $2, updated_at = NOW() WHERE id = $3" {
		t.Fatalf("unexpected update query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"Garuda FC", "Bandung", int64(4)}) {
		t.Fatalf("unexpected update args: %+v", args)
	}
}
