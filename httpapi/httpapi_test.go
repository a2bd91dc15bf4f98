package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/daystram/gambit-lite/board"
)

func newTestApp() *fiber.App {
	return NewApp(Config{}, NewGameManager())
}

func do(t *testing.T, app *fiber.App, method, path, body string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatal("unexpected error decoding response:", err)
		}
	}
	return resp.StatusCode
}

func createGame(t *testing.T, app *fiber.App, body string) State {
	t.Helper()
	var st State
	if code := do(t, app, http.MethodPost, "/api/game", body, &st); code != http.StatusCreated {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusCreated)
	}
	return st
}

func TestCreateGame(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	st := createGame(t, app, "")
	if st.ID == "" {
		t.Error("game has no id")
	}
	if st.FEN != board.DefaultStartingPositionFEN || st.Turn != "white" || st.HumanSide != "white" {
		t.Errorf("unexpected game: %+v", st)
	}
	if st.IsOver || st.Status != "in progress" || len(st.History) != 0 {
		t.Errorf("unexpected status: %+v", st)
	}
	if got, want := st.Board[0], "rnbqkbnr"; got != want {
		t.Errorf("unexpected rank 8: got=%s want=%s", got, want)
	}
	if got, want := st.Board[4], "........"; got != want {
		t.Errorf("unexpected rank 4: got=%s want=%s", got, want)
	}

	var fetched State
	if code := do(t, app, http.MethodGet, "/api/game/"+st.ID, "", &fetched); code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusOK)
	}
	if diff := cmp.Diff(st, fetched); diff != "" {
		t.Errorf("unexpected state (-created +fetched):\n%s", diff)
	}
}

func TestCreateGameEngineMovesFirst(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	st := createGame(t, app, `{"side":"black","difficulty":"hard"}`)
	if st.HumanSide != "black" || st.Turn != "black" {
		t.Errorf("unexpected sides: human=%s turn=%s", st.HumanSide, st.Turn)
	}
	if len(st.History) != 1 || st.History[0].Side != "white" {
		t.Errorf("unexpected history: %+v", st.History)
	}
}

func TestCreateGameErrors(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	for _, body := range []string{
		`{"side":"green"}`,
		`{"difficulty":"impossible"}`,
		`{"fen":"8/8/8 w - - 0 1"}`,
		`{"fen":"０k7/8/8/8/8/8/8/4K3 w - - 0 1"}`,
		`{`,
	} {
		var res map[string]string
		if code := do(t, app, http.MethodPost, "/api/game", body, &res); code != http.StatusBadRequest {
			t.Errorf("%s: unexpected status: got=%d want=%d", body, code, http.StatusBadRequest)
		}
		if res["error"] == "" {
			t.Errorf("%s: missing error message", body)
		}
	}
}

func TestCreateGameRegistersOnSuccess(t *testing.T) {
	t.Parallel()
	gm := NewGameManager()
	quiet := func(...any) {}

	if _, err := gm.CreateGame(CreateOptions{FEN: "8/8/8 w - - 0 1", Logger: quiet}); err == nil {
		t.Fatal("expected error for invalid fen")
	}
	if len(gm.games) != 0 {
		t.Fatalf("failed game registered: %d games", len(gm.games))
	}

	st, err := gm.CreateGame(CreateOptions{HumanSide: board.SideBlack, Logger: quiet})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(gm.games) != 1 {
		t.Fatalf("unexpected game count: got=%d want=1", len(gm.games))
	}
	got, err := gm.GetGameState(st.ID)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if diff := cmp.Diff(st, got); diff != "" {
		t.Errorf("unexpected state (-want +got):\n%s", diff)
	}
}

func TestGameNotFound(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	for _, tt := range []struct {
		method, path, body string
	}{
		{method: http.MethodGet, path: "/api/game/missing"},
		{method: http.MethodGet, path: "/api/game/missing/moves?from=e2"},
		{method: http.MethodPost, path: "/api/game/missing/move", body: `{"move":"e2e4"}`},
		{method: http.MethodPost, path: "/api/game/missing/reset"},
		{method: http.MethodDelete, path: "/api/game/missing"},
	} {
		var res map[string]string
		if code := do(t, app, tt.method, tt.path, tt.body, &res); code != http.StatusNotFound {
			t.Errorf("%s %s: unexpected status: got=%d want=%d", tt.method, tt.path, code, http.StatusNotFound)
		}
		if res["error"] != ErrGameNotFound.Error() {
			t.Errorf("%s %s: unexpected error: %q", tt.method, tt.path, res["error"])
		}
	}
}

func TestLegalMoves(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	st := createGame(t, app, "")

	var res struct {
		From  string     `json:"from"`
		Moves []MoveView `json:"moves"`
	}
	if code := do(t, app, http.MethodGet, "/api/game/"+st.ID+"/moves?from=e2", "", &res); code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusOK)
	}
	var got []string
	for _, mv := range res.Moves {
		got = append(got, mv.UCI)
	}
	if diff := cmp.Diff([]string{"e2e4", "e2e3"}, got); diff != "" {
		t.Errorf("unexpected moves (-want +got):\n%s", diff)
	}

	if code := do(t, app, http.MethodGet, "/api/game/"+st.ID+"/moves?from=z9", "", nil); code != http.StatusUnprocessableEntity {
		t.Errorf("unexpected status: got=%d want=%d", code, http.StatusUnprocessableEntity)
	}
}

func TestMakeMove(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	st := createGame(t, app, "")

	var res MoveResult
	if code := do(t, app, http.MethodPost, "/api/game/"+st.ID+"/move", `{"from":"e2","to":"e4"}`, &res); code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusOK)
	}
	if res.Move.Algebra != "e4" || res.Move.Side != "white" {
		t.Errorf("unexpected move: %+v", res.Move)
	}
	if res.Reply == nil || res.Reply.Side != "black" {
		t.Fatalf("unexpected reply: %+v", res.Reply)
	}
	if res.Game.Turn != "white" || len(res.Game.History) != 2 {
		t.Errorf("unexpected game: %+v", res.Game)
	}

	res = MoveResult{}
	if code := do(t, app, http.MethodPost, "/api/game/"+st.ID+"/move", `{"move":"g1f3"}`, &res); code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusOK)
	}
	if res.Move.Algebra != "Nf3" {
		t.Errorf("unexpected move: %+v", res.Move)
	}
}

func TestMakeMoveRejected(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	st := createGame(t, app, "")

	tests := []struct {
		body string
		want int
	}{
		{body: `{"from":"e2","to":"e5"}`, want: http.StatusUnprocessableEntity},
		{body: `{"from":"e7","to":"e5"}`, want: http.StatusUnprocessableEntity},
		{body: `{"move":"e2"}`, want: http.StatusUnprocessableEntity},
		{body: `{"from":"x2","to":"e4"}`, want: http.StatusUnprocessableEntity},
		{body: `{`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		var res map[string]string
		if code := do(t, app, http.MethodPost, "/api/game/"+st.ID+"/move", tt.body, &res); code != tt.want {
			t.Errorf("%s: unexpected status: got=%d want=%d", tt.body, code, tt.want)
		}
		if res["error"] == "" {
			t.Errorf("%s: missing error message", tt.body)
		}
	}

	var after State
	do(t, app, http.MethodGet, "/api/game/"+st.ID, "", &after)
	if after.FEN != board.DefaultStartingPositionFEN || len(after.History) != 0 {
		t.Errorf("rejected moves changed the game: %+v", after)
	}
}

func TestMakeMoveEndsGame(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	st := createGame(t, app, `{"fen":"7k/8/6K1/8/8/8/8/Q7 w - - 0 1"}`)

	var res MoveResult
	if code := do(t, app, http.MethodPost, "/api/game/"+st.ID+"/move", `{"move":"a1a8"}`, &res); code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusOK)
	}
	if res.Reply != nil {
		t.Errorf("engine replied after mate: %+v", res.Reply)
	}
	if !res.Game.IsOver || res.Game.Winner != "white" || res.Game.State != board.StateCheckmateBlack.String() {
		t.Errorf("unexpected game: %+v", res.Game)
	}
	if res.Game.PGN != "1. Qa8#" {
		t.Errorf("unexpected pgn: %s", res.Game.PGN)
	}

	if code := do(t, app, http.MethodPost, "/api/game/"+st.ID+"/move", `{"move":"g6g7"}`, nil); code != http.StatusConflict {
		t.Errorf("unexpected status: got=%d want=%d", code, http.StatusConflict)
	}
}

func TestResetAndDeleteGame(t *testing.T) {
	t.Parallel()
	app := newTestApp()
	st := createGame(t, app, "")
	do(t, app, http.MethodPost, "/api/game/"+st.ID+"/move", `{"move":"d2d4"}`, nil)

	var reset State
	if code := do(t, app, http.MethodPost, "/api/game/"+st.ID+"/reset", "", &reset); code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusOK)
	}
	if reset.ID != st.ID || reset.FEN != board.DefaultStartingPositionFEN || len(reset.History) != 0 {
		t.Errorf("game not reset: %+v", reset)
	}

	if code := do(t, app, http.MethodDelete, "/api/game/"+st.ID, "", nil); code != http.StatusNoContent {
		t.Fatalf("unexpected status: got=%d want=%d", code, http.StatusNoContent)
	}
	if code := do(t, app, http.MethodGet, "/api/game/"+st.ID, "", nil); code != http.StatusNotFound {
		t.Errorf("unexpected status: got=%d want=%d", code, http.StatusNotFound)
	}
}
