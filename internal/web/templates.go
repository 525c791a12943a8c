package web

import (
    "bytes"
    "html/template"
    "net/http"

    "github.com/google/uuid"
    "github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
    "github.com/jaminalder/perfect-tic-tac-toe/internal/minimax"
)

type templates struct {
    base  *template.Template
    game  *template.Template
    board *template.Template
    index *template.Template
    hint  *template.Template
}

func funcs() template.FuncMap {
    return template.FuncMap{
        "iter": func(n int) []int { a := make([]int, n); for i := range a { a[i] = i }; return a },
        "cellSymbol": func(c domain.Cell) string {
            switch c { case domain.X: return "X"; case domain.O: return "O"; default: return "" }
        },
        "add": func(a, b int) int { return a + b },
        "mul": func(a, b int) int { return a * b },
    }
}

func loadTemplates() *templates {
    base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>{{template "content" .}}</body></html>`))
    index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>TicTacToe</h1>
<form action="/game" method="post">
  <label><input type="radio" name="symbol" value="X" checked> X</label>
  <label><input type="radio" name="symbol" value="O"> O</label>
  <button>Play the computer</button>
</form>`))
    game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" hx-sse="connect:/game/{{.Game.ID}}/events">
  <div id="board" hx-sse="swap:board">{{.BoardHTML}}</div>
</div>
<button hx-get="/game/{{.Game.ID}}/hint" hx-target="#hint">Hint</button>
<div id="hint"></div>`))
    // Standalone board template used for fragment rendering
    board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
    hint := template.Must(template.New("hint").Funcs(funcs()).Parse(hintTemplate))
    return &templates{base: base, game: game, board: board, index: index, hint: hint}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
    var buf bytes.Buffer
    if name == "" {
        _ = t.Execute(&buf, data)
    } else {
        _ = t.ExecuteTemplate(&buf, name, data)
    }
    return buf.Bytes()
}

const boardTemplate = `
<div id="board">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  {{if .Message}}
  <div class="outcome">{{.Message}}</div>
  {{end}}
  {{/* 3x3 grid */}}
  {{range $r := iter 3}}
  <div class="row">
    {{range $c := iter 3}}
      <form hx-post="/game/{{$.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post">
        <input type="hidden" name="i" value="{{add (mul $r 3) $c}}">
        <button type="submit">{{cellSymbol (index $.Game.Board (add (mul $r 3) $c))}}</button>
      </form>
    {{end}}
  </div>
  {{end}}
</div>
`

const hintTemplate = `<ul class="hint">
{{range .}}<li data-cell="{{.Index}}">cell {{.Index}}: {{.Label}}</li>
{{end}}</ul>`

type boardData struct {
    ID      string
    Game    domain.Game
    Error   string
    Message string
}

type hintRow struct {
    Index int
    Label string
}

// hintRows labels scores computed from the human's side.
func hintRows(moves []minimax.MoveScore) []hintRow {
    rows := make([]hintRow, 0, len(moves))
    for _, m := range moves {
        label := "draw"
        switch m.Score {
        case minimax.Win:
            label = "you win"
        case minimax.Loss:
            label = "you lose"
        }
        rows = append(rows, hintRow{Index: m.Index, Label: label})
    }
    return rows
}

func outcomeMessage(g domain.Game) string {
    switch g.Outcome {
    case domain.OpponentWins:
        return "You win!"
    case domain.ComputerWins:
        return "Computer wins!"
    case domain.Draw:
        return "It's a draw!"
    default:
        return ""
    }
}

// Helper to set cookie
func ensurePlayerCookie(w http.ResponseWriter, r *http.Request) string {
    if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
        return c.Value
    }
    v := uuid.NewString()
    http.SetCookie(w, &http.Cookie{Name: "player_id", Value: v, Path: "/"})
    return v
}
