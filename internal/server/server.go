package server

import (
	"fmt"
	"strconv"

	"difgo/internal/config"
	"difgo/internal/diff"
	"difgo/internal/history"
	. "difgo/internal/logger"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type DiffRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Save  bool   `json:"save"`
}

type DiffResponse struct {
	Script []diff.EditOp `json:"script"`
	Stats  diff.Stats    `json:"stats"`
}

type Server struct {
	conf config.Config
	hist *history.History
	app  *fiber.App
}

func NewServer(conf config.Config) *Server {
	this := &Server{
		conf: conf,
		hist: &history.History{File: conf.HistoryFile, Max: conf.HistoryMax},
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	app.Post("/diff", this.handleDiff)
	app.Get("/history", this.handleHistory)
	app.Delete("/history", this.handleClearHistory)

	app.Use("/live", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) { return c.Next() }
		return fiber.ErrUpgradeRequired
	})
	app.Get("/live", websocket.New(this.handleLive))

	this.app = app
	return this
}

func (this *Server) App() *fiber.App { return this.app }

func (this *Server) Listen() error {
	Log.Info("listening on port", strconv.Itoa(this.conf.Port))
	return this.app.Listen(fmt.Sprintf(":%d", this.conf.Port))
}

func (this *Server) handleDiff(c *fiber.Ctx) error {
	var req DiffRequest
	err := c.BodyParser(&req)
	if err != nil { return fiber.NewError(fiber.StatusBadRequest, "invalid request body") }

	// the engine has no notion of too large, the ceiling lives here
	if tooLarge(req.Left, this.conf.MaxLines) || tooLarge(req.Right, this.conf.MaxLines) {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("input exceeds %d lines", this.conf.MaxLines))
	}

	script := diff.Diff(req.Left, req.Right)
	stats := diff.CollectStats(script)

	if req.Save {
		_, err = this.hist.Add(req.Left, req.Right, stats)
		if err != nil { Log.Error("history save failed:", err.Error()) }
	}

	return c.JSON(DiffResponse{Script: script, Stats: stats})
}

func (this *Server) handleHistory(c *fiber.Ctx) error {
	records, err := this.hist.Load()
	if err != nil { return fiber.NewError(fiber.StatusInternalServerError, err.Error()) }
	if records == nil { records = []history.Record{} }
	return c.JSON(records)
}

func (this *Server) handleClearHistory(c *fiber.Ctx) error {
	err := this.hist.Clear()
	if err != nil { return fiber.NewError(fiber.StatusInternalServerError, err.Error()) }
	return c.SendStatus(fiber.StatusNoContent)
}

// handleLive re-diffs on every message, the as-you-type mode.
func (this *Server) handleLive(c *websocket.Conn) {
	for {
		_, message, err := c.ReadMessage()
		if err != nil { break }

		var req DiffRequest
		err = json.Unmarshal(message, &req)
		if err != nil { Log.Error("live message parse failed:", err.Error()); continue }

		if tooLarge(req.Left, this.conf.MaxLines) || tooLarge(req.Right, this.conf.MaxLines) {
			Log.Error("live input too large")
			continue
		}

		script := diff.Diff(req.Left, req.Right)
		response, err := json.Marshal(DiffResponse{Script: script, Stats: diff.CollectStats(script)})
		if err != nil { continue }

		err = c.WriteMessage(websocket.TextMessage, response)
		if err != nil { break }
	}
}

func tooLarge(text string, maxLines int) bool {
	if maxLines <= 0 { return false }
	return len(diff.SplitLines(text)) > maxLines
}
