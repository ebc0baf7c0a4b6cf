package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/peterkuimelis/terrafutura/internal/game"
	"github.com/peterkuimelis/terrafutura/internal/view"
)

// RegisterTools adds all game tools for sess to the MCP server.
func RegisterTools(s *server.MCPServer, sess *Session) {
	h := &handlers{sess: sess}
	s.AddTool(getStateTool(), h.getState)
	s.AddTool(moveCardTool(), h.moveCard)
	s.AddTool(activateCardTool(), h.activateCard)
	s.AddTool(calculateScoreTool(), h.calculateScore)
}

// --- Tool definitions ---

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get a player's grid, the shared pile and the event log. Read-only."),
		mcp.WithNumber("player", mcp.Description("Player index (default 0)")),
	)
}

func moveCardTool() mcp.Tool {
	return mcp.NewTool("move_card",
		mcp.WithDescription("Take a visible card from the pile and place it on the player's grid. "+
			"Coordinates run from -2 to 2 on both axes."),
		mcp.WithNumber("player", mcp.Description("Player index (default 0)")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("1-based visible pile slot (1-4)")),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("Target column")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Target row")),
	)
}

var resourceAtSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"resource": map[string]any{"type": "string", "description": "GREEN, RED, YELLOW, BULB, GEAR, CAR, MONEY or POLLUTION"},
		"x":        map[string]any{"type": "number"},
		"y":        map[string]any{"type": "number"},
	},
	"required": []string{"resource", "x", "y"},
}

var positionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"x": map[string]any{"type": "number"},
		"y": map[string]any{"type": "number"},
	},
	"required": []string{"x", "y"},
}

func activateCardTool() mcp.Tool {
	return mcp.NewTool("activate_card",
		mcp.WithDescription("Activate the upper effect of a card on the player's grid. Inputs are paid from the named cells, "+
			"outputs and pollution are placed on the named cells. Either everything happens or nothing does."),
		mcp.WithNumber("player", mcp.Description("Player index (default 0)")),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("Column of the activated card")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Row of the activated card")),
		mcp.WithArray("inputs", mcp.Description("Resources paid"), mcp.Items(resourceAtSchema)),
		mcp.WithArray("outputs", mcp.Description("Resources gained"), mcp.Items(resourceAtSchema)),
		mcp.WithArray("pollution", mcp.Description("One entry per pollution unit placed"), mcp.Items(positionSchema)),
		mcp.WithNumber("assisting_player", mcp.Description("Player lending a card, for effects with assistance")),
		mcp.WithNumber("assisting_x", mcp.Description("Column of the assisting card")),
		mcp.WithNumber("assisting_y", mcp.Description("Row of the assisting card")),
	)
}

func calculateScoreTool() mcp.Tool {
	return mcp.NewTool("calculate_score",
		mcp.WithDescription("Score the player's grid with one of the catalog's scoring methods."),
		mcp.WithNumber("player", mcp.Description("Player index (default 0)")),
		mcp.WithNumber("method", mcp.Required(), mcp.Description("1-based scoring method from the catalog")),
	)
}

// --- Tool handlers ---

type handlers struct {
	sess *Session
}

// ActionResult is the JSON returned by move_card and activate_card.
type ActionResult struct {
	OK    bool             `json:"ok"`
	State view.SessionView `json:"state"`
}

func (h *handlers) getState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, err := h.sess.View(request.GetInt("player", 0))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(v)), nil
}

func (h *handlers) moveCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	player := request.GetInt("player", 0)
	index := request.GetInt("index", 0)
	x := request.GetInt("x", 0)
	y := request.GetInt("y", 0)

	ok, err := h.sess.MoveCard(player, index, x, y)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid move: %v", err), nil
	}
	return h.actionResult(player, ok)
}

func (h *handlers) activateCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var a Activation
	if err := decodeArguments(request.GetArguments(), &a); err != nil {
		return mcp.NewToolResultErrorf("Invalid arguments: %v", err), nil
	}
	player := request.GetInt("player", 0)

	ok, err := h.sess.ActivateCard(player, a)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid activation: %v", err), nil
	}
	return h.actionResult(player, ok)
}

func (h *handlers) calculateScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := h.sess.CalculateScore(request.GetInt("player", 0), request.GetInt("method", 0))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(st)), nil
}

func (h *handlers) actionResult(player int, ok bool) (*mcp.CallToolResult, error) {
	v, err := h.sess.View(player)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(respondJSON(ActionResult{OK: ok, State: v})), nil
}

// decodeArguments maps raw tool arguments onto target using its json tags.
// Resource names are parsed into game.Resource values.
func decodeArguments(args map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToResourceHookFunc(),
		Result:     target,
		TagName:    "json",
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

var resourceType = reflect.TypeOf(game.Resource(0))

func stringToResourceHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != resourceType {
			return data, nil
		}
		return game.ParseResource(data.(string))
	}
}

// respondJSON marshals a tool response to a JSON string.
func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
