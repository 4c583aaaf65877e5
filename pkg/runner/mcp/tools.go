package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(getBoardTool(), getBoardHandler(svc))
	srv.AddTool(placeNoteTool(), placeNoteHandler(svc))
	srv.AddTool(trashNoteTool(), trashNoteHandler(svc))
	srv.AddTool(resetBoardTool(), resetBoardHandler(svc))
	srv.AddTool(getReportTool(), getReportHandler(svc))
}

func getBoardTool() mcp.Tool {
	return mcp.NewTool(
		"get_board",
		mcp.WithDescription("Show the calendar: workspace notes, placed notes per day and whether the calendar is full."),
		mcp.WithBoolean("all_days",
			mcp.Description("Include empty days as well as days holding notes."),
		),
	)
}

func getBoardHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			AllDays bool `json:"all_days"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.Board(ctx, !args.AllDays)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func placeNoteTool() mcp.Tool {
	return mcp.NewTool(
		"place_note",
		mcp.WithDescription("Drag a note from the workspace or another day and drop it on a day. Days hold a limited number of notes."),
		mcp.WithString("note",
			mcp.Required(),
			mcp.Description("Note identifier such as note-3."),
		),
		mcp.WithNumber("day",
			mcp.Required(),
			mcp.Description("Day of the month to drop the note on."),
			mcp.Min(1),
			mcp.Max(31),
		),
	)
}

func placeNoteHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Note string `json:"note"`
			Day  int    `json:"day"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.PlaceNote(ctx, args.Note, args.Day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func trashNoteTool() mcp.Tool {
	return mcp.NewTool(
		"trash_note",
		mcp.WithDescription("Drop a note that is placed on a day into the trash. Workspace notes cannot be trashed."),
		mcp.WithString("note",
			mcp.Required(),
			mcp.Description("Note identifier such as note-3."),
		),
	)
}

func trashNoteHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("note")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.TrashNote(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func resetBoardTool() mcp.Tool {
	return mcp.NewTool(
		"reset_board",
		mcp.WithDescription("Clear every day and restore the workspace to one note of each color."),
	)
}

func resetBoardHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Reset(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func getReportTool() mcp.Tool {
	return mcp.NewTool(
		"get_report",
		mcp.WithDescription("List placed notes grouped by color with their dates."),
	)
}

func getReportHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := svc.Report(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(report)
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
