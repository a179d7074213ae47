package api

import (
	"encoding/json"
	"net/http"

	"github.com/zapponejosh/holiday-countdown/internal/board"
	"github.com/zapponejosh/holiday-countdown/internal/commentary"
	"github.com/zapponejosh/holiday-countdown/internal/countdown"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// EntryResponse is the JSON form of one holiday's countdown.
type EntryResponse struct {
	Holiday      string             `json:"holiday"`
	Name         string             `json:"name"`
	Rule         string             `json:"rule"`
	Date         string             `json:"date"`
	Weekday      string             `json:"weekday"`
	Remaining    countdown.Duration `json:"remaining"`
	TotalSeconds int64              `json:"total_seconds"`
	Display      string             `json:"display"`
	Tier         commentary.Tier    `json:"tier"`
	Quip         string             `json:"quip"`
}

// BoardResponse is the JSON form of a full board.
type BoardResponse struct {
	Now      string          `json:"now"`
	Holidays []EntryResponse `json:"holidays"`
}

func newEntryResponse(e board.Entry) EntryResponse {
	return EntryResponse{
		Holiday:      e.Holiday.Slug(),
		Name:         e.Holiday.Name(),
		Rule:         e.Holiday.Rule(),
		Date:         e.Date.ISO(),
		Weekday:      e.Date.Weekday().String(),
		Remaining:    e.Remaining,
		TotalSeconds: e.Remaining.TotalSeconds(),
		Display:      e.Remaining.String(),
		Tier:         e.Tier,
		Quip:         e.Quip,
	}
}

func newBoardResponse(b board.Board) BoardResponse {
	resp := BoardResponse{
		Now:      b.Now.String(),
		Holidays: make([]EntryResponse, 0, len(b.Entries)),
	}
	for _, e := range b.Entries {
		resp.Holidays = append(resp.Holidays, newEntryResponse(e))
	}
	return resp
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, "NOT_FOUND")
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, "BAD_REQUEST")
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}
