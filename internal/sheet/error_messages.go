package sheet

// error_messages.go maps technical errors to user-friendly messages with
// support codes. When users report a problem they can quote the code instead
// of pasting a stack of wrapped errors.
//
// Code groups:
//
//	SHEET001 - Empty sheet list      (ErrEmptyInput)
//	SHEET002 - Sheet without columns (ErrEmptyColumns)
//	SHEET003 - Duplicate sheet name  (ErrDuplicateSheet)
//	SHEET004 - Too many sheets       (pattern "too many sheets")
//	FILE001  - Unparseable workbook  (ErrInvalidFormat)
//	FILE002  - Bad file extension    (pattern "unsupported file extension")
//	FILE003  - No file uploaded      (pattern "no file provided")
//	FILE004  - Payload too large     (pattern "request body too large")
//	RATE001  - Rate limited          (pattern "rate limit")
//	REQ001   - Request cancelled     (pattern "context canceled")
//	REQ002   - Request timed out     (pattern "context deadline exceeded")
//	ERR000   - Fallback for anything unmatched
//
// Core error kinds are matched with errors.Is; transport-level failures that
// arrive as plain errors are matched by substring, case-insensitively, first
// match wins.

import (
	"errors"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// kindMessage pairs a sentinel error with its user message.
type kindMessage struct {
	kind error
	msg  UserMessage
}

var kindMessages = []kindMessage{
	{
		kind: ErrEmptyInput,
		msg: UserMessage{
			Message: "The request contains no sheets",
			Action:  "Add at least one sheet to the sheets list",
			Code:    "SHEET001",
		},
	},
	{
		kind: ErrEmptyColumns,
		msg: UserMessage{
			Message: "A sheet has no columns",
			Action:  "Give every sheet at least one entry in column_widths",
			Code:    "SHEET002",
		},
	},
	{
		kind: ErrDuplicateSheet,
		msg: UserMessage{
			Message: "Two sheets share the same name",
			Action:  "Give every sheet a unique name",
			Code:    "SHEET003",
		},
	},
	{
		kind: ErrInvalidFormat,
		msg: UserMessage{
			Message: "The uploaded file is not a valid workbook",
			Action:  "Upload an .xlsx or .xlsm file produced by a spreadsheet application",
			Code:    "FILE001",
		},
	},
}

// errorPattern defines a substring to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "too many sheets",
		msg: UserMessage{
			Message: "The request contains too many sheets",
			Action:  "Split the workbook across multiple requests",
			Code:    "SHEET004",
		},
	},
	{
		pattern: "unsupported file extension",
		msg: UserMessage{
			Message: "This file type is not supported",
			Action:  "Upload a file ending in .xlsx or .xlsm",
			Code:    "FILE002",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Choose a workbook file to upload",
			Code:    "FILE003",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The payload exceeds the size limit",
			Action:  "Split the workbook into smaller requests",
			Code:    "FILE004",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The request timed out",
			Action:  "Try a smaller workbook or check your connection",
			Code:    "REQ002",
		},
	},
}

// MapError converts a technical error into a user-friendly message.
// Unmatched errors map to the ERR000 fallback; the original error should
// still be logged server-side for diagnosis.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, km := range kindMessages {
		if errors.Is(err, km.kind) {
			return km.msg
		}
	}

	lower := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(lower, ep.pattern) {
			return ep.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}
