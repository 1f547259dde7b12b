package core

// errors.go maps technical errors to user-friendly messages with codes.
//
// Validation failures never come through here: they are returned as data
// (FieldErrors) and rendered inline next to the inputs. This table covers
// the remaining failure surface, which is almost entirely the persisted
// slot and the country-list fetch.
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so more specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Persisted slot (STORE001-STORE099)
	{
		pattern: "database is locked",
		msg: UserMessage{
			Message: "The record storage is busy",
			Action:  "Please try again in a moment",
			Code:    "STORE001",
		},
	},
	{
		pattern: "unable to open database",
		msg: UserMessage{
			Message: "The record storage could not be opened",
			Action:  "Check that the storage file is accessible",
			Code:    "STORE002",
		},
	},
	{
		pattern: "disk i/o error",
		msg: UserMessage{
			Message: "The record storage could not be written",
			Action:  "Check free disk space and try again",
			Code:    "STORE003",
		},
	},
	{
		pattern: "persist records",
		msg: UserMessage{
			Message: "Your change could not be saved",
			Action:  "Please try again",
			Code:    "STORE004",
		},
	},

	// Country list fetch (NET001-NET099)
	{
		pattern: "country list",
		msg: UserMessage{
			Message: "The country list is unavailable",
			Action:  "The form still works; the default country is used",
			Code:    "NET001",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "A network request was refused",
			Action:  "Please try again in a few moments",
			Code:    "NET002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The operation timed out",
			Action:  "Please try again",
			Code:    "NET003",
		},
	},

	// Request throttling (RATE001)
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error into a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
