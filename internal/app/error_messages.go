// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the POS
// client services and the terminal UI.
//
// All Msg* constants are human-readable strings shown in the status line of
// the terminal UI or written to the log to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInvalidDataProvided is shown when a form fails validation; the
	// request is never sent.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgOffline is shown when the remote API cannot be reached and the
	// list shows records from the local mirror.
	MsgOffline = "offline: showing saved records"

	// MsgTokenIsExpiredOrInvalid is shown when the API rejects the
	// configured token.
	MsgTokenIsExpiredOrInvalid = "API token is expired or invalid"

	// MsgAccessDenied is shown when the token lacks the rights for an
	// operation.
	MsgAccessDenied = "access denied"

	// MsgDataNotFound is shown when an update or delete targets a record
	// the server no longer has.
	MsgDataNotFound = "record not found, refresh the list"

	// MsgRejectedByServer is shown when the server refuses a mutation
	// (GraphQL errors, conflicts, a delete answered with success=false).
	MsgRejectedByServer = "rejected by server"

	// MsgInternalServerError is shown for 5xx responses other than
	// unavailability.
	MsgInternalServerError = "server error, try again later"

	// MsgUnexpectedError covers everything else.
	MsgUnexpectedError = "unexpected error"

	MsgCreated    = "created"
	MsgUpdated    = "updated"
	MsgDeleted    = "deleted"
	MsgCopied     = "copied to clipboard"
	MsgRefreshing = "refreshing"
)
