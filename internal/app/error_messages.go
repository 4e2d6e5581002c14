// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-school-link client services and commands.
//
// All Msg* constants are human-readable message strings attached to typed
// session errors and printed by the CLI. Keeping them in one place ensures
// consistent wording throughout the client.
package app

const (
	// MsgInvalidDataProvided is used when credentials or a new password fail
	// local validation before any network call.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is used when the backend rejects the
	// email/password combination (401).
	MsgInvalidLoginPassword = "invalid email or password"

	// MsgAccessDenied is used when the backend refuses an authenticated
	// request (403).
	MsgAccessDenied = "access denied"

	// MsgUserNotFound is used when the backend does not know the user (404).
	MsgUserNotFound = "user not found"

	// MsgValidationFailed is used when the backend rejects the request
	// payload (400, 422).
	MsgValidationFailed = "request rejected by server validation"

	// MsgServerFault is used for 5xx answers, unexpected statuses and
	// malformed responses.
	MsgServerFault = "server error, please try again later"

	// MsgNetworkUnreachable is used when no response was received at all.
	MsgNetworkUnreachable = "server is unreachable, check your connection"

	// MsgTimeout is used when a bounded request ran out of time. It never
	// means a negative answer.
	MsgTimeout = "server did not answer in time"

	// MsgPasswordChangeRejected is used when the backend answers a password
	// rotation with success == false and no message of its own.
	MsgPasswordChangeRejected = "password change was rejected"

	// MsgNoAssociations is shown when the user has no institutional bindings.
	MsgNoAssociations = "your account is not linked to any institution"

	// MsgSelectionRequired is shown when the user must choose an association.
	MsgSelectionRequired = "choose which institution to use"

	// MsgInconsistentAssociation is the blocking message shown while the
	// active association stays inconsistent after a forced refresh.
	MsgInconsistentAssociation = "your session data is inconsistent; sign out and sign in again"

	// MsgMustChangePassword is shown while the first-login gate is closed.
	MsgMustChangePassword = "you must change your password before continuing"
)
