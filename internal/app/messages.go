// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used by the CLI
// and the mock server handlers.
//
// All Msg* constants are human-readable message strings printed to the user
// or written into HTTP response bodies. Keeping them in one place ensures
// consistent wording throughout the tool.
package app

const (
	// MsgMissingCredentials is printed when neither flags nor environment
	// variables supplied a client id/secret pair.
	MsgMissingCredentials = "missing credentials: provide -client-id/-client-secret or set EKACARE_CLIENT_ID and EKACARE_CLIENT_SECRET"

	// MsgAuthenticationFailed is printed when the credential exchange is
	// rejected or its response carries no access token.
	MsgAuthenticationFailed = "authentication failed"

	// MsgProcessingTimedOut is printed when polling exhausted its
	// wall-clock budget without observing a terminal result.
	MsgProcessingTimedOut = "processing timed out"

	// MsgProcessingFailed is printed when the server reports the document
	// as failed.
	MsgProcessingFailed = "document processing failed"

	// MsgInterrupted is printed when the user aborts the run with Ctrl-C.
	MsgInterrupted = "interrupted by user"
)
