// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP listen
	// address is configured, resulting in no transport handler being
	// initialized. This is treated as a fatal misconfiguration and causes the
	// application to fail at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServices is returned by NewHandlers when it is given no service
	// layer to route requests to.
	errNoServices = errors.New("no services to handle requests with")
)
