// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoTransports means neither an HTTP nor a gRPC address was
	// configured, so the process would have nothing to serve.
	errNoTransports = errors.New("no http or grpc address configured")
)
