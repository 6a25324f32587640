// Package core contains the business logic for the LexAssist API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, DocumentDetails, etc.)
// - advisor: Chat and document analysis orchestration
// - kanoon: Indian Kanoon legal search facade
// - news: News aggregation and article analysis service
// - extract: Text extraction from uploaded documents
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, chat model)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "lexassist-api/core/interfaces"
//	    "lexassist-api/core/kanoon"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	kanoonService := kanoon.NewService(deps, kanoon.Config{
//	    BaseURL: "https://api.indiankanoon.org",
//	    APIKey:  apiKey,
//	})
//
//	// Search case law
//	result, err := kanoonService.Search(ctx, "Section 420 IPC")
package core
