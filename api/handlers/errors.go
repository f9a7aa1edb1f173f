// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"snapfind-api/core/domain"
	"snapfind-api/core/errors"
	"snapfind-api/core/presenter"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsSessionNotFound(err) {
		return huma.Error404NotFound(presenter.Message(domain.OutcomeSessionExpired))
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		return huma.Error502BadGateway(presenter.Message(domain.OutcomeSearchFailed))
	}

	return huma.Error500InternalServerError("Internal server error")
}
