package router

import (
	"travelplan-service/internal/usecase"
	"travelplan-service/pkg/logger"
)

// CategoryRouter routes refinement requests to a category based on keywords
type CategoryRouter struct {
	matchers []usecase.CategoryMatcher
	logger   logger.Logger
}

// NewCategoryRouter creates a new category router
func NewCategoryRouter(logger logger.Logger) *CategoryRouter {
	return &CategoryRouter{
		matchers: make([]usecase.CategoryMatcher, 0),
		logger:   logger,
	}
}

// NewDefaultCategoryRouter creates a router with the default matchers registered
func NewDefaultCategoryRouter(logger logger.Logger) *CategoryRouter {
	r := NewCategoryRouter(logger)
	for _, matcher := range usecase.DefaultMatchers() {
		r.Register(matcher)
	}
	return r
}

// Register appends a matcher; earlier registrations win
func (r *CategoryRouter) Register(matcher usecase.CategoryMatcher) {
	r.matchers = append(r.matchers, matcher)
	r.logger.Debug("Registered matcher", "category", matcher.Category())
}

// Route returns the category of the first matcher accepting the message, or ""
func (r *CategoryRouter) Route(message string) string {
	for _, matcher := range r.matchers {
		if matcher.CanHandle(message) {
			return matcher.Category()
		}
	}
	r.logger.Debug("No category matched refinement request", "message", message)
	return ""
}

var _ usecase.CategoryRouter = (*CategoryRouter)(nil)
