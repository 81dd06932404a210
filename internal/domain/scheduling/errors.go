package scheduling

import "github.com/pkg/errors"

var (
	ErrInvalidConfig            = errors.New("invalid scheduling config")
	ErrInvalidRecipeServings    = errors.New("recipe servings must be positive")
	ErrDuplicateAssignment      = errors.New("order demand already assigned to a batch")
	ErrMissingTimelineEstimator = errors.New("timeline estimator not configured")
)
