package get_revenue_stats

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_revenue_stats: internal error")
)
