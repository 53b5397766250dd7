package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential means no provider API key was supplied.
	ErrMissingCredential = errors.New("missing provider credential")
	// ErrLocationNotFound means the address geocoded to zero candidates.
	ErrLocationNotFound = errors.New("location not found")
	// ErrLocationUnavailable means device coordinates were never delivered.
	ErrLocationUnavailable = errors.New("device location unavailable")
	// ErrNoResultsAfterFilter marks an empty result set. It is an empty state, not a failure.
	ErrNoResultsAfterFilter = errors.New("no results after filter")
	// ErrInvalidBudget means a budget tier outside the price table reached the query builder.
	ErrInvalidBudget = errors.New("invalid budget tier")
)

// ValidationError represents a rejected search input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ProviderError is a failure reported by, or while talking to, the places provider.
type ProviderError struct {
	Operation  string
	Status     string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != "" {
		return fmt.Sprintf("provider %s failed (%s): %s", e.Operation, e.Status, msg)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s failed (status %d): %s", e.Operation, e.StatusCode, msg)
	}
	return fmt.Sprintf("provider %s failed: %s", e.Operation, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// UserMessage maps an error from the search pipeline to the text shown to the user.
func UserMessage(err error) string {
	var (
		provErr *ProviderError
		valErr  *ValidationError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "請先設定 Google Maps API Key 才能開始搜尋。"
	case errors.Is(err, ErrLocationNotFound), errors.Is(err, ErrLocationUnavailable):
		return "無法獲取位置資訊，請確認地址正確或已開啟瀏覽器定位。"
	case errors.Is(err, ErrNoResultsAfterFilter):
		return "此範圍內找不到符合條件的餐廳，請試著放寬預算或距離。"
	case errors.As(err, &valErr):
		return valErr.Error()
	case errors.As(err, &provErr):
		if provErr.Message != "" {
			return "搜尋服務發生錯誤：" + provErr.Message
		}
		return "搜尋服務發生錯誤，請稍後再試。"
	}
	return "發生未預期的錯誤，請稍後再試。"
}
