package domain

import (
	"fmt"
	"strings"
)

// ReportStatus is the lifecycle state of a stored report.
type ReportStatus string

const (
	StatusDraft       ReportStatus = "draft"
	StatusProvisional ReportStatus = "provisional"
	StatusFinal       ReportStatus = "final"
	StatusFiled       ReportStatus = "filed"
)

var statusOrder = []ReportStatus{StatusDraft, StatusProvisional, StatusFinal, StatusFiled}

// ParseReportStatus is case-insensitive; empty means draft.
func ParseReportStatus(s string) (ReportStatus, error) {
	st := ReportStatus(strings.ToLower(strings.TrimSpace(s)))
	if st == "" {
		return StatusDraft, nil
	}
	for _, known := range statusOrder {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown report status %q", s)
}

func (s ReportStatus) rank() int {
	for i, known := range statusOrder {
		if s == known {
			return i
		}
	}
	return -1
}

// Next returns the following status and false once filed.
func (s ReportStatus) Next() (ReportStatus, bool) {
	r := s.rank()
	if r < 0 || r == len(statusOrder)-1 {
		return s, false
	}
	return statusOrder[r+1], true
}

// CanTransitionTo allows only a single step forward.
func (s ReportStatus) CanTransitionTo(target ReportStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}
