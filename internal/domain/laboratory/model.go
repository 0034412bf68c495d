package laboratory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const placeholder = "—"

// TestStatus is the closed set of lab-test states.
type TestStatus string

const (
	StatusPending    TestStatus = "pending"
	StatusInProgress TestStatus = "in_progress"
	StatusCompleted  TestStatus = "completed"
	StatusCancelled  TestStatus = "cancelled"
)

var statusLabels = map[TestStatus]string{
	StatusPending:    "Pending",
	StatusInProgress: "In progress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

func (s TestStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func ParseTestStatus(s string) (TestStatus, error) {
	switch TestStatus(s) {
	case "":
		return StatusPending, nil
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return TestStatus(s), nil
	default:
		return "", fmt.Errorf("invalid lab test status: %s", s)
	}
}

// LabTest is one ordered test for a patient. Result stays nil until the
// test completes.
type LabTest struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	PatientID uuid.UUID  `db:"patient_id" json:"patient_id"`
	TestName  string     `db:"test_name" json:"test_name"`
	Status    TestStatus `db:"status" json:"status"`
	Result    *string    `db:"result" json:"result,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// TestView is the display row for GET /api/laboratory.
type TestView struct {
	ID       uuid.UUID `json:"id"`
	Patient  string    `json:"patient"`
	TestName string    `json:"test_name"`
	Status   string    `json:"status"`
	Result   string    `json:"result"`
	Ordered  string    `json:"ordered"`
}
