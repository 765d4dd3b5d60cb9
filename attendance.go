// attendance.go: Attendance status of a club member
//
// Copyright (c) 2025 The GreyBook Authors
// SPDX-License-Identifier: MPL-2.0

package greybook

// AttendanceStatus tracks whether and how a member's attendance was marked.
type AttendanceStatus uint8

const (
	AttendanceUnmarked AttendanceStatus = iota
	AttendancePresent
	AttendanceAbsent
	AttendanceLate
	AttendanceExcused
)

// Marked reports whether the member's attendance has been set.
func (s AttendanceStatus) Marked() bool { return s != AttendanceUnmarked }

func (s AttendanceStatus) String() string {
	switch s {
	case AttendancePresent:
		return "Present"
	case AttendanceAbsent:
		return "Absent"
	case AttendanceLate:
		return "Late"
	case AttendanceExcused:
		return "Excused"
	default:
		return "Unmarked"
	}
}

// ParseAttendanceStatus maps a stored status string back to its value.
// Unknown strings map to AttendanceUnmarked so old data files stay loadable.
func ParseAttendanceStatus(s string) AttendanceStatus {
	switch s {
	case "Present":
		return AttendancePresent
	case "Absent":
		return AttendanceAbsent
	case "Late":
		return AttendanceLate
	case "Excused":
		return AttendanceExcused
	default:
		return AttendanceUnmarked
	}
}
