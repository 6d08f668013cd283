package models

import "testing"

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role       string
		isAdmin    bool
		canApprove bool
	}{
		{RoleStudent, false, false},
		{RoleFaculty, false, true},
		{RoleLeader, true, true},
		{RoleAdmin, true, true},
	}
	for _, tc := range cases {
		u := User{Role: tc.role}
		if got := u.IsAdmin(); got != tc.isAdmin {
			t.Errorf("%s: IsAdmin() = %v, want %v", tc.role, got, tc.isAdmin)
		}
		if got := u.CanApproveEvents(); got != tc.canApprove {
			t.Errorf("%s: CanApproveEvents() = %v, want %v", tc.role, got, tc.canApprove)
		}
	}
}

func TestFullName(t *testing.T) {
	u := User{FirstName: "Jane", LastName: "Doe"}
	if u.FullName() != "Jane Doe" {
		t.Errorf("Expected \"Jane Doe\", got %q", u.FullName())
	}
}
