package domain

import "testing"

func TestPermissionsForRole_Admin(t *testing.T) {
	p := PermissionsForRole(RoleAdmin)
	for _, c := range []Capability{
		CapAddShipment, CapUpdateShipment, CapDeleteShipment,
		CapViewAllShipments, CapViewDetailedReports, CapManageUsers, CapFlagShipment,
	} {
		if !p.Has(c) {
			t.Fatalf("admin should have %s", c)
		}
	}
}

func TestPermissionsForRole_Employee(t *testing.T) {
	p := PermissionsForRole(RoleEmployee)

	granted := []Capability{CapUpdateShipment, CapViewAllShipments, CapFlagShipment}
	denied := []Capability{CapAddShipment, CapDeleteShipment, CapViewDetailedReports, CapManageUsers}

	for _, c := range granted {
		if !p.Has(c) {
			t.Fatalf("employee should have %s", c)
		}
	}
	for _, c := range denied {
		if p.Has(c) {
			t.Fatalf("employee should not have %s", c)
		}
	}
}

func TestPermissionsForRole_UnknownRoleFailsClosed(t *testing.T) {
	for _, role := range []string{"", "GUEST", "admin"} {
		p := PermissionsForRole(role)
		if p != (PermissionSet{}) {
			t.Fatalf("role %q: expected all-false set, got %+v", role, p)
		}
	}
}

func TestPermissionsForRole_Deterministic(t *testing.T) {
	if PermissionsForRole(RoleEmployee) != PermissionsForRole(RoleEmployee) {
		t.Fatalf("permission lookup must be deterministic")
	}
}

func TestPermissionSet_UnknownCapability(t *testing.T) {
	p := PermissionsForRole(RoleAdmin)
	if p.Has("dropTables") {
		t.Fatalf("unknown capability must never be granted")
	}
}
