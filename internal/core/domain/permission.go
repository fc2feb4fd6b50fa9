package domain

// Capability names a single boolean permission.
type Capability string

const (
	CapAddShipment         Capability = "addShipment"
	CapUpdateShipment      Capability = "updateShipment"
	CapDeleteShipment      Capability = "deleteShipment"
	CapViewAllShipments    Capability = "viewAllShipments"
	CapViewDetailedReports Capability = "viewDetailedReports"
	CapManageUsers         Capability = "manageUsers"
	CapFlagShipment        Capability = "flagShipment"
)

// PermissionSet is the full capability set derived from a role.
type PermissionSet struct {
	AddShipment         bool `json:"addShipment"`
	UpdateShipment      bool `json:"updateShipment"`
	DeleteShipment      bool `json:"deleteShipment"`
	ViewAllShipments    bool `json:"viewAllShipments"`
	ViewDetailedReports bool `json:"viewDetailedReports"`
	ManageUsers         bool `json:"manageUsers"`
	FlagShipment        bool `json:"flagShipment"`
}

// Has reports whether the named capability is granted. Unknown capability
// names are never granted.
func (p PermissionSet) Has(c Capability) bool {
	switch c {
	case CapAddShipment:
		return p.AddShipment
	case CapUpdateShipment:
		return p.UpdateShipment
	case CapDeleteShipment:
		return p.DeleteShipment
	case CapViewAllShipments:
		return p.ViewAllShipments
	case CapViewDetailedReports:
		return p.ViewDetailedReports
	case CapManageUsers:
		return p.ManageUsers
	case CapFlagShipment:
		return p.FlagShipment
	default:
		return false
	}
}

// PermissionsForRole maps a role to its capability set. Unknown roles yield
// the zero set — everything false, never an error.
func PermissionsForRole(role string) PermissionSet {
	switch role {
	case RoleAdmin:
		return PermissionSet{
			AddShipment:         true,
			UpdateShipment:      true,
			DeleteShipment:      true,
			ViewAllShipments:    true,
			ViewDetailedReports: true,
			ManageUsers:         true,
			FlagShipment:        true,
		}
	case RoleEmployee:
		return PermissionSet{
			UpdateShipment:   true,
			ViewAllShipments: true,
			FlagShipment:     true,
		}
	default:
		return PermissionSet{}
	}
}
