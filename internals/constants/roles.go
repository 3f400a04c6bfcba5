package constants

import "fmt"

const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// Template pesan error role
const (
	ErrOnlyAgentsCanAccess  = "❌ Hanya agent atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyNonUserCanAccess = "❌ Hanya role selain 'user' yang boleh mengakses fitur %s."
)

func RoleErrorAgent(feature string) string {
	return fmt.Sprintf(ErrOnlyAgentsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorNonUser(feature string) string {
	return fmt.Sprintf(ErrOnlyNonUserCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAgent,
		RoleAdmin,
		RoleOwner,
	}

	NonUserRoles = []string{
		RoleAgent,
		RoleAdmin,
		RoleOwner,
	}

	AgentAndAbove = []string{
		RoleAgent,
		RoleAdmin,
		RoleOwner,
	}

	AdminOnly = []string{
		RoleAdmin,
		RoleOwner,
	}
)
