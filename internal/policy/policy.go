// Package policy holds the single (role, action) -> allow table that every
// role check in the API goes through. Role gating lives here and nowhere
// else; handlers only add data-scoped rules (an employee acts on their own
// requests, admin accounts cannot be deleted).
package policy

import "github.com/takab/inventario-golang/internal/models"

// Action is a named mutation or view the API exposes.
type Action string

const (
	ActionManageUsers      Action = "manage_users"
	ActionManageProducts   Action = "manage_products"
	ActionManageCatalog    Action = "manage_catalog"
	ActionViewProducts     Action = "view_products"
	ActionCreateRequest    Action = "create_request"
	ActionViewRequests     Action = "view_requests"
	ActionReviewRequest    Action = "review_request"
	ActionViewAllRequests  Action = "view_all_requests"
	ActionViewDashboard    Action = "view_dashboard"
)

// rules is the full authorization matrix. Anything not listed is denied.
var rules = map[string]map[Action]bool{
	models.RoleAdmin: {
		ActionManageUsers:     true,
		ActionManageProducts:  true,
		ActionManageCatalog:   true,
		ActionViewProducts:    true,
		ActionCreateRequest:   true,
		ActionViewRequests:    true,
		ActionReviewRequest:   true,
		ActionViewAllRequests: true,
		ActionViewDashboard:   true,
	},
	models.RoleAlmacen: {
		ActionManageProducts:  true,
		ActionManageCatalog:   true,
		ActionViewProducts:    true,
		ActionViewRequests:    true,
		ActionReviewRequest:   true,
		ActionViewAllRequests: true,
		ActionViewDashboard:   true,
	},
	models.RoleEmpleado: {
		ActionViewProducts:  true,
		ActionCreateRequest: true,
		ActionViewRequests:  true,
		ActionViewDashboard: true,
	},
}

// Allowed reports whether a role may perform an action. Unknown roles and
// unknown actions are denied.
func Allowed(role string, action Action) bool {
	return rules[role][action]
}
