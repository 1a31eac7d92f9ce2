package user

type Permission string

const (
	PermViewBenefits     Permission = "benefits:read"
	PermManageBenefits   Permission = "benefits:write"
	PermViewConversion   Permission = "conversion:read"
	PermManageConversion Permission = "conversion:write"
	PermManageOrders     Permission = "orders:write"
	PermViewClientPoints Permission = "clients:points:read"
	PermViewOwnAccount   Permission = "self:read"
)

var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermViewBenefits:     true,
		PermManageBenefits:   true,
		PermViewConversion:   true,
		PermManageConversion: true,
		PermManageOrders:     true,
		PermViewClientPoints: true,
	},
	RoleManager: {
		PermViewBenefits:     true,
		PermManageBenefits:   true,
		PermViewConversion:   true,
		PermManageConversion: true,
		PermManageOrders:     true,
		PermViewClientPoints: true,
	},
	RoleEmployee: {
		PermViewBenefits:     true,
		PermViewConversion:   true,
		PermManageOrders:     true,
		PermViewClientPoints: true,
	},
	RoleClient: {
		PermViewBenefits:   true,
		PermViewConversion: true,
		PermViewOwnAccount: true,
	},
}

// Can reports whether the role grants p. Unknown roles grant nothing.
func (r Role) Can(p Permission) bool {
	return rolePermissions[r][p]
}
