package constants

const (
	RoleFarmer   = "farmer"
	RoleInvestor = "investor"
)
