package consts

const (
	LoansCollection        = "loans"
	UsersCollection        = "users"
	ApplicationsCollection = "applications"
)

type ApplicationStatus string

const (
	ApplicationStatusPending ApplicationStatus = "Pending"
)

type ApplicationFeeStatus string

const (
	ApplicationFeeUnpaid ApplicationFeeStatus = "Unpaid"
	ApplicationFeePaid   ApplicationFeeStatus = "Paid"
)

const (
	DefaultUserRole   = "borrower"
	DefaultUserStatus = "active"
)
