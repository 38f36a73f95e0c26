package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeySessionID CtxKey = "SessionID"
	// KeyCompanyID is set only for employer accounts.
	KeyCompanyID CtxKey = "CompanyID"
)
