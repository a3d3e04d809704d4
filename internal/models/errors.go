package models

import (
	"errors"
)

var (
	ErrGeneral             = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound    = errors.New("there is no")
	ErrBankHasTransactions = errors.New("it is forbidden to delete a bank that is referenced by at least one transaction")
	ErrBalanceLimit        = errors.New("the transaction would raise the balance of the bank above the maximum balance")
)
