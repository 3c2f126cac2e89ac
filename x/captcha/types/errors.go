package types

import (
	"cosmossdk.io/errors"
)

// Captcha module sentinel errors
var (
	ErrNotAuthorised                         = errors.Register(ModuleName, 1, "caller is not authorised to perform action")
	ErrInsufficientBalance                   = errors.Register(ModuleName, 2, "insufficient balance attached to call")
	ErrInsufficientAllowance                 = errors.Register(ModuleName, 3, "insufficient allowance")
	ErrProviderExists                        = errors.Register(ModuleName, 4, "provider already exists")
	ErrProviderDoesNotExist                  = errors.Register(ModuleName, 5, "provider does not exist")
	ErrProviderInactive                      = errors.Register(ModuleName, 6, "provider is not active")
	ErrProviderInsufficientFunds             = errors.Register(ModuleName, 7, "provider has insufficient funds")
	ErrDuplicateCaptchaDataId                = errors.Register(ModuleName, 8, "captcha data id already in use")
	ErrDappExists                            = errors.Register(ModuleName, 9, "dapp already exists")
	ErrDappDoesNotExist                      = errors.Register(ModuleName, 10, "dapp does not exist")
	ErrDappInactive                          = errors.Register(ModuleName, 11, "dapp is not active")
	ErrDappInsufficientFunds                 = errors.Register(ModuleName, 12, "dapp has insufficient funds")
	ErrCaptchaDataDoesNotExist               = errors.Register(ModuleName, 13, "captcha data does not exist")
	ErrCaptchaSolutionCommitmentDoesNotExist = errors.Register(ModuleName, 14, "captcha solution commitment does not exist")
	ErrDappUserDoesNotExist                  = errors.Register(ModuleName, 15, "dapp user does not exist")
	ErrInvalidAddress                        = errors.Register(ModuleName, 16, "invalid address")
	ErrInvalidAmount                         = errors.Register(ModuleName, 17, "invalid amount")
	ErrInvalidHash                           = errors.Register(ModuleName, 18, "invalid hash value")
	ErrInvalidPayee                          = errors.Register(ModuleName, 19, "invalid payee")
)
