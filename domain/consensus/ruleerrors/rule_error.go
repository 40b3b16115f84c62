package ruleerrors

import "github.com/pkg/errors"

// RuleError identifies a rule violation. It is created via errors.WithStack
// so that its origin is preserved, and is always returned (not panicked).
type RuleError struct {
	message    string
	cause      error
	InputIndex int
	hasIndex   bool
}

// Error implements the error interface.
func (e RuleError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap allows errors.Is/errors.As to see through to the cause.
func (e RuleError) Unwrap() error {
	return e.cause
}

// Cause implements the github.com/pkg/errors Causer interface.
func (e RuleError) Cause() error {
	return e.cause
}

// InputIndices returns the indices of the inputs this error is
// attributable to, per §6: non-empty only for ErrInputNotFound and
// ErrValidateInputsFailed.
func (e RuleError) InputIndices() []int {
	if !e.hasIndex {
		return nil
	}
	return []int{e.InputIndex}
}

func newRuleError(message string) RuleError {
	return RuleError{message: message}
}

func newIndexedRuleError(message string, inputIndex int) RuleError {
	return RuleError{message: message, InputIndex: inputIndex, hasIndex: true}
}

// The closed set of rule violations. Every validator-returned error wraps
// one of these via errors.WithStack.
var (
	ErrCoinbaseTransaction              = newRuleError("ErrCoinbaseTransaction")
	ErrIsNotStandard                    = newRuleError("ErrIsNotStandard")
	ErrDuplicate                        = newRuleError("ErrDuplicate")
	ErrDoubleSpend                      = newRuleError("ErrDoubleSpend")
	ErrFeesOutOfRange                   = newRuleError("ErrFeesOutOfRange")
	ErrEmptyTransaction                 = newRuleError("ErrEmptyTransaction")
	ErrSizeLimits                       = newRuleError("ErrSizeLimits")
	ErrOutputValueOverflow              = newRuleError("ErrOutputValueOverflow")
	ErrTransactionVersionError          = newRuleError("ErrTransactionVersionError")
	ErrNovaFeatureNotActivated          = newRuleError("ErrNovaFeatureNotActivated")
	ErrScriptNotStandard                = newRuleError("ErrScriptNotStandard")
	ErrInvalidCoinbaseScriptSize        = newRuleError("ErrInvalidCoinbaseScriptSize")
	ErrPreviousOutputNull               = newRuleError("ErrPreviousOutputNull")
	ErrInvalidInputScriptLockHeight     = newRuleError("ErrInvalidInputScriptLockHeight")
	ErrInvalidOutputScriptLockHeight    = newRuleError("ErrInvalidOutputScriptLockHeight")
	ErrAttenuationModelParamError       = newRuleError("ErrAttenuationModelParamError")
	ErrAttachmentInvalid                = newRuleError("ErrAttachmentInvalid")
	ErrAssetSymbolInvalid               = newRuleError("ErrAssetSymbolInvalid")
	ErrDIDSymbolInvalid                 = newRuleError("ErrDIDSymbolInvalid")
	ErrMITSymbolInvalid                 = newRuleError("ErrMITSymbolInvalid")
	ErrAssetExist                       = newRuleError("ErrAssetExist")
	ErrAssetCertExist                   = newRuleError("ErrAssetCertExist")
	ErrMITExist                         = newRuleError("ErrMITExist")
	ErrDIDExist                         = newRuleError("ErrDIDExist")
	ErrDIDNotExist                      = newRuleError("ErrDIDNotExist")
	ErrAddressRegisteredDID             = newRuleError("ErrAddressRegisteredDID")
	ErrDIDAddressNeeded                 = newRuleError("ErrDIDAddressNeeded")
	ErrDIDMultiTypeExist                = newRuleError("ErrDIDMultiTypeExist")
	ErrDIDInputError                    = newRuleError("ErrDIDInputError")
	ErrDIDAddressNotMatch               = newRuleError("ErrDIDAddressNotMatch")
	ErrDIDSymbolNotMatch                = newRuleError("ErrDIDSymbolNotMatch")
	ErrAssetAmountNotEqual              = newRuleError("ErrAssetAmountNotEqual")
	ErrAssetSymbolNotMatch              = newRuleError("ErrAssetSymbolNotMatch")
	ErrAssetCertError                   = newRuleError("ErrAssetCertError")
	ErrAssetCertNotProvided             = newRuleError("ErrAssetCertNotProvided")
	ErrAssetCertIssueError              = newRuleError("ErrAssetCertIssueError")
	ErrAssetIssueError                  = newRuleError("ErrAssetIssueError")
	ErrAssetSecondaryIssueError         = newRuleError("ErrAssetSecondaryIssueError")
	ErrAssetSecondaryIssueThresholdInvalid = newRuleError("ErrAssetSecondaryIssueThresholdInvalid")
	ErrAssetSecondaryIssueShareNotEnough   = newRuleError("ErrAssetSecondaryIssueShareNotEnough")
	ErrAssetDIDRegisterNotMatch         = newRuleError("ErrAssetDIDRegisterNotMatch")
	ErrMITError                         = newRuleError("ErrMITError")
	ErrMITRegisterError                 = newRuleError("ErrMITRegisterError")
)

// ErrInputNotFound is returned when an input's previous transaction could
// not be resolved against either the chain or the pool. It carries the
// offending input's index.
func ErrInputNotFound(inputIndex int) error {
	return errors.WithStack(newIndexedRuleError("ErrInputNotFound", inputIndex))
}

// ErrValidateInputsFailed is returned when connect_input rejects a
// resolved input. It carries the offending input's index.
func ErrValidateInputsFailed(inputIndex int) error {
	return errors.WithStack(newIndexedRuleError("ErrValidateInputsFailed", inputIndex))
}
