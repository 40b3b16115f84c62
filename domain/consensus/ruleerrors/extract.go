package ruleerrors

import stderrors "errors"

// ExtractInputIndices returns the input indices err is attributable to, if
// err (or something it wraps) is a RuleError carrying one. Per §6 this is
// non-empty only for ErrInputNotFound and ErrValidateInputsFailed.
func ExtractInputIndices(err error) []int {
	var ruleErr RuleError
	if !stderrors.As(err, &ruleErr) {
		return nil
	}
	return ruleErr.InputIndices()
}
