package mempool

// Result is the verdict of a successful validation run: the empty error
// plus the list of input indices whose previous transaction was resolved
// from the mempool rather than the confirmed chain. Callers use this list
// to decide staging policy for the newly admitted transaction.
type Result struct {
	UnconfirmedInputs []int
}
