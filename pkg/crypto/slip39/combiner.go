package slip39

import "github.com/keyforge-io/slip39/pkg/secure"

// CombineShares validates a share set and, if it meets quorum, recovers
// the master secret (spec.md §4.10). A wrong passphrase is not an
// error: it yields an |MS|-byte result that the caller must judge.
func CombineShares(shares []Share, passphrase string) ([]byte, error) {
	if err := validateShareSet(shares); err != nil {
		return nil, err
	}

	common := shares[0]
	byGroup := make(map[byte][]Share)
	for _, s := range shares {
		byGroup[s.GroupIndex] = append(byGroup[s.GroupIndex], s)
	}

	groupPoints := make([]point, 0, len(byGroup))
	for gi, members := range byGroup {
		threshold := members[0].MemberThreshold
		pts := make([]point, 0, threshold)
		for _, m := range members {
			pts = append(pts, point{x: m.MemberIndex, y: m.ShareValue})
		}
		groupShare, err := sssRecover(threshold, pts)
		if err != nil {
			return nil, err
		}
		groupPoints = append(groupPoints, point{x: gi, y: groupShare})
	}

	ems, err := sssRecover(common.GroupThreshold, groupPoints)
	if err != nil {
		return nil, err
	}
	defer secure.Zero(ems)

	normalizedPass, err := normalizePassphrase(passphrase)
	if err != nil {
		return nil, err
	}

	return feistelDecrypt(ems, normalizedPass, common.IterationExponent, common.Identifier, common.Extendable), nil
}

// validateShareSet enforces spec.md §4.10's cross-share consistency
// and quorum rules. It never attempts partial recovery: any violation
// aborts the whole combine.
func validateShareSet(shares []Share) error {
	if len(shares) == 0 {
		return newErr(ErrInvalidShareSet, "no shares provided")
	}
	for i := range shares {
		if err := shares[i].Validate(); err != nil {
			return err
		}
	}

	first := shares[0]
	valueLen := len(first.ShareValue)
	for i, s := range shares[1:] {
		switch {
		case s.Identifier != first.Identifier:
			return newErr(ErrInvalidShareSet, "share %d: identifier mismatch", i+1)
		case s.Extendable != first.Extendable:
			return newErr(ErrInvalidShareSet, "share %d: extendable flag mismatch", i+1)
		case s.IterationExponent != first.IterationExponent:
			return newErr(ErrInvalidShareSet, "share %d: iteration exponent mismatch", i+1)
		case s.GroupThreshold != first.GroupThreshold:
			return newErr(ErrInvalidShareSet, "share %d: group threshold mismatch", i+1)
		case s.GroupCount != first.GroupCount:
			return newErr(ErrInvalidShareSet, "share %d: group count mismatch", i+1)
		case len(s.ShareValue) != valueLen:
			return newErr(ErrInvalidShareSet, "share %d: share value length mismatch", i+1)
		}
	}
	if valueLen < 16 {
		return newErr(ErrInvalidShareSet, "share value length %d below minimum 16 bytes", valueLen)
	}

	byGroup := make(map[byte][]Share)
	for _, s := range shares {
		byGroup[s.GroupIndex] = append(byGroup[s.GroupIndex], s)
	}
	if len(byGroup) != int(first.GroupThreshold) {
		return newErr(ErrInvalidShareSet, "share set has %d distinct groups, need exactly %d", len(byGroup), first.GroupThreshold)
	}

	for gi, members := range byGroup {
		threshold := members[0].MemberThreshold
		seen := make(map[byte]bool, len(members))
		for _, m := range members {
			if m.MemberThreshold != threshold {
				return newErr(ErrInvalidShareSet, "group %d: member threshold mismatch", gi)
			}
			if seen[m.MemberIndex] {
				return newErr(ErrInvalidShareSet, "group %d: duplicate member index %d", gi, m.MemberIndex)
			}
			seen[m.MemberIndex] = true
		}
		if byte(len(members)) < threshold {
			return newErr(ErrInvalidShareSet, "group %d: have %d members, need %d", gi, len(members), threshold)
		}
	}
	return nil
}
