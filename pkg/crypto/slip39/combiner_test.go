package slip39

import (
	"bytes"
	"testing"
)

func TestCombineSharesRejectsEmptySet(t *testing.T) {
	if _, err := CombineShares(nil, ""); err == nil {
		t.Fatal("expected error for an empty share set")
	}
}

func TestCombineSharesRejectsMixedIdentifiers(t *testing.T) {
	a := sampleShare(16)
	b := sampleShare(16)
	b.Identifier = a.Identifier ^ 1
	if _, err := CombineShares([]Share{*a, *b}, ""); err == nil {
		t.Fatal("expected error for mismatched identifiers")
	}
}

func TestCombineSharesRejectsDuplicateMemberIndex(t *testing.T) {
	a := sampleShare(16)
	a.GroupIndex = 0
	a.GroupThreshold = 1
	a.GroupCount = 1
	a.MemberThreshold = 2
	b := *a
	if _, err := CombineShares([]Share{*a, b}, ""); err == nil {
		t.Fatal("expected error for duplicate member index within a group")
	}
}

func TestCombineSharesRejectsShortValues(t *testing.T) {
	a := sampleShare(8)
	a.GroupIndex = 0
	a.GroupThreshold = 1
	a.GroupCount = 1
	a.MemberThreshold = 1
	if _, err := CombineShares([]Share{*a}, ""); err == nil {
		t.Fatal("expected error for a too-short share value")
	}
}

func TestCombineSharesEndToEndViaGenerator(t *testing.T) {
	ms := bytes.Repeat([]byte{0x2A}, 16)
	groups, err := GenerateShares(1, SimpleConfiguration(3, 5), ms, "pw", 0, true)
	if err != nil {
		t.Fatal(err)
	}
	quorum := groups[0][:3]
	recovered, err := CombineShares(quorum, "pw")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(recovered, ms) {
		t.Fatal("combine did not recover the original master secret")
	}
}

func TestCombineSharesInsufficientMembersFails(t *testing.T) {
	ms := bytes.Repeat([]byte{0x2A}, 16)
	groups, err := GenerateShares(1, SimpleConfiguration(3, 5), ms, "", 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := CombineShares(groups[0][:2], ""); err == nil {
		t.Fatal("expected InvalidShareSet for 2 of 3 required members")
	}
}
