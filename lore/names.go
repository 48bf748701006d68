package lore

// Word tables for dev-god names. The lengths are coprime with the decade
// stride, so consecutive gods land on different combinations even though
// every minting year is a multiple of 10.
var (
	godPrefixes = []string{
		"Vor", "Null", "Okto", "Sar", "Threx", "Mal", "Ix", "Quor", "Zan",
	}
	godRoots = []string{
		"ath", "ix", "om", "ul", "ek", "esh", "ar",
	}
	godEpithets = []string{
		"the Recompiled",
		"of the Ninth Merge",
		"Breaker of Builds",
		"the Latency-Eater",
		"Warden of Forks",
		"the Hotfix-Bringer",
		"of Endless Rollback",
		"the Cache-Blessed",
		"Keeper of the Parry Bell",
		"the Unshipped",
		"of the Sovereign Branch",
	}
)

// GodName derives the deity name for a year. Three independent modular
// lookups and no randomness: the same year always produces the same name,
// bit for bit.
func GodName(year int) string {
	prefix := godPrefixes[(year+3)%len(godPrefixes)]
	root := godRoots[(year*5+1)%len(godRoots)]
	epithet := godEpithets[(year*7+4)%len(godEpithets)]
	return prefix + root + " " + epithet
}
