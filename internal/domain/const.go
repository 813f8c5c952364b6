package domain

const (
	// MAX_BASIS_POINTS is 100% expressed in basis points
	MAX_BASIS_POINTS = 10000

	// LAMPORTS_PER_SOL is the number of lamports in one SOL
	LAMPORTS_PER_SOL = 1_000_000_000

	// NFT_STATE_SEED prefixes the repayment tool's per-mint state address derivation
	NFT_STATE_SEED = "nft-state"

	// SECONDS_PER_DAY is used by the daily report buckets and the delisting cutoff
	SECONDS_PER_DAY = 24 * 60 * 60
)
