package constants

const (
	MAX_MINTS_PER_REQUEST       = 10000
	MAX_COLLECTION_FILTERS      = 20
	MAX_UNLISTED_DAYS           = 3650
	DEFAULT_UNLISTED_VALUE_DAYS = 0
)
