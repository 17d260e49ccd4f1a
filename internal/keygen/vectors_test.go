package keygen

// knownVector is a fixed derivation for the seed "correct horse battery
// staple". These values were recorded once and must never be regenerated.
type knownVector struct {
	index      uint64
	scalar     string
	wif        string
	pubKey     string
	address    string
	testnetWIF string
	testnetAdr string
}

const knownSeed = "correct horse battery staple"

var knownVectors = []knownVector{
	{
		index:      0,
		scalar:     "fa12fee470b43df6c3693a6cba5dbf0bc8f1e13381be4f16750fd083a920c913",
		wif:        "5KiRPenmJXSEZTWNsQbTYb3jaadqh8QHFEPjSYPe8M8HRrxjxfS",
		pubKey:     "04fd3f19d5b94645841830d85f5169fd49d188720618a180916c59dbbabd0b949f8a72810f13da4af890b050904e52f016e1c89d77b70cc9fc54b424491454a08f",
		address:    "1C4pQf465WoT5xMEJSJ5HdceCuAAQeZ6rv",
		testnetWIF: "93V3yPcJtkWNXX1fVkVNRBbhEEzYrHwUbBFgXAk9U5sLCrE9F4T",
		testnetAdr: "mramhi94tYEhs4pr21GT7Ypy4tksFdBeQe",
	},
	{
		index:      1,
		scalar:     "b48c45a991b5b2f2d966be208b8ed2788df09e3fd3b1963e982aa5038f177906",
		wif:        "5KBoSFqutffDEVdtSYfJVPSbxYCDkhfUQyLqPEx42jeBRTeZteh",
		pubKey:     "04daede843dda99d8a6b9a6ecd89df048c24b5dde2cc9a78b010a60ae3f6ace302e134e28e916a9c0efe3c6fbdf2054346076f0c0437fe6a0a3ee2c80f27051bcc",
		address:    "1v2LGc55gnRYyhQ8xqoDvyzHqVBwG9nH8",
		testnetWIF: "92xS1zfTUtjMCZ9B4tZDMyzZcCYvusCfkvCnTsJZNUPECWfWfjo",
		testnetAdr: "mgRydKh3tiDgL6B1rXpB3rCK9q5tt6Mhbt",
	},
	{
		index:      2,
		scalar:     "3ddf2c80d253774c5c9a6c4094c587eae258255049cf3ecd1f703683b3972662",
		wif:        "5JHY1hfbbW83hsHABX5XwMUUiPwQJmjwqaaC6rJqFmwW3LYUREu",
		pubKey:     "040c7d38564c8a5d1fb7b9fd16fde49491123798e0147f2796feb3be45334237fff2ae2a4f8f75550122cb81c042d5e9fc804f451b42fbc7f43f7a399e44d38b9e",
		address:    "18NkKuR4hxN1mhJWknzXf5RriFY6yMZUJj",
		testnetWIF: "924AbSV9BjCBfvnSorySox2SN4J7TwH9BXS9BUfLbWgYpGq8dwH",
		testnetAdr: "mnthcxW3WyoGYon8UMxuUzeBaF8os4gkiJ",
	},
	{
		index:      5,
		scalar:     "1baa55c5630b0233874026011f74390d7edc382d29b3ccbdc76b403b1eed3710",
		wif:        "5J2UFpQP44q32aKWGKygoKZ8wmU1cRW9VP73Ui6KLpL6GJowUqV",
		pubKey:     "043de9133f36140710940f3f4d1f072d1b3a401d65f09a4f98959f3d1a0943de73ed23c111fd18e1b0494f21ddeeb6c9875cb2422762388f40a21c6b95ae4c3508",
		address:    "1BhQnQm6zuSMmYqBo56JYh2otGqWoCKCd5",
		testnetWIF: "91o6qZDveHuAzdpntfsbfv76bRpimb3LqKxzZLSpgZ593L5ffew",
		testnetAdr: "mrDN5Tr5ovscYfJoWe4gNcF8kGSDhLUrRC",
	},
	{
		index:      6,
		scalar:     "5338be523e78a06ad9f107f3fd04fa42c6a48e235477086582a4d0a91f50ed08",
		wif:        "5JSwNEjNMzWyA3bC1E62Ds5LnYcnQKwkGpiBkFzPYmZur6x6Dfg",
		pubKey:     "04083dd02ef0c0cfbec492008a2148acb892ee61410564c762e4a7c85277203faea887dd3b8e3f95f56497d838c9898f69da3d2f6b3dd5b736c6932500d316046f",
		address:    "1GhJ67k7sbxuzoTLmWGoDmruHajhxsiz9y",
		testnetWIF: "92DZwyYuxDb7876UdZyw6TdJSCyVZVUwcma8ptLttWJxd9pq7D4",
		testnetAdr: "mwDFPAq6gdQAmuvxV5FB3h5E9aLQrhogJu",
	},
	{
		index:      7,
		scalar:     "7b2568bb95783b23153ec0ad711ce74ffb6c8eea3457a9deda701432cf96aba8",
		wif:        "5JkXBdaWfciQ1y75CsXwnoCddN8FjLruboBNUoFdk39VEGe8yVK",
		pubKey:     "049a36c74564842cc5af2a52db7e65b246e948af3f959cce3e766d106bbe5f55c5e3ba8490a11b25e9ab016814ce258d2bfa74f2c81e82517efe7351f9f2041067",
		address:    "1BrivCGY5fCT7qrSHawn4qWY1D7e2Ranyd",
		testnetWIF: "92X9mNQ4FqnXz2cMqDRrfPkbH2UxtWQ6wk3KZRc95mtY1DwWuBA",
		testnetAdr: "mrNgDFMWtgdhtxL419v9tkirsCiLwCxfov",
	},
}
