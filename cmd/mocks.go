package cmd

// UseStubVendor swaps the configured price vendor for the canned one
// from integration-tests. Handy for running the api offline.
// Should not be flipped in prod, obv.
const UseStubVendor = false
